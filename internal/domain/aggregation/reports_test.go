package aggregation_test

import (
	"testing"

	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/aggregation"
	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMovementReport_UneComprasPorFechaEItem(t *testing.T) {
	purchases := []*entity.StockPurchase{
		purchase(t, refToday, "Tuna", 6, 400),
		purchase(t, refToday, "tuna", 4, 500),
		purchase(t, daysAgo(1), "Tuna", 10, 100),
	}
	entries := []*entity.StockLeftEntry{
		leftEntry(t, refToday, "Tuna", 10, 3),
		leftEntry(t, daysAgo(1), "Tuna", 10, 0),
	}

	rep, err := aggregation.BuildMovementReport(purchases, entries, "")
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)
	assert.True(t, dec(4400).Equal(rep.Rows[0].TotalPurchaseCost))
	assert.True(t, dec(1000).Equal(rep.Rows[1].TotalPurchaseCost))
	assert.Equal(t, []string{refToday, daysAgo(1)}, rep.Dates)

	filtered, err := aggregation.BuildMovementReport(purchases, entries, daysAgo(1))
	require.NoError(t, err)
	require.Len(t, filtered.Rows, 1)
	assert.Equal(t, daysAgo(1), filtered.Rows[0].Date)
	assert.Len(t, filtered.Dates, 2)

	_, err = aggregation.BuildMovementReport(purchases, entries, "ayer")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestBuildAgingReport(t *testing.T) {
	purchases := []*entity.StockPurchase{
		purchase(t, refToday, "Tuna", 1, 1),
		purchase(t, daysAgo(2), "Crab (Njandu)", 1, 1),
		purchase(t, daysAgo(6), "Squid (Koonthal)", 1, 1),
	}
	rows, err := aggregation.BuildAgingReport(purchases, refDay)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, stock.StatusFresh, rows[0].Status)
	assert.Equal(t, stock.StatusModerate, rows[1].Status)
	assert.Equal(t, stock.StatusUrgent, rows[2].Status)
	assert.Equal(t, 6, rows[2].AgeInDays)
}

func TestSalesByItem(t *testing.T) {
	rows := []aggregation.MovementRow{
		{ItemName: "Seer Fish (Neymeen)", EstimatedSales: dec(4), TotalPurchaseCost: dec(1000)},
		{ItemName: "Tuna", EstimatedSales: dec(1), TotalPurchaseCost: dec(10)},
		{ItemName: "seer fish (neymeen)", EstimatedSales: dec(2), TotalPurchaseCost: dec(500)},
	}
	points := aggregation.SalesByItem(rows)
	require.Len(t, points, 2)
	assert.Equal(t, "Seer", points[0].ShortName)
	assert.True(t, dec(6).Equal(points[0].EstimatedSales))
	assert.True(t, dec(1500).Equal(points[0].PurchaseCost))
}
