package aggregation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var refDay = time.Date(2024, time.January, 10, 9, 30, 0, 0, time.UTC)

const refToday = "10-01-2024"

func daysAgo(n int) string {
	return stock.FormatDate(refDay.AddDate(0, 0, -n))
}

var seq int

func purchase(t *testing.T, date, item string, weight, rate int64) *entity.StockPurchase {
	t.Helper()
	seq++
	p, err := entity.NewStockPurchase(entity.PurchaseDraft{
		ID:        fmt.Sprintf("p-%d", seq),
		Date:      date,
		Time:      entity.EntryMorning,
		ItemName:  item,
		BatchNo:   fmt.Sprintf("B%03d0000", 100+seq%900),
		Weight:    decimal.NewFromInt(weight),
		RatePerKg: decimal.NewFromInt(rate),
	})
	require.NoError(t, err)
	return p
}

func leftEntry(t *testing.T, date, item string, purchased, remaining int64) *entity.StockLeftEntry {
	t.Helper()
	seq++
	e, err := entity.NewStockLeftEntry(entity.StockLeftDraft{
		ID:              fmt.Sprintf("s-%d", seq),
		Date:            date,
		ItemName:        item,
		PurchasedAmount: decimal.NewFromInt(purchased),
		RemainingAmount: decimal.NewFromInt(remaining),
	})
	require.NoError(t, err)
	return e
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
