package pdf_test

import (
	"bytes"
	"testing"

	"github.com/jhoicas/fishstock-api/internal/domain/aggregation"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/jhoicas/fishstock-api/internal/infrastructure/pdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementReport(t *testing.T) {
	rep := &aggregation.MovementReport{
		Dates: []string{"10-01-2024"},
		Rows: []aggregation.MovementRow{{
			Date:              "10-01-2024",
			ItemName:          "Tuna (Choora)",
			StockPurchased:    decimal.NewFromInt(10),
			StockLeft:         decimal.NewFromInt(3),
			EstimatedSales:    decimal.NewFromInt(7),
			TotalPurchaseCost: decimal.NewFromInt(4000),
		}},
	}
	out, err := pdf.NewReportExporter("Fish Market").MovementReport(rep, "Stock Movement Report")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestAgingReport(t *testing.T) {
	rows := []aggregation.AgingRow{
		{ItemName: "Tuna", BatchNo: "B1231234", Date: "10-01-2024", AgeInDays: 0, Status: stock.StatusFresh, Weight: decimal.NewFromInt(5)},
		{ItemName: "Shark (Sravu)", BatchNo: "B4561234", Date: "07-01-2024", AgeInDays: 3, Status: stock.StatusUrgent, Weight: decimal.NewFromInt(8)},
	}
	e := pdf.NewReportExporter("")
	out, err := e.AgingReport(rows, "10-01-2024")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "application/pdf", e.ContentType())
}

func TestAgingReport_SinFilas(t *testing.T) {
	out, err := pdf.NewReportExporter("").AgingReport(nil, "10-01-2024")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
