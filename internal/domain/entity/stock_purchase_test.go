package entity_test

import (
	"testing"

	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft() entity.PurchaseDraft {
	return entity.PurchaseDraft{
		ID:        "p-1",
		Date:      "10-01-2024",
		Time:      entity.EntryMorning,
		ItemName:  " Tuna ",
		BatchNo:   "B1234567",
		Weight:    decimal.NewFromInt(10),
		RatePerKg: decimal.NewFromInt(400),
	}
}

func TestNewStockPurchase_CalculaTotal(t *testing.T) {
	p, err := entity.NewStockPurchase(draft())
	require.NoError(t, err)
	assert.Equal(t, "Tuna", p.ItemName())
	assert.True(t, decimal.NewFromInt(4000).Equal(p.TotalCost()))
	assert.Equal(t, "tuna", p.ItemKey())
}

func TestNewStockPurchase_Validaciones(t *testing.T) {
	cases := map[string]func(*entity.PurchaseDraft){
		"sesion night":    func(d *entity.PurchaseDraft) { d.Time = entity.EntryNight },
		"sesion vacia":    func(d *entity.PurchaseDraft) { d.Time = "" },
		"sin nombre":      func(d *entity.PurchaseDraft) { d.ItemName = "   " },
		"sin lote":        func(d *entity.PurchaseDraft) { d.BatchNo = "" },
		"peso negativo":   func(d *entity.PurchaseDraft) { d.Weight = decimal.NewFromInt(-1) },
		"tarifa negativa": func(d *entity.PurchaseDraft) { d.RatePerKg = decimal.NewFromInt(-1) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := draft()
			mutate(&d)
			_, err := entity.NewStockPurchase(d)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestNewStockPurchase_FechaInvalida(t *testing.T) {
	d := draft()
	d.Date = "2024-01-10"
	_, err := entity.NewStockPurchase(d)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestReprice_ActualizaLosTresCampos(t *testing.T) {
	p, err := entity.NewStockPurchase(draft())
	require.NoError(t, err)

	require.NoError(t, p.Reprice("Pomfret (Avoli)", decimal.RequireFromString("2.5"), decimal.NewFromInt(600)))
	assert.Equal(t, "Pomfret (Avoli)", p.ItemName())
	assert.True(t, decimal.NewFromInt(1500).Equal(p.TotalCost()))

	err = p.Reprice("Pomfret (Avoli)", decimal.NewFromInt(-3), decimal.NewFromInt(600))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, decimal.NewFromInt(1500).Equal(p.TotalCost()), "un reprice fallido no altera el registro")
}

func TestNewStockPurchase_RechazaDecimalesDeMas(t *testing.T) {
	d := draft()
	d.Weight = decimal.RequireFromString("1.0005")
	_, err := entity.NewStockPurchase(d)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	d = draft()
	d.RatePerKg = decimal.RequireFromString("100.005")
	_, err = entity.NewStockPurchase(d)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewStockPurchase_TotalFraccionarioExacto(t *testing.T) {
	d := draft()
	d.Weight = decimal.RequireFromString("1.234")
	d.RatePerKg = decimal.RequireFromString("100.55")
	p, err := entity.NewStockPurchase(d)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("124.0787").Equal(p.TotalCost()))
}

func TestRestoreStockPurchase_ConservaTotalAlmacenado(t *testing.T) {
	d := draft()
	d.Time = entity.EntryNight
	p := entity.RestoreStockPurchase(d, decimal.NewFromInt(3999))
	assert.Equal(t, entity.EntryNight, p.Time())
	assert.True(t, decimal.NewFromInt(3999).Equal(p.TotalCost()))
}

func TestEntryTime(t *testing.T) {
	assert.True(t, entity.EntryNight.Valid())
	assert.False(t, entity.EntryNight.AllowedForPurchase())
	assert.False(t, entity.EntryTime("Afternoon").Valid())
	assert.Len(t, entity.PurchaseSessions(), 3)
}
