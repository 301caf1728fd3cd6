package entity_test

import (
	"testing"

	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockLeftEntry_CalculaVentas(t *testing.T) {
	e, err := entity.NewStockLeftEntry(entity.StockLeftDraft{
		ID:              "s-1",
		Date:            "10-01-2024",
		ItemName:        "Tuna",
		PurchasedAmount: decimal.NewFromInt(10),
		RemainingAmount: decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7).Equal(e.EstimatedSales()))
}

func TestNewStockLeftEntry_RemanenteFueraDeRango(t *testing.T) {
	base := entity.StockLeftDraft{ID: "s-1", Date: "10-01-2024", ItemName: "Tuna", PurchasedAmount: decimal.NewFromInt(3)}

	over := base
	over.RemainingAmount = decimal.NewFromInt(10)
	_, err := entity.NewStockLeftEntry(over)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	neg := base
	neg.RemainingAmount = decimal.NewFromInt(-1)
	_, err = entity.NewStockLeftEntry(neg)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	precise := base
	precise.RemainingAmount = decimal.RequireFromString("1.0005")
	_, err = entity.NewStockLeftEntry(precise)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := base
	bad.Date = "10.01.2024"
	_, err = entity.NewStockLeftEntry(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestUser_Roles(t *testing.T) {
	assert.True(t, (&entity.User{Role: entity.RoleAdmin}).IsAdmin())
	assert.False(t, (&entity.User{Role: entity.RoleStaff}).IsAdmin())
	assert.True(t, entity.ValidRole(entity.RoleStaff))
	assert.False(t, entity.ValidRole("vendedor"))
}
