package usecase_test

import (
	"context"
	"testing"

	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/internal/application/usecase"
	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/infrastructure/memory"
	"github.com/jhoicas/fishstock-api/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedToday(t *testing.T, store *memory.Store) {
	t.Helper()
	uc := newPurchaseUC(store)
	reqs := []dto.CreatePurchaseRequest{
		{Time: "Morning", ItemName: "Tuna", Weight: decimal.NewFromInt(6), RatePerKg: decimal.NewFromInt(400)},
		{Time: "Noon", ItemName: "Crab (Njandu)", Weight: decimal.NewFromInt(2), RatePerKg: decimal.NewFromInt(900)},
		{Time: "Evening", ItemName: "tuna", Weight: decimal.NewFromInt(4), RatePerKg: decimal.NewFromInt(400)},
	}
	for _, r := range reqs {
		_, err := uc.Create(context.Background(), r)
		require.NoError(t, err)
	}
}

func newStockLeftUC(store *memory.Store) *usecase.StockLeftUseCase {
	return usecase.NewStockLeftUseCase(store.Purchases(), store.StockLeft(), store, fixedClock(), logger.Nop())
}

func TestStockLeftUseCase_Sheet(t *testing.T) {
	store := memory.NewStore()
	seedToday(t, store)

	sheet, err := newStockLeftUC(store).Sheet(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "10-01-2024", sheet.Date)
	require.Len(t, sheet.Items, 2)
	assert.Equal(t, "Tuna", sheet.Items[0].ItemName, "orden de registro")
	assert.True(t, decimal.NewFromInt(10).Equal(sheet.Items[0].TotalWeight))
	assert.False(t, sheet.Complete)
}

func TestStockLeftUseCase_SubmitCompleto(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedToday(t, store)
	uc := newStockLeftUC(store)

	saved, err := uc.Submit(ctx, dto.CreateStockLeftRequest{Entries: []dto.RemainingItemRequest{
		{ItemName: "TUNA", RemainingAmount: kg(3)},
		{ItemName: "Crab (Njandu)", RemainingAmount: kg(0)},
	}})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.True(t, decimal.NewFromInt(7).Equal(saved[0].EstimatedSales))

	sheet, err := uc.Sheet(ctx, "10-01-2024")
	require.NoError(t, err)
	assert.True(t, sheet.Complete)

	_, err = uc.Submit(ctx, dto.CreateStockLeftRequest{Entries: []dto.RemainingItemRequest{
		{ItemName: "Tuna", RemainingAmount: kg(1)},
	}})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "la fecha ya tiene cierre")
}

func TestStockLeftUseCase_SubmitIncompletoNoGuardaNada(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedToday(t, store)
	uc := newStockLeftUC(store)

	_, err := uc.Submit(ctx, dto.CreateStockLeftRequest{Entries: []dto.RemainingItemRequest{
		{ItemName: "Tuna", RemainingAmount: kg(3)},
	}})
	assert.ErrorIs(t, err, domain.ErrIncompleteEntries)

	list, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStockLeftUseCase_SubmitSinRemanenteEsIncompleto(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedToday(t, store)
	uc := newStockLeftUC(store)

	_, err := uc.Submit(ctx, dto.CreateStockLeftRequest{Entries: []dto.RemainingItemRequest{
		{ItemName: "Tuna", RemainingAmount: kg(3)},
		{ItemName: "Crab (Njandu)"},
	}})
	assert.ErrorIs(t, err, domain.ErrIncompleteEntries)

	list, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, list, "nada se guarda como vendido")

	_, err = uc.Submit(ctx, dto.CreateStockLeftRequest{Entries: []dto.RemainingItemRequest{
		{ItemName: "Tuna", RemainingAmount: kg(3)},
		{ItemName: "Crab (Njandu)", RemainingAmount: kg(1)},
	}})
	require.NoError(t, err, "el envío corregido se acepta")
}

func TestStockLeftUseCase_SubmitFechaInvalida(t *testing.T) {
	uc := newStockLeftUC(memory.NewStore())
	_, err := uc.Submit(context.Background(), dto.CreateStockLeftRequest{
		Date:    "10/01/2024",
		Entries: []dto.RemainingItemRequest{{ItemName: "Tuna", RemainingAmount: kg(0)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
