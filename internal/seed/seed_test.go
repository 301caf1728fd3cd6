package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/fishstock-api/internal/application/auth"
	"github.com/jhoicas/fishstock-api/internal/domain/repository"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/jhoicas/fishstock-api/internal/infrastructure/memory"
	"github.com/jhoicas/fishstock-api/internal/seed"
	"github.com/jhoicas/fishstock-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newSeeder(store *memory.Store) *seed.Seeder {
	authUC := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: "s", ExpMinutes: 1}).WithBcryptCost(bcrypt.MinCost)
	return seed.New(authUC, store, stock.NewBatchNumberGenerator(nil, nil), logger.Nop())
}

func TestEnsureAdmin_Idempotente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	s := newSeeder(store)
	admin := seed.Admin{Email: "admin@market.in", Password: "secreto123", Name: "Admin"}

	created, err := s.EnsureAdmin(ctx, admin)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.EnsureAdmin(ctx, admin)
	require.NoError(t, err)
	assert.False(t, created)

	u, err := store.Users().GetByEmail(ctx, "admin@market.in")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.True(t, u.IsAdmin())

	_, err = s.EnsureAdmin(ctx, seed.Admin{Email: "x@market.in"})
	assert.Error(t, err)
}

func TestDemo_SoloUnaVez(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	s := newSeeder(store)
	today := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)

	n, err := s.Demo(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	n, err = s.Demo(ctx, today)
	require.NoError(t, err)
	assert.Zero(t, n)

	todays, err := store.Purchases().List(ctx, repository.PurchaseFilter{Date: "10-01-2024"})
	require.NoError(t, err)
	assert.Len(t, todays, 3)

	left, err := store.StockLeft().List(ctx, "10-01-2024")
	require.NoError(t, err)
	assert.Empty(t, left, "hoy queda pendiente de cierre")
}
