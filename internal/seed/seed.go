// Package seed crea el administrador inicial y, opcionalmente, datos de demostración.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/fishstock-api/internal/application/auth"
	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/internal/application/usecase"
	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/jhoicas/fishstock-api/internal/domain/repository"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/jhoicas/fishstock-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Admin credenciales del administrador inicial.
type Admin struct {
	Email    string
	Password string
	Name     string
}

// Seeder puebla el almacenamiento.
type Seeder struct {
	auth    *auth.AuthUseCase
	tx      usecase.TxRunner
	batches usecase.BatchNumbers
	log     *logger.Logger
}

// New construye el seeder.
func New(authUC *auth.AuthUseCase, tx usecase.TxRunner, batches usecase.BatchNumbers, log *logger.Logger) *Seeder {
	return &Seeder{auth: authUC, tx: tx, batches: batches, log: log.Component("seed")}
}

// EnsureAdmin crea el administrador si no existe. Devuelve true si lo creó.
func (s *Seeder) EnsureAdmin(ctx context.Context, a Admin) (bool, error) {
	if a.Password == "" {
		return false, fmt.Errorf("%w: SEED_ADMIN_PASSWORD vacío", domain.ErrInvalidInput)
	}
	_, err := s.auth.RegisterUser(ctx, dto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		Name:     a.Name,
		Role:     entity.RoleAdmin,
	})
	switch {
	case err == nil:
		s.log.Info().Str("email", a.Email).Msg("administrador creado")
		return true, nil
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		s.log.Info().Str("email", a.Email).Msg("administrador ya existe")
		return false, nil
	default:
		return false, err
	}
}

type demoLot struct {
	daysAgo   int
	session   entity.EntryTime
	item      string
	weight    int64
	rate      int64
	remaining int64 // -1 = sin cierre
}

// demoLots una semana corta de compras: hoy sin cierre, días anteriores cerrados y lotes viejos para alertas.
var demoLots = []demoLot{
	{0, entity.EntryMorning, "Tuna (Choora)", 10, 400, -1},
	{0, entity.EntryNoon, "Sardine (Mathi)", 25, 150, -1},
	{0, entity.EntryEvening, "Prawns (Chemmeen)", 4, 650, -1},
	{1, entity.EntryMorning, "Seer Fish (Neymeen)", 8, 900, 2},
	{1, entity.EntryNoon, "Mackerel (Ayala)", 15, 220, 5},
	{2, entity.EntryMorning, "Pomfret (Avoli)", 6, 750, 1},
	{2, entity.EntryEvening, "Squid (Koonthal)", 5, 380, 2},
	{3, entity.EntryMorning, "Shark (Sravu)", 12, 300, 4},
	{4, entity.EntryNoon, "Crab (Njandu)", 3, 850, 0},
}

// Demo inserta compras y cierres de ejemplo relativos a today, en una transacción.
// No hace nada si ya existen compras.
func (s *Seeder) Demo(ctx context.Context, today time.Time) (int, error) {
	inserted := 0
	err := s.tx.Run(ctx, func(purchases repository.StockPurchaseRepository, stockLeft repository.StockLeftRepository) error {
		existing, err := purchases.List(ctx, repository.PurchaseFilter{})
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}
		for _, lot := range demoLots {
			day := stock.FormatDate(today.AddDate(0, 0, -lot.daysAgo))
			p, err := entity.NewStockPurchase(entity.PurchaseDraft{
				ID:        uuid.New().String(),
				Date:      day,
				Time:      lot.session,
				ItemName:  lot.item,
				BatchNo:   s.batches.Next(),
				Weight:    decimal.NewFromInt(lot.weight),
				RatePerKg: decimal.NewFromInt(lot.rate),
				CreatedAt: today,
			})
			if err != nil {
				return err
			}
			if err := purchases.Create(ctx, p); err != nil {
				return err
			}
			inserted++
			if lot.remaining < 0 {
				continue
			}
			e, err := entity.NewStockLeftEntry(entity.StockLeftDraft{
				ID:              uuid.New().String(),
				Date:            day,
				ItemName:        lot.item,
				PurchasedAmount: p.Weight(),
				RemainingAmount: decimal.NewFromInt(lot.remaining),
				CreatedAt:       today,
			})
			if err != nil {
				return err
			}
			if err := stockLeft.Create(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("purchases", inserted).Msg("datos de demostración cargados")
	return inserted, nil
}
