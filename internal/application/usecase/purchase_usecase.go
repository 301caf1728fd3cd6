package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/internal/application/ports"
	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/jhoicas/fishstock-api/internal/domain/repository"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/jhoicas/fishstock-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// PurchaseUseCase registro y consulta de compras de stock.
type PurchaseUseCase struct {
	repo      repository.StockPurchaseRepository
	stockLeft repository.StockLeftRepository
	batches   BatchNumbers
	clock     ports.Clock
	log       *logger.Logger
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	repo repository.StockPurchaseRepository,
	stockLeft repository.StockLeftRepository,
	batches BatchNumbers,
	clock ports.Clock,
	log *logger.Logger,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		repo:      repo,
		stockLeft: stockLeft,
		batches:   batches,
		clock:     clock,
		log:       log.Component("purchases"),
	}
}

// Create registra una compra con la fecha de hoy, un lote nuevo y totalCost calculado.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := requirePositive(in.Weight, in.RatePerKg); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	p, err := entity.NewStockPurchase(entity.PurchaseDraft{
		ID:        uuid.New().String(),
		Date:      stock.FormatDate(now),
		Time:      entity.EntryTime(in.Time),
		ItemName:  in.ItemName,
		BatchNo:   uc.batches.Next(),
		Weight:    in.Weight,
		RatePerKg: in.RatePerKg,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("id", p.ID()).
		Str("item", p.ItemName()).
		Str("batch_no", p.BatchNo()).
		Str("total_cost", p.TotalCost().String()).
		Msg("compra registrada")
	out := ToPurchaseResponse(p)
	return &out, nil
}

// List lista compras, más recientes primero, con filtros opcionales.
func (uc *PurchaseUseCase) List(ctx context.Context, q dto.PurchaseListQuery) ([]dto.PurchaseResponse, error) {
	if q.Date != "" {
		if _, err := stock.ParseDate(q.Date); err != nil {
			return nil, err
		}
	}
	list, err := uc.repo.List(ctx, repository.PurchaseFilter{Date: q.Date, Time: entity.EntryTime(q.Time)})
	if err != nil {
		return nil, err
	}
	return ToPurchaseResponses(list), nil
}

// Update corrección administrativa: ítem, peso y tarifa se actualizan juntos y el total se recalcula.
// No se puede cambiar el ítem si el anterior o el nuevo ya tienen cierre en la fecha de la compra
// (domain.ErrItemClosed).
func (uc *PurchaseUseCase) Update(ctx context.Context, id string, in dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := requirePositive(in.Weight, in.RatePerKg); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !stock.SameItem(p.ItemName(), in.ItemName) {
		if err := uc.ensureOpen(ctx, p.Date(), p.ItemName(), in.ItemName); err != nil {
			return nil, err
		}
	}
	if err := p.Reprice(in.ItemName, in.Weight, in.RatePerKg); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", id).Str("total_cost", p.TotalCost().String()).Msg("compra corregida")
	out := ToPurchaseResponse(p)
	return &out, nil
}

// ensureOpen falla si alguno de los ítems ya tiene cierre en date.
func (uc *PurchaseUseCase) ensureOpen(ctx context.Context, date string, items ...string) error {
	closed, err := uc.stockLeft.List(ctx, date)
	if err != nil {
		return err
	}
	for _, e := range closed {
		for _, item := range items {
			if stock.SameItem(e.ItemName(), item) {
				return fmt.Errorf("%w: %s en %s", domain.ErrItemClosed, e.ItemName(), date)
			}
		}
	}
	return nil
}

// Delete elimina una compra (acción administrativa).
func (uc *PurchaseUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("id", id).Msg("compra eliminada")
	return nil
}

// FishCatalog búsqueda en el catálogo de pescados del formulario.
func (uc *PurchaseUseCase) FishCatalog(term string) []string {
	return stock.SearchCatalog(term)
}

func requirePositive(weight, rate decimal.Decimal) error {
	if !weight.IsPositive() {
		return fmt.Errorf("%w: el peso debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if !rate.IsPositive() {
		return fmt.Errorf("%w: la tarifa por kg debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return nil
}
