package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/internal/application/ports"
	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/aggregation"
	"github.com/jhoicas/fishstock-api/internal/domain/repository"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/jhoicas/fishstock-api/pkg/logger"
)

// StockLeftUseCase cierre nocturno: planilla del día y registro de remanentes.
type StockLeftUseCase struct {
	purchases repository.StockPurchaseRepository
	stockLeft repository.StockLeftRepository
	tx        TxRunner
	clock     ports.Clock
	log       *logger.Logger
}

// NewStockLeftUseCase construye el caso de uso.
func NewStockLeftUseCase(
	purchases repository.StockPurchaseRepository,
	stockLeft repository.StockLeftRepository,
	tx TxRunner,
	clock ports.Clock,
	log *logger.Logger,
) *StockLeftUseCase {
	return &StockLeftUseCase{
		purchases: purchases,
		stockLeft: stockLeft,
		tx:        tx,
		clock:     clock,
		log:       log.Component("stock_left"),
	}
}

// List lista cierres; date vacío = todos.
func (uc *StockLeftUseCase) List(ctx context.Context, date string) ([]dto.StockLeftResponse, error) {
	if date != "" {
		if _, err := stock.ParseDate(date); err != nil {
			return nil, err
		}
	}
	list, err := uc.stockLeft.List(ctx, date)
	if err != nil {
		return nil, err
	}
	return ToStockLeftResponses(list), nil
}

// Sheet planilla de cierre para date (vacío = hoy).
func (uc *StockLeftUseCase) Sheet(ctx context.Context, date string) (*dto.NightSheetResponse, error) {
	sheet, err := uc.loadSheet(ctx, uc.purchases, uc.stockLeft, date)
	if err != nil {
		return nil, err
	}
	out := &dto.NightSheetResponse{Date: sheet.Date, Items: make([]dto.SheetItemResponse, 0, len(sheet.Items))}
	for _, it := range sheet.Items {
		out.Items = append(out.Items, dto.SheetItemResponse{
			ItemName:     it.ItemName,
			TotalWeight:  it.TotalWeight,
			BatchNumbers: it.BatchNumbers,
			Closed:       it.Closed,
		})
	}
	out.Complete = len(sheet.Items) > 0 && len(sheet.Pending()) == 0
	return out, nil
}

// Submit registra los remanentes de todos los ítems pendientes de la fecha en una sola transacción.
// Falta de ítems o de remanente -> domain.ErrIncompleteEntries; ítem ya cerrado -> domain.ErrDuplicate.
func (uc *StockLeftUseCase) Submit(ctx context.Context, in dto.CreateStockLeftRequest) ([]dto.StockLeftResponse, error) {
	remaining := make([]aggregation.Remaining, 0, len(in.Entries))
	for _, e := range in.Entries {
		if e.RemainingAmount == nil {
			return nil, fmt.Errorf("%w: falta el remanente de %s", domain.ErrIncompleteEntries, e.ItemName)
		}
		remaining = append(remaining, aggregation.Remaining{ItemName: e.ItemName, Amount: *e.RemainingAmount})
	}

	var saved []dto.StockLeftResponse
	err := uc.tx.Run(ctx, func(purchases repository.StockPurchaseRepository, stockLeft repository.StockLeftRepository) error {
		sheet, err := uc.loadSheet(ctx, purchases, stockLeft, in.Date)
		if err != nil {
			return err
		}
		entries, err := sheet.CloseOut(remaining, func() string { return uuid.New().String() }, uc.clock.Now())
		if err != nil {
			return err
		}
		for _, e := range entries {
			if err := stockLeft.Create(ctx, e); err != nil {
				return err
			}
		}
		saved = ToStockLeftResponses(entries)
		return nil
	})
	if err != nil {
		return nil, err
	}
	date := in.Date
	if len(saved) > 0 {
		date = saved[0].Date
	}
	uc.log.Info().Str("date", date).Int("items", len(saved)).Msg("cierre nocturno registrado")
	return saved, nil
}

func (uc *StockLeftUseCase) loadSheet(
	ctx context.Context,
	purchases repository.StockPurchaseRepository,
	stockLeft repository.StockLeftRepository,
	date string,
) (*aggregation.NightSheet, error) {
	day, _, err := ports.ResolveToday(uc.clock, date)
	if err != nil {
		return nil, err
	}
	bought, err := purchases.List(ctx, repository.PurchaseFilter{Date: day})
	if err != nil {
		return nil, err
	}
	closed, err := stockLeft.List(ctx, day)
	if err != nil {
		return nil, err
	}
	// El repo devuelve lo más reciente primero; la planilla sigue el orden de registro.
	reversePurchases(bought)
	return aggregation.BuildNightSheet(bought, closed, day)
}
