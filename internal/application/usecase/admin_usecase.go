package usecase

import (
	"context"

	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/internal/domain/repository"
	"github.com/jhoicas/fishstock-api/pkg/logger"
)

// AdminUseCase acciones administrativas sobre todos los registros.
type AdminUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(tx TxRunner, log *logger.Logger) *AdminUseCase {
	return &AdminUseCase{tx: tx, log: log.Component("admin")}
}

// ResetAll elimina todas las compras y todos los cierres en una transacción.
func (uc *AdminUseCase) ResetAll(ctx context.Context, actorID string) (*dto.ResetResponse, error) {
	var out dto.ResetResponse
	err := uc.tx.Run(ctx, func(purchases repository.StockPurchaseRepository, stockLeft repository.StockLeftRepository) error {
		n, err := stockLeft.DeleteAll(ctx)
		if err != nil {
			return err
		}
		out.StockLeftDeleted = n
		n, err = purchases.DeleteAll(ctx)
		if err != nil {
			return err
		}
		out.PurchasesDeleted = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Warn().
		Str("actor", actorID).
		Int64("purchases", out.PurchasesDeleted).
		Int64("stock_left", out.StockLeftDeleted).
		Msg("reinicio de inventario")
	return &out, nil
}
