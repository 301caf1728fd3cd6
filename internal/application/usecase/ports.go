package usecase

import (
	"context"

	"github.com/jhoicas/fishstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		purchases repository.StockPurchaseRepository,
		stockLeft repository.StockLeftRepository,
	) error) error
}

// BatchNumbers genera números de lote para compras nuevas.
type BatchNumbers interface {
	Next() string
}
