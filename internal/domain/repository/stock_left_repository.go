package repository

import (
	"context"

	"github.com/jhoicas/fishstock-api/internal/domain/entity"
)

// StockLeftRepository define el puerto de persistencia para StockLeftEntry.
// Create devuelve domain.ErrDuplicate si ya existe un cierre para (fecha, ítem normalizado).
type StockLeftRepository interface {
	Create(ctx context.Context, e *entity.StockLeftEntry) error
	// List devuelve los cierres más recientes primero; date vacío = todas las fechas.
	List(ctx context.Context, date string) ([]*entity.StockLeftEntry, error)
	DeleteAll(ctx context.Context) (int64, error)
}
