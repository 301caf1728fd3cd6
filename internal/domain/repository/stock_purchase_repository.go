package repository

import (
	"context"

	"github.com/jhoicas/fishstock-api/internal/domain/entity"
)

// PurchaseFilter filtros opcionales para listar compras (vacío = sin filtro).
type PurchaseFilter struct {
	Date string // DD-MM-YYYY
	Time entity.EntryTime
}

// StockPurchaseRepository define el puerto de persistencia para StockPurchase (DIP).
// Los listados devuelven las compras más recientes primero (created_at DESC).
type StockPurchaseRepository interface {
	Create(ctx context.Context, p *entity.StockPurchase) error
	GetByID(ctx context.Context, id string) (*entity.StockPurchase, error)
	List(ctx context.Context, f PurchaseFilter) ([]*entity.StockPurchase, error)
	// Update persiste una corrección administrativa (ítem, peso, tarifa y total juntos).
	Update(ctx context.Context, p *entity.StockPurchase) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}
