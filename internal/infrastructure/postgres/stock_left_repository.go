package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/jhoicas/fishstock-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StockLeftRepository = (*StockLeftRepo)(nil)

// StockLeftRepo implementación del puerto StockLeftRepository sobre PostgreSQL (pool o tx).
type StockLeftRepo struct {
	q Querier
}

// NewStockLeftRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLeftRepository(q Querier) *StockLeftRepo {
	return &StockLeftRepo{q: q}
}

// Create persiste un cierre. El índice único (date, item_key) rechaza dobles envíos.
func (r *StockLeftRepo) Create(ctx context.Context, e *entity.StockLeftEntry) error {
	query := `
		INSERT INTO stock_left (id, date, item_name, item_key, purchased_amount, remaining_amount, estimated_sales, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		e.ID(), e.Date(), e.ItemName(), e.ItemKey(),
		e.PurchasedAmount(), e.RemainingAmount(), e.EstimatedSales(), e.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock left: %w", err)
	}
	return nil
}

// List lista cierres, más recientes primero. date vacío = todas las fechas.
func (r *StockLeftRepo) List(ctx context.Context, date string) ([]*entity.StockLeftEntry, error) {
	query := `
		SELECT id, date, item_name, purchased_amount, remaining_amount, estimated_sales, created_at
		FROM stock_left`
	var args []any
	if date != "" {
		query += " WHERE date = $1"
		args = append(args, date)
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock left: %w", err)
	}
	defer rows.Close()
	list := []*entity.StockLeftEntry{}
	for rows.Next() {
		e, err := scanStockLeft(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock left: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// DeleteAll elimina todos los cierres (reinicio administrativo).
func (r *StockLeftRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM stock_left`)
	if err != nil {
		return 0, fmt.Errorf("delete all stock left: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanStockLeft(row pgx.Row) (*entity.StockLeftEntry, error) {
	var (
		d     entity.StockLeftDraft
		sales decimal.Decimal
	)
	if err := row.Scan(&d.ID, &d.Date, &d.ItemName, &d.PurchasedAmount, &d.RemainingAmount, &sales, &d.CreatedAt); err != nil {
		return nil, err
	}
	return entity.RestoreStockLeftEntry(d, sales), nil
}
