package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/jhoicas/fishstock-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StockPurchaseRepository = (*StockPurchaseRepo)(nil)

const purchaseColumns = `id, date, time, item_name, batch_no, weight, rate_per_kg, total_cost, created_at`

// StockPurchaseRepo implementación del puerto StockPurchaseRepository sobre PostgreSQL (pool o tx).
type StockPurchaseRepo struct {
	q Querier
}

// NewStockPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockPurchaseRepository(q Querier) *StockPurchaseRepo {
	return &StockPurchaseRepo{q: q}
}

// Create persiste una compra nueva.
func (r *StockPurchaseRepo) Create(ctx context.Context, p *entity.StockPurchase) error {
	query := `
		INSERT INTO stock_purchases (id, date, time, item_name, item_key, batch_no, weight, rate_per_kg, total_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID(), p.Date(), string(p.Time()), p.ItemName(), p.ItemKey(), p.BatchNo(),
		p.Weight(), p.RatePerKg(), p.TotalCost(), p.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID. Devuelve nil, nil si no existe.
func (r *StockPurchaseRepo) GetByID(ctx context.Context, id string) (*entity.StockPurchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM stock_purchases WHERE id = $1`
	p, err := scanPurchase(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock purchase: %w", err)
	}
	return p, nil
}

// List lista compras, más recientes primero, con filtros opcionales de fecha y sesión.
func (r *StockPurchaseRepo) List(ctx context.Context, f repository.PurchaseFilter) ([]*entity.StockPurchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM stock_purchases WHERE 1 = 1`
	var args []any
	pos := 1
	if f.Date != "" {
		query += fmt.Sprintf(" AND date = $%d", pos)
		args = append(args, f.Date)
		pos++
	}
	if f.Time != "" {
		query += fmt.Sprintf(" AND time = $%d", pos)
		args = append(args, string(f.Time))
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock purchases: %w", err)
	}
	defer rows.Close()
	list := []*entity.StockPurchase{}
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock purchase: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update guarda ítem, peso, tarifa y total de una compra existente.
func (r *StockPurchaseRepo) Update(ctx context.Context, p *entity.StockPurchase) error {
	query := `
		UPDATE stock_purchases SET item_name = $2, item_key = $3, weight = $4, rate_per_kg = $5, total_cost = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID(), p.ItemName(), p.ItemKey(), p.Weight(), p.RatePerKg(), p.TotalCost())
	if err != nil {
		return fmt.Errorf("update stock purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una compra por ID.
func (r *StockPurchaseRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM stock_purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll elimina todas las compras (reinicio administrativo).
func (r *StockPurchaseRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM stock_purchases`)
	if err != nil {
		return 0, fmt.Errorf("delete all stock purchases: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanPurchase(row pgx.Row) (*entity.StockPurchase, error) {
	var (
		d         entity.PurchaseDraft
		session   string
		totalCost decimal.Decimal
	)
	if err := row.Scan(&d.ID, &d.Date, &session, &d.ItemName, &d.BatchNo,
		&d.Weight, &d.RatePerKg, &totalCost, &d.CreatedAt); err != nil {
		return nil, err
	}
	d.Time = entity.EntryTime(session)
	return entity.RestoreStockPurchase(d, totalCost), nil
}
