package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// StockLeftDraft datos de entrada para un cierre nocturno de un ítem.
type StockLeftDraft struct {
	ID              string
	Date            string // DD-MM-YYYY
	ItemName        string
	PurchasedAmount decimal.Decimal
	RemainingAmount decimal.Decimal
	CreatedAt       time.Time
}

// StockLeftEntry stock remanente de un ítem al cierre del día. Inmutable una vez creado.
type StockLeftEntry struct {
	id              string
	date            string
	itemName        string
	purchasedAmount decimal.Decimal
	remainingAmount decimal.Decimal
	estimatedSales  decimal.Decimal
	createdAt       time.Time
}

// NewStockLeftEntry valida 0 <= remaining <= purchased y calcula estimatedSales.
func NewStockLeftEntry(d StockLeftDraft) (*StockLeftEntry, error) {
	if _, err := stock.ParseDate(d.Date); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(d.ItemName)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre de ítem requerido", domain.ErrInvalidInput)
	}
	if d.PurchasedAmount.IsNegative() || d.RemainingAmount.IsNegative() {
		return nil, fmt.Errorf("%w: cantidades no pueden ser negativas", domain.ErrInvalidInput)
	}
	if !stock.FitsPlaces(d.RemainingAmount, stock.WeightPlaces) {
		return nil, fmt.Errorf("%w: el remanente admite hasta %d decimales", domain.ErrInvalidInput, stock.WeightPlaces)
	}
	if d.RemainingAmount.GreaterThan(d.PurchasedAmount) {
		return nil, fmt.Errorf("%w: remanente de %s (%s) supera lo comprado (%s)",
			domain.ErrInvalidInput, name, d.RemainingAmount, d.PurchasedAmount)
	}
	return &StockLeftEntry{
		id:              d.ID,
		date:            d.Date,
		itemName:        name,
		purchasedAmount: d.PurchasedAmount,
		remainingAmount: d.RemainingAmount,
		estimatedSales:  stock.CalculateEstimatedSales(d.PurchasedAmount, d.RemainingAmount),
		createdAt:       d.CreatedAt,
	}, nil
}

// RestoreStockLeftEntry rehidrata un cierre persistido con su estimatedSales almacenado.
func RestoreStockLeftEntry(d StockLeftDraft, estimatedSales decimal.Decimal) *StockLeftEntry {
	return &StockLeftEntry{
		id:              d.ID,
		date:            d.Date,
		itemName:        d.ItemName,
		purchasedAmount: d.PurchasedAmount,
		remainingAmount: d.RemainingAmount,
		estimatedSales:  estimatedSales,
		createdAt:       d.CreatedAt,
	}
}

func (e *StockLeftEntry) ID() string                       { return e.id }
func (e *StockLeftEntry) Date() string                     { return e.date }
func (e *StockLeftEntry) ItemName() string                 { return e.itemName }
func (e *StockLeftEntry) PurchasedAmount() decimal.Decimal { return e.purchasedAmount }
func (e *StockLeftEntry) RemainingAmount() decimal.Decimal { return e.remainingAmount }
func (e *StockLeftEntry) EstimatedSales() decimal.Decimal  { return e.estimatedSales }
func (e *StockLeftEntry) CreatedAt() time.Time             { return e.createdAt }

// ItemKey clave normalizada del ítem.
func (e *StockLeftEntry) ItemKey() string { return stock.ItemKey(e.itemName) }
