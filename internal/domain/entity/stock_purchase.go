package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// PurchaseDraft datos de entrada para construir una StockPurchase.
type PurchaseDraft struct {
	ID        string
	Date      string // DD-MM-YYYY
	Time      EntryTime
	ItemName  string
	BatchNo   string
	Weight    decimal.Decimal
	RatePerKg decimal.Decimal
	CreatedAt time.Time
}

// StockPurchase compra de stock registrada por el personal.
// TotalCost se calcula una sola vez en NewStockPurchase o Reprice; no hay setter independiente.
type StockPurchase struct {
	id        string
	date      string
	time      EntryTime
	itemName  string
	batchNo   string
	weight    decimal.Decimal
	ratePerKg decimal.Decimal
	totalCost decimal.Decimal
	createdAt time.Time
}

// NewStockPurchase valida el borrador y calcula totalCost = weight * ratePerKg.
func NewStockPurchase(d PurchaseDraft) (*StockPurchase, error) {
	if !d.Time.AllowedForPurchase() {
		return nil, fmt.Errorf("%w: sesión %q no válida para compras", domain.ErrInvalidInput, d.Time)
	}
	p := &StockPurchase{
		id:        d.ID,
		date:      d.Date,
		time:      d.Time,
		batchNo:   strings.TrimSpace(d.BatchNo),
		createdAt: d.CreatedAt,
	}
	if _, err := stock.ParseDate(d.Date); err != nil {
		return nil, err
	}
	if p.batchNo == "" {
		return nil, fmt.Errorf("%w: número de lote requerido", domain.ErrInvalidInput)
	}
	if err := p.Reprice(d.ItemName, d.Weight, d.RatePerKg); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreStockPurchase rehidrata una compra persistida. totalCost se toma tal cual se guardó.
func RestoreStockPurchase(d PurchaseDraft, totalCost decimal.Decimal) *StockPurchase {
	return &StockPurchase{
		id:        d.ID,
		date:      d.Date,
		time:      d.Time,
		itemName:  d.ItemName,
		batchNo:   d.BatchNo,
		weight:    d.Weight,
		ratePerKg: d.RatePerKg,
		totalCost: totalCost,
		createdAt: d.CreatedAt,
	}
}

// Reprice corrección administrativa: actualiza ítem, peso, tarifa y total juntos.
func (p *StockPurchase) Reprice(itemName string, weight, ratePerKg decimal.Decimal) error {
	name := strings.TrimSpace(itemName)
	if name == "" {
		return fmt.Errorf("%w: nombre de ítem requerido", domain.ErrInvalidInput)
	}
	if weight.IsNegative() || ratePerKg.IsNegative() {
		return fmt.Errorf("%w: peso y tarifa no pueden ser negativos", domain.ErrInvalidInput)
	}
	if !stock.FitsPlaces(weight, stock.WeightPlaces) {
		return fmt.Errorf("%w: el peso admite hasta %d decimales", domain.ErrInvalidInput, stock.WeightPlaces)
	}
	if !stock.FitsPlaces(ratePerKg, stock.RatePlaces) {
		return fmt.Errorf("%w: la tarifa admite hasta %d decimales", domain.ErrInvalidInput, stock.RatePlaces)
	}
	p.itemName = name
	p.weight = weight
	p.ratePerKg = ratePerKg
	p.totalCost = stock.CalculateTotalCost(weight, ratePerKg)
	return nil
}

func (p *StockPurchase) ID() string                 { return p.id }
func (p *StockPurchase) Date() string               { return p.date }
func (p *StockPurchase) Time() EntryTime            { return p.time }
func (p *StockPurchase) ItemName() string           { return p.itemName }
func (p *StockPurchase) BatchNo() string            { return p.batchNo }
func (p *StockPurchase) Weight() decimal.Decimal    { return p.weight }
func (p *StockPurchase) RatePerKg() decimal.Decimal { return p.ratePerKg }
func (p *StockPurchase) TotalCost() decimal.Decimal { return p.totalCost }
func (p *StockPurchase) CreatedAt() time.Time       { return p.createdAt }

// ItemKey clave normalizada del ítem (unión con cierres nocturnos).
func (p *StockPurchase) ItemKey() string { return stock.ItemKey(p.itemName) }
