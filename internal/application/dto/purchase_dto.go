package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest entrada para registrar una compra. La fecha y el lote los asigna el servidor.
type CreatePurchaseRequest struct {
	Time      string          `json:"time" validate:"required,oneof=Morning Noon Evening"`
	ItemName  string          `json:"item_name" validate:"required,max=120"`
	Weight    decimal.Decimal `json:"weight"`
	RatePerKg decimal.Decimal `json:"rate_per_kg"`
}

// UpdatePurchaseRequest corrección administrativa: ítem, peso y tarifa juntos.
type UpdatePurchaseRequest struct {
	ItemName  string          `json:"item_name" validate:"required,max=120"`
	Weight    decimal.Decimal `json:"weight"`
	RatePerKg decimal.Decimal `json:"rate_per_kg"`
}

// PurchaseListQuery filtros de GET /api/purchases.
type PurchaseListQuery struct {
	Date string `query:"date"`
	Time string `query:"time" validate:"omitempty,oneof=Morning Noon Evening Night"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	ItemName  string          `json:"item_name"`
	BatchNo   string          `json:"batch_no"`
	Weight    decimal.Decimal `json:"weight"`
	RatePerKg decimal.Decimal `json:"rate_per_kg"`
	TotalCost decimal.Decimal `json:"total_cost"`
	CreatedAt time.Time       `json:"created_at"`
}

// ResetResponse resultado de POST /api/admin/reset.
type ResetResponse struct {
	PurchasesDeleted int64 `json:"purchases_deleted"`
	StockLeftDeleted int64 `json:"stock_left_deleted"`
}
