package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RemainingItemRequest remanente medido de un ítem. RemainingAmount nil (ausente o null)
// significa que no se midió; 0 es "todo vendido".
type RemainingItemRequest struct {
	ItemName        string           `json:"item_name" validate:"required"`
	RemainingAmount *decimal.Decimal `json:"remaining_amount"`
}

// CreateStockLeftRequest cierre nocturno: un remanente por cada ítem comprado en la fecha.
// Date vacío = hoy.
type CreateStockLeftRequest struct {
	Date    string                 `json:"date"`
	Entries []RemainingItemRequest `json:"entries" validate:"required,min=1,dive"`
}

// StockLeftResponse salida de un cierre.
type StockLeftResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	ItemName        string          `json:"item_name"`
	PurchasedAmount decimal.Decimal `json:"purchased_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	EstimatedSales  decimal.Decimal `json:"estimated_sales"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SheetItemResponse ítem de la planilla de cierre.
type SheetItemResponse struct {
	ItemName     string          `json:"item_name"`
	TotalWeight  decimal.Decimal `json:"total_weight"`
	BatchNumbers []string        `json:"batch_numbers"`
	Closed       bool            `json:"closed"`
}

// NightSheetResponse planilla de cierre de una fecha.
type NightSheetResponse struct {
	Date     string              `json:"date"`
	Items    []SheetItemResponse `json:"items"`
	Complete bool                `json:"complete"` // todos los ítems ya tienen cierre
}
