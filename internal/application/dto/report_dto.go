package dto

import "github.com/shopspring/decimal"

// MovementRowDTO fila del reporte de movimiento.
type MovementRowDTO struct {
	Date              string          `json:"date"`
	ItemName          string          `json:"item_name"`
	StockPurchased    decimal.Decimal `json:"stock_purchased"`
	StockLeft         decimal.Decimal `json:"stock_left"`
	EstimatedSales    decimal.Decimal `json:"estimated_sales"`
	TotalPurchaseCost decimal.Decimal `json:"total_purchase_cost"`
}

// MovementReportResponse respuesta de GET /api/reports/movement.
type MovementReportResponse struct {
	Rows  []MovementRowDTO `json:"rows"`
	Dates []string         `json:"dates"`
}

// AgingRowDTO fila del reporte de antigüedad.
type AgingRowDTO struct {
	ItemName    string          `json:"item_name"`
	BatchNo     string          `json:"batch_no"`
	Date        string          `json:"date"`
	AgeInDays   int             `json:"age_in_days"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
	Weight      decimal.Decimal `json:"weight"`
}

// AgingReportResponse respuesta de GET /api/reports/aging.
type AgingReportResponse struct {
	Today string        `json:"today"`
	Rows  []AgingRowDTO `json:"rows"`
}

// SalesPointDTO punto de la analítica de ventas por ítem.
type SalesPointDTO struct {
	ItemName       string          `json:"item_name"`
	ShortName      string          `json:"short_name"`
	EstimatedSales decimal.Decimal `json:"estimated_sales"`
	PurchaseCost   decimal.Decimal `json:"purchase_cost"`
}

// ExportFile archivo generado para descarga.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
