package dto

import "github.com/shopspring/decimal"

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	Today                 string             `json:"today"`
	TodaysPurchases       []PurchaseResponse `json:"todays_purchases"`
	TotalStock            decimal.Decimal    `json:"total_stock"`
	TotalValue            decimal.Decimal    `json:"total_value"`
	TodaysPurchasedWeight decimal.Decimal    `json:"todays_purchased_weight"`

	// TodaysEstimatedSales es null mientras no exista cierre nocturno de hoy.
	TodaysEstimatedSales      *decimal.Decimal `json:"todays_estimated_sales"`
	TodaysEstimatedSalesTotal decimal.Decimal  `json:"todays_estimated_sales_total"`
	SalesPending              bool             `json:"sales_pending"`

	OldStockCount     int                 `json:"old_stock_count"`
	FastMovingItems   []string            `json:"fast_moving_items"`
	AgingAlerts       []AgingAlertDTO     `json:"aging_alerts"`
	StockDistribution []ItemWeightDTO     `json:"stock_distribution"`
	RecentEntries     []PurchaseResponse  `json:"recent_entries"`
	Display           DashboardDisplayDTO `json:"display"`
}

// DashboardDisplayDTO textos formateados para las tarjetas (₹ sin decimales, "N Kg").
type DashboardDisplayDTO struct {
	TotalStock           string `json:"total_stock"`
	TotalValue           string `json:"total_value"`
	TodaysPurchases      string `json:"todays_purchases"`
	TodaysEstimatedSales string `json:"todays_estimated_sales"`
}

// AgingAlertDTO alerta de antigüedad.
type AgingAlertDTO struct {
	ItemName  string `json:"item_name"`
	BatchNo   string `json:"batch_no"`
	AgeInDays int    `json:"age_in_days"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
}

// ItemWeightDTO peso acumulado por ítem.
type ItemWeightDTO struct {
	ItemName string          `json:"item_name"`
	Weight   decimal.Decimal `json:"weight"`
}
