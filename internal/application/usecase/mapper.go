package usecase

import (
	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/internal/domain/entity"
)

// ToPurchaseResponse mapea una compra a su DTO.
func ToPurchaseResponse(p *entity.StockPurchase) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		ID:        p.ID(),
		Date:      p.Date(),
		Time:      string(p.Time()),
		ItemName:  p.ItemName(),
		BatchNo:   p.BatchNo(),
		Weight:    p.Weight(),
		RatePerKg: p.RatePerKg(),
		TotalCost: p.TotalCost(),
		CreatedAt: p.CreatedAt(),
	}
}

// ToPurchaseResponses mapea una lista de compras (nunca nil).
func ToPurchaseResponses(list []*entity.StockPurchase) []dto.PurchaseResponse {
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToPurchaseResponse(p))
	}
	return out
}

// ToStockLeftResponse mapea un cierre a su DTO.
func ToStockLeftResponse(e *entity.StockLeftEntry) dto.StockLeftResponse {
	return dto.StockLeftResponse{
		ID:              e.ID(),
		Date:            e.Date(),
		ItemName:        e.ItemName(),
		PurchasedAmount: e.PurchasedAmount(),
		RemainingAmount: e.RemainingAmount(),
		EstimatedSales:  e.EstimatedSales(),
		CreatedAt:       e.CreatedAt(),
	}
}

// ToStockLeftResponses mapea una lista de cierres (nunca nil).
func ToStockLeftResponses(list []*entity.StockLeftEntry) []dto.StockLeftResponse {
	out := make([]dto.StockLeftResponse, 0, len(list))
	for _, e := range list {
		out = append(out, ToStockLeftResponse(e))
	}
	return out
}

func reversePurchases(list []*entity.StockPurchase) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}
