// Package analytics contiene los casos de uso de lectura: tablero y reportes.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/internal/application/ports"
	"github.com/jhoicas/fishstock-api/internal/application/usecase"
	"github.com/jhoicas/fishstock-api/internal/domain/aggregation"
	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/jhoicas/fishstock-api/internal/domain/repository"
	"github.com/jhoicas/fishstock-api/pkg/money"
)

// pendingSalesLabel texto de la tarjeta de ventas mientras no hay cierre nocturno.
const pendingSalesLabel = "Pending (Night Entry)"

// DashboardUseCase arma el tablero a partir de todas las compras y todos los cierres.
// Se recalcula en cada llamada; no hay caché.
type DashboardUseCase struct {
	purchases repository.StockPurchaseRepository
	stockLeft repository.StockLeftRepository
	clock     ports.Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(purchases repository.StockPurchaseRepository, stockLeft repository.StockLeftRepository, clock ports.Clock) *DashboardUseCase {
	return &DashboardUseCase{purchases: purchases, stockLeft: stockLeft, clock: clock}
}

// snapshot lee ambos conjuntos de registros en paralelo y espera a los dos.
func snapshot(ctx context.Context, purchases repository.StockPurchaseRepository, stockLeft repository.StockLeftRepository) ([]*entity.StockPurchase, []*entity.StockLeftEntry, error) {
	type purchasesResult struct {
		list []*entity.StockPurchase
		err  error
	}
	type stockLeftResult struct {
		list []*entity.StockLeftEntry
		err  error
	}

	purchasesCh := make(chan purchasesResult, 1)
	stockLeftCh := make(chan stockLeftResult, 1)

	go func() {
		list, err := purchases.List(ctx, repository.PurchaseFilter{})
		purchasesCh <- purchasesResult{list, err}
	}()
	go func() {
		list, err := stockLeft.List(ctx, "")
		stockLeftCh <- stockLeftResult{list, err}
	}()

	p := <-purchasesCh
	s := <-stockLeftCh

	if p.err != nil {
		return nil, nil, fmt.Errorf("snapshot: compras: %w", p.err)
	}
	if s.err != nil {
		return nil, nil, fmt.Errorf("snapshot: cierres: %w", s.err)
	}
	return p.list, s.list, nil
}

// GetDashboard calcula el tablero para today (DD-MM-YYYY, vacío = hoy según el reloj).
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, today string) (*dto.DashboardResponse, error) {
	day, _, err := ports.ResolveToday(uc.clock, today)
	if err != nil {
		return nil, err
	}
	purchases, entries, err := snapshot(ctx, uc.purchases, uc.stockLeft)
	if err != nil {
		return nil, err
	}
	d, err := aggregation.Aggregate(purchases, entries, day)
	if err != nil {
		return nil, err
	}
	return toDashboardResponse(d), nil
}

func toDashboardResponse(d *aggregation.Dashboard) *dto.DashboardResponse {
	out := &dto.DashboardResponse{
		Today:                     d.Today,
		TodaysPurchases:           usecase.ToPurchaseResponses(d.TodaysPurchases),
		TotalStock:                d.TotalStock,
		TotalValue:                d.TotalValue,
		TodaysPurchasedWeight:     d.TodaysPurchasedWeight,
		TodaysEstimatedSalesTotal: d.TodaysEstimatedSalesTotal,
		SalesPending:              d.SalesPending,
		OldStockCount:             d.OldStockCount,
		FastMovingItems:           d.FastMovingItems,
		AgingAlerts:               make([]dto.AgingAlertDTO, 0, len(d.AgingAlerts)),
		StockDistribution:         make([]dto.ItemWeightDTO, 0, len(d.StockDistribution)),
		RecentEntries:             usecase.ToPurchaseResponses(d.RecentEntries),
		Display: dto.DashboardDisplayDTO{
			TotalStock:           money.FormatWeight(d.TotalStock),
			TotalValue:           money.FormatINR(d.TotalValue),
			TodaysPurchases:      money.FormatWeight(d.TodaysPurchasedWeight),
			TodaysEstimatedSales: pendingSalesLabel,
		},
	}
	if !d.SalesPending {
		sales := d.TodaysEstimatedSales
		out.TodaysEstimatedSales = &sales
		out.Display.TodaysEstimatedSales = money.FormatWeight(sales)
	}
	for _, a := range d.AgingAlerts {
		out.AgingAlerts = append(out.AgingAlerts, dto.AgingAlertDTO{
			ItemName:  a.ItemName,
			BatchNo:   a.BatchNo,
			AgeInDays: a.AgeInDays,
			Message:   a.Message,
			Severity:  string(a.Severity),
		})
	}
	for _, w := range d.StockDistribution {
		out.StockDistribution = append(out.StockDistribution, dto.ItemWeightDTO{ItemName: w.ItemName, Weight: w.Weight})
	}
	return out
}
