package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/internal/application/ports"
	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/aggregation"
	"github.com/jhoicas/fishstock-api/internal/domain/repository"
)

// ReportUseCase reportes de movimiento, antigüedad y ventas, y su exportación.
type ReportUseCase struct {
	purchases repository.StockPurchaseRepository
	stockLeft repository.StockLeftRepository
	clock     ports.Clock
	exporters map[string]ports.ReportExporter
}

// NewReportUseCase construye el caso de uso con los exportadores disponibles.
func NewReportUseCase(
	purchases repository.StockPurchaseRepository,
	stockLeft repository.StockLeftRepository,
	clock ports.Clock,
	exporters ...ports.ReportExporter,
) *ReportUseCase {
	byFormat := make(map[string]ports.ReportExporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &ReportUseCase{purchases: purchases, stockLeft: stockLeft, clock: clock, exporters: byFormat}
}

func (uc *ReportUseCase) movement(ctx context.Context, date string) (*aggregation.MovementReport, error) {
	purchases, entries, err := snapshot(ctx, uc.purchases, uc.stockLeft)
	if err != nil {
		return nil, err
	}
	return aggregation.BuildMovementReport(purchases, entries, date)
}

func (uc *ReportUseCase) aging(ctx context.Context, today string) (string, []aggregation.AgingRow, error) {
	day, ref, err := ports.ResolveToday(uc.clock, today)
	if err != nil {
		return "", nil, err
	}
	purchases, err := uc.purchases.List(ctx, repository.PurchaseFilter{})
	if err != nil {
		return "", nil, err
	}
	rows, err := aggregation.BuildAgingReport(purchases, ref)
	if err != nil {
		return "", nil, err
	}
	return day, rows, nil
}

// Movement reporte de movimiento (date vacío = todas las fechas).
func (uc *ReportUseCase) Movement(ctx context.Context, date string) (*dto.MovementReportResponse, error) {
	rep, err := uc.movement(ctx, date)
	if err != nil {
		return nil, err
	}
	out := &dto.MovementReportResponse{Rows: make([]dto.MovementRowDTO, 0, len(rep.Rows)), Dates: rep.Dates}
	for _, r := range rep.Rows {
		out.Rows = append(out.Rows, dto.MovementRowDTO{
			Date:              r.Date,
			ItemName:          r.ItemName,
			StockPurchased:    r.StockPurchased,
			StockLeft:         r.StockLeft,
			EstimatedSales:    r.EstimatedSales,
			TotalPurchaseCost: r.TotalPurchaseCost,
		})
	}
	return out, nil
}

// Aging reporte de antigüedad por lote respecto a today (vacío = hoy).
func (uc *ReportUseCase) Aging(ctx context.Context, today string) (*dto.AgingReportResponse, error) {
	day, rows, err := uc.aging(ctx, today)
	if err != nil {
		return nil, err
	}
	out := &dto.AgingReportResponse{Today: day, Rows: make([]dto.AgingRowDTO, 0, len(rows))}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.AgingRowDTO{
			ItemName:    r.ItemName,
			BatchNo:     r.BatchNo,
			Date:        r.Date,
			AgeInDays:   r.AgeInDays,
			Status:      string(r.Status),
			StatusLabel: r.Status.Label(),
			Weight:      r.Weight,
		})
	}
	return out, nil
}

// Sales analítica de ventas estimadas y costo por ítem (date vacío = todas las fechas).
func (uc *ReportUseCase) Sales(ctx context.Context, date string) ([]dto.SalesPointDTO, error) {
	rep, err := uc.movement(ctx, date)
	if err != nil {
		return nil, err
	}
	points := aggregation.SalesByItem(rep.Rows)
	out := make([]dto.SalesPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.SalesPointDTO{
			ItemName:       p.ItemName,
			ShortName:      p.ShortName,
			EstimatedSales: p.EstimatedSales,
			PurchaseCost:   p.PurchaseCost,
		})
	}
	return out, nil
}

func (uc *ReportUseCase) exporter(format string) (ports.ReportExporter, error) {
	e, ok := uc.exporters[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: formato de exportación %q no soportado", domain.ErrInvalidInput, format)
	}
	return e, nil
}

// ExportMovement genera el reporte de movimiento en el formato pedido.
func (uc *ReportUseCase) ExportMovement(ctx context.Context, format, date string) (*dto.ExportFile, error) {
	e, err := uc.exporter(format)
	if err != nil {
		return nil, err
	}
	rep, err := uc.movement(ctx, date)
	if err != nil {
		return nil, err
	}
	title := "Stock Movement Report"
	suffix := "all"
	if date != "" {
		title += " - " + date
		suffix = date
	}
	content, err := e.MovementReport(rep, title)
	if err != nil {
		return nil, fmt.Errorf("exportar movimiento: %w", err)
	}
	return &dto.ExportFile{
		Filename:    fmt.Sprintf("stock-movement-%s.%s", suffix, e.Format()),
		ContentType: e.ContentType(),
		Content:     content,
	}, nil
}

// ExportAging genera el reporte de antigüedad en el formato pedido.
func (uc *ReportUseCase) ExportAging(ctx context.Context, format, today string) (*dto.ExportFile, error) {
	e, err := uc.exporter(format)
	if err != nil {
		return nil, err
	}
	day, rows, err := uc.aging(ctx, today)
	if err != nil {
		return nil, err
	}
	content, err := e.AgingReport(rows, day)
	if err != nil {
		return nil, fmt.Errorf("exportar antigüedad: %w", err)
	}
	return &dto.ExportFile{
		Filename:    fmt.Sprintf("stock-aging-%s.%s", day, e.Format()),
		ContentType: e.ContentType(),
		Content:     content,
	}, nil
}

