// Package excel exporta los reportes de inventario a hojas XLSX con excelize.
package excel

import (
	"fmt"

	"github.com/jhoicas/fishstock-api/internal/application/ports"
	"github.com/jhoicas/fishstock-api/internal/domain/aggregation"
	"github.com/xuri/excelize/v2"
)

const (
	movementSheet = "Movement"
	agingSheet    = "Aging"
)

var _ ports.ReportExporter = (*ReportExporter)(nil)

// ReportExporter implementa ports.ReportExporter en formato XLSX.
type ReportExporter struct{}

// NewReportExporter construye el exportador.
func NewReportExporter() *ReportExporter { return &ReportExporter{} }

func (e *ReportExporter) Format() string { return "xlsx" }

func (e *ReportExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// MovementReport una fila por cierre nocturno, con título en A1 y cabecera en la fila 3.
func (e *ReportExporter) MovementReport(rep *aggregation.MovementReport, title string) ([]byte, error) {
	f, err := newWorkbook(movementSheet)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	headers := []interface{}{"Date", "Item", "Stock Purchased (Kg)", "Stock Left (Kg)", "Estimated Sales (Kg)", "Total Purchase Cost (₹)"}
	if err := writeHeader(f, movementSheet, title, headers); err != nil {
		return nil, err
	}
	for i, r := range rep.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+4)
		values := []interface{}{
			r.Date,
			r.ItemName,
			r.StockPurchased.InexactFloat64(),
			r.StockLeft.InexactFloat64(),
			r.EstimatedSales.InexactFloat64(),
			r.TotalPurchaseCost.InexactFloat64(),
		}
		if err := f.SetSheetRow(movementSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+1, err)
		}
	}
	return finish(f, movementSheet, len(headers))
}

// AgingReport una fila por lote con su edad y estado.
func (e *ReportExporter) AgingReport(rows []aggregation.AgingRow, today string) ([]byte, error) {
	f, err := newWorkbook(agingSheet)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	headers := []interface{}{"Item", "Batch No", "Purchase Date", "Age (days)", "Status", "Weight (Kg)"}
	if err := writeHeader(f, agingSheet, "Stock Aging Report - "+today, headers); err != nil {
		return nil, err
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+4)
		values := []interface{}{
			r.ItemName,
			r.BatchNo,
			r.Date,
			r.AgeInDays,
			r.Status.Label(),
			r.Weight.InexactFloat64(),
		}
		if err := f.SetSheetRow(agingSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+1, err)
		}
	}
	return finish(f, agingSheet, len(headers))
}

func newWorkbook(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	return f, nil
}

func writeHeader(f *excelize.File, sheet, title string, headers []interface{}) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("excel: estilo: %w", err)
	}
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", bold); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A3", &headers); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 3)
	return f.SetCellStyle(sheet, "A3", last, bold)
}

func finish(f *excelize.File, sheet string, cols int) ([]byte, error) {
	lastCol, _ := excelize.ColumnNumberToName(cols)
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return nil, err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
