package ports

import (
	"github.com/jhoicas/fishstock-api/internal/domain/aggregation"
)

// ReportExporter renderiza los reportes en un formato descargable (XLSX, PDF).
type ReportExporter interface {
	// Format identificador del formato ("xlsx", "pdf").
	Format() string
	ContentType() string
	MovementReport(rep *aggregation.MovementReport, title string) ([]byte, error)
	AgingReport(rows []aggregation.AgingRow, today string) ([]byte, error)
}
