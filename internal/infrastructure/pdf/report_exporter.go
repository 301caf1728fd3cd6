// Package pdf genera los reportes de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de referencia          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: cabecera + una fila por registro                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES (movimiento) / resumen por estado (antigüedad)      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/fishstock-api/internal/application/ports"
	"github.com/jhoicas/fishstock-api/internal/domain/aggregation"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/jhoicas/fishstock-api/pkg/money"
	"github.com/shopspring/decimal"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorUrgent  = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorWarning = &props.Color{Red: 200, Green: 120, Blue: 0}
)

var _ ports.ReportExporter = (*ReportExporter)(nil)

// ReportExporter implementa ports.ReportExporter usando Maroto v2.
type ReportExporter struct {
	author string
}

// NewReportExporter construye el exportador; author va en los metadatos del PDF.
func NewReportExporter(author string) *ReportExporter { return &ReportExporter{author: author} }

func (g *ReportExporter) Format() string      { return "pdf" }
func (g *ReportExporter) ContentType() string { return "application/pdf" }

// column describe una columna de la tabla: etiqueta, ancho (de 12) y alineación.
type column struct {
	label string
	size  int
	align align.Type
}

var movementColumns = []column{
	{"Date", 2, align.Left},
	{"Item", 3, align.Left},
	{"Purchased", 2, align.Right},
	{"Left", 1, align.Right},
	{"Sales", 2, align.Right},
	{"Cost", 2, align.Right},
}

var agingColumns = []column{
	{"Item", 3, align.Left},
	{"Batch", 2, align.Left},
	{"Date", 2, align.Left},
	{"Age", 1, align.Center},
	{"Status", 2, align.Left},
	{"Weight", 2, align.Right},
}

// MovementReport genera el PDF del reporte de movimiento.
func (g *ReportExporter) MovementReport(rep *aggregation.MovementReport, title string) ([]byte, error) {
	m := g.newDocument(title)

	m.AddRows(headerRow(title, fmt.Sprintf("%d registros", len(rep.Rows))))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(movementColumns))

	purchased, left, sales, cost := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range rep.Rows {
		m.AddRows(tableRow(movementColumns, nil,
			r.Date,
			r.ItemName,
			money.FormatWeight(r.StockPurchased),
			money.FormatWeight(r.StockLeft),
			money.FormatWeight(r.EstimatedSales),
			money.FormatINR(r.TotalPurchaseCost),
		))
		purchased = purchased.Add(r.StockPurchased)
		left = left.Add(r.StockLeft)
		sales = sales.Add(r.EstimatedSales)
		cost = cost.Add(r.TotalPurchaseCost)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(movementColumns,
		"TOTAL",
		"",
		money.FormatWeight(purchased),
		money.FormatWeight(left),
		money.FormatWeight(sales),
		money.FormatINR(cost),
	))
	return generate(m)
}

// AgingReport genera el PDF del reporte de antigüedad; las filas urgentes y moderadas van coloreadas.
func (g *ReportExporter) AgingReport(rows []aggregation.AgingRow, today string) ([]byte, error) {
	title := "Stock Aging Report"
	m := g.newDocument(title)

	m.AddRows(headerRow(title, "Fecha: "+today))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(agingColumns))

	counts := make(map[stock.Status]int)
	for _, r := range rows {
		counts[r.Status]++
		m.AddRows(tableRow(agingColumns, statusColor(r.Status),
			r.ItemName,
			r.BatchNo,
			r.Date,
			fmt.Sprintf("%d", r.AgeInDays),
			r.Status.Label(),
			money.FormatWeight(r.Weight),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, s := range []stock.Status{stock.StatusFresh, stock.StatusModerate, stock.StatusUrgent} {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s (%s): %d", s.Label(), s.Description(), counts[s]), props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)))
	}
	return generate(m)
}

func (g *ReportExporter) newDocument(title string) core.Maroto {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true)
	if g.author != "" {
		b = b.WithAuthor(g.author, true)
	}
	return maroto.New(b.Build())
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title, subtitle string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(subtitle, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(cols []column) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(out...)
}

func tableRow(cols []column, color *props.Color, values ...string) core.Row {
	out := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(values[i], props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1, Color: color,
		})))
	}
	return row.New(6).Add(out...)
}

func totalsRow(cols []column, values ...string) core.Row {
	out := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(values[i], props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(out...)
}

func statusColor(s stock.Status) *props.Color {
	switch s {
	case stock.StatusUrgent:
		return colorUrgent
	case stock.StatusModerate:
		return colorWarning
	default:
		return nil
	}
}
