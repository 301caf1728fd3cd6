package aggregation

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// MovementRow fila del reporte de movimiento: un cierre nocturno con el costo de sus compras.
type MovementRow struct {
	Date              string
	ItemName          string
	StockPurchased    decimal.Decimal
	StockLeft         decimal.Decimal
	EstimatedSales    decimal.Decimal
	TotalPurchaseCost decimal.Decimal
}

// MovementReport resultado del reporte de movimiento.
type MovementReport struct {
	Rows []MovementRow
	// Dates fechas distintas disponibles para filtrar, en orden de aparición.
	Dates []string
}

type dayItem struct {
	date string
	key  string
}

// BuildMovementReport une cada cierre con las compras de la misma (fecha, ítem) y suma su costo.
// dateFilter vacío incluye todas las fechas; Dates siempre lista todas.
func BuildMovementReport(purchases []*entity.StockPurchase, entries []*entity.StockLeftEntry, dateFilter string) (*MovementReport, error) {
	if dateFilter != "" {
		if _, err := stock.ParseDate(dateFilter); err != nil {
			return nil, err
		}
	}
	cost := make(map[dayItem]decimal.Decimal)
	for _, p := range purchases {
		k := dayItem{p.Date(), p.ItemKey()}
		cost[k] = cost[k].Add(p.TotalCost())
	}

	rep := &MovementReport{Rows: []MovementRow{}, Dates: []string{}}
	seen := make(map[string]bool)
	for _, e := range entries {
		if _, err := stock.ParseDate(e.Date()); err != nil {
			return nil, fmt.Errorf("cierre %s: %w", e.ID(), err)
		}
		if !seen[e.Date()] {
			seen[e.Date()] = true
			rep.Dates = append(rep.Dates, e.Date())
		}
		if dateFilter != "" && e.Date() != dateFilter {
			continue
		}
		rep.Rows = append(rep.Rows, MovementRow{
			Date:              e.Date(),
			ItemName:          e.ItemName(),
			StockPurchased:    e.PurchasedAmount(),
			StockLeft:         e.RemainingAmount(),
			EstimatedSales:    e.EstimatedSales(),
			TotalPurchaseCost: cost[dayItem{e.Date(), e.ItemKey()}],
		})
	}
	return rep, nil
}

// AgingRow fila del reporte de antigüedad por lote.
type AgingRow struct {
	ItemName  string
	BatchNo   string
	Date      string
	AgeInDays int
	Status    stock.Status
	Weight    decimal.Decimal
}

// BuildAgingReport clasifica cada compra por su edad respecto a today.
func BuildAgingReport(purchases []*entity.StockPurchase, today time.Time) ([]AgingRow, error) {
	rows := make([]AgingRow, 0, len(purchases))
	for _, p := range purchases {
		age, err := stock.AgeInDays(p.Date(), today)
		if err != nil {
			return nil, fmt.Errorf("compra %s: %w", p.ID(), err)
		}
		rows = append(rows, AgingRow{
			ItemName:  p.ItemName(),
			BatchNo:   p.BatchNo(),
			Date:      p.Date(),
			AgeInDays: age,
			Status:    stock.Classify(age),
			Weight:    p.Weight(),
		})
	}
	return rows, nil
}

// SalesPoint punto de la analítica de ventas por ítem.
type SalesPoint struct {
	ItemName       string
	ShortName      string // primera palabra del nombre, para etiquetas de gráfico
	EstimatedSales decimal.Decimal
	PurchaseCost   decimal.Decimal
}

// SalesByItem agrupa las filas de movimiento por ítem.
func SalesByItem(rows []MovementRow) []SalesPoint {
	var out []SalesPoint
	index := make(map[string]int)
	for _, r := range rows {
		key := stock.ItemKey(r.ItemName)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, SalesPoint{
				ItemName:       r.ItemName,
				ShortName:      shortName(r.ItemName),
				EstimatedSales: decimal.Zero,
				PurchaseCost:   decimal.Zero,
			})
		}
		out[i].EstimatedSales = out[i].EstimatedSales.Add(r.EstimatedSales)
		out[i].PurchaseCost = out[i].PurchaseCost.Add(r.TotalPurchaseCost)
	}
	if out == nil {
		out = []SalesPoint{}
	}
	return out
}

func shortName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}
