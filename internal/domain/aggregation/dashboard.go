package aggregation

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// Límites de las listas del tablero.
const (
	MaxFastMovingItems   = 2
	MaxAgingAlerts       = 4
	MaxStockDistribution = 6
	MaxRecentEntries     = 5
)

// Severity severidad de una alerta de antigüedad.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityUrgent  Severity = "urgent"
)

// AgingAlert alerta generada para un lote con 2 o más días.
type AgingAlert struct {
	ItemName  string
	BatchNo   string
	AgeInDays int
	Message   string
	Severity  Severity
}

// ItemWeight peso acumulado de un ítem.
type ItemWeight struct {
	ItemName string
	Weight   decimal.Decimal
}

// Dashboard valores derivados del tablero para una fecha de referencia.
type Dashboard struct {
	Today                 string
	TodaysPurchases       []*entity.StockPurchase
	TotalStock            decimal.Decimal
	TotalValue            decimal.Decimal
	TodaysPurchasedWeight decimal.Decimal

	// TodaysEstimatedSales ventas del primer cierre encontrado para hoy; SalesPending si aún no hay cierre.
	TodaysEstimatedSales decimal.Decimal
	SalesPending         bool

	// TodaysEstimatedSalesTotal suma de todos los cierres de hoy.
	TodaysEstimatedSalesTotal decimal.Decimal

	OldStockCount     int
	FastMovingItems   []string
	AgingAlerts       []AgingAlert
	StockDistribution []ItemWeight
	RecentEntries     []*entity.StockPurchase
}

// Aggregate calcula el tablero desde cero a partir de las compras y cierres recibidos.
// No modifica las entradas; el orden de las compras define alertas, distribución y recientes.
// Cualquier fecha mal formada (today o registros) detiene el cálculo con domain.ErrInvalidDate.
func Aggregate(purchases []*entity.StockPurchase, entries []*entity.StockLeftEntry, today string) (*Dashboard, error) {
	ref, err := stock.ParseDate(today)
	if err != nil {
		return nil, err
	}
	ages, err := purchaseAges(purchases, ref)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if _, err := stock.ParseDate(e.Date()); err != nil {
			return nil, fmt.Errorf("cierre %s: %w", e.ID(), err)
		}
	}

	d := &Dashboard{
		Today:                     today,
		TodaysPurchases:           []*entity.StockPurchase{},
		TotalStock:                decimal.Zero,
		TotalValue:                decimal.Zero,
		TodaysPurchasedWeight:     decimal.Zero,
		TodaysEstimatedSales:      decimal.Zero,
		TodaysEstimatedSalesTotal: decimal.Zero,
		SalesPending:              true,
	}

	for i, p := range purchases {
		d.TotalStock = d.TotalStock.Add(p.Weight())
		d.TotalValue = d.TotalValue.Add(p.TotalCost())
		if p.Date() == today {
			d.TodaysPurchases = append(d.TodaysPurchases, p)
			d.TodaysPurchasedWeight = d.TodaysPurchasedWeight.Add(p.Weight())
		}
		if ages[i] >= stock.OldStockAge {
			d.OldStockCount++
		}
	}

	for _, e := range entries {
		if e.Date() != today {
			continue
		}
		if d.SalesPending {
			d.TodaysEstimatedSales = e.EstimatedSales()
			d.SalesPending = false
		}
		d.TodaysEstimatedSalesTotal = d.TodaysEstimatedSalesTotal.Add(e.EstimatedSales())
	}

	d.FastMovingItems = FastMovingItems(entries, MaxFastMovingItems)
	d.AgingAlerts = agingAlerts(purchases, ages, MaxAgingAlerts)
	d.StockDistribution = StockDistribution(purchases, MaxStockDistribution)
	d.RecentEntries = RecentEntries(purchases, MaxRecentEntries)
	return d, nil
}

func purchaseAges(purchases []*entity.StockPurchase, today time.Time) ([]int, error) {
	ages := make([]int, len(purchases))
	for i, p := range purchases {
		age, err := stock.AgeInDays(p.Date(), today)
		if err != nil {
			return nil, fmt.Errorf("compra %s: %w", p.ID(), err)
		}
		ages[i] = age
	}
	return ages, nil
}

// FastMovingItems agrupa cierres por ítem, suma ventas estimadas y devuelve los limit
// nombres con mayor venta. Los empates conservan el orden de aparición.
func FastMovingItems(entries []*entity.StockLeftEntry, limit int) []string {
	type total struct {
		name  string
		sales decimal.Decimal
	}
	var totals []*total
	byKey := make(map[string]*total)
	for _, e := range entries {
		key := e.ItemKey()
		t, ok := byKey[key]
		if !ok {
			t = &total{name: e.ItemName(), sales: decimal.Zero}
			byKey[key] = t
			totals = append(totals, t)
		}
		t.sales = t.sales.Add(e.EstimatedSales())
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].sales.GreaterThan(totals[j].sales)
	})
	names := make([]string, 0, limit)
	for _, t := range totals {
		if len(names) == limit {
			break
		}
		names = append(names, t.name)
	}
	return names
}

// AlertMessage texto de la alerta para una edad dada.
func AlertMessage(ageInDays int) string {
	if ageInDays >= stock.UrgentAge {
		return fmt.Sprintf("Stock is %d days old. Consider urgent sale.", ageInDays)
	}
	return fmt.Sprintf("Stock is %d days old. Monitor closely.", ageInDays)
}

func agingAlerts(purchases []*entity.StockPurchase, ages []int, limit int) []AgingAlert {
	alerts := make([]AgingAlert, 0, limit)
	for i, p := range purchases {
		if len(alerts) == limit {
			break
		}
		age := ages[i]
		if age < stock.OldStockAge {
			continue
		}
		sev := SeverityWarning
		if age >= stock.UrgentAge {
			sev = SeverityUrgent
		}
		alerts = append(alerts, AgingAlert{
			ItemName:  p.ItemName(),
			BatchNo:   p.BatchNo(),
			AgeInDays: age,
			Message:   AlertMessage(age),
			Severity:  sev,
		})
	}
	return alerts
}

// StockDistribution suma el peso por ítem y corta a los primeros limit ítems encontrados
// (orden de aparición, no ranking por peso).
func StockDistribution(purchases []*entity.StockPurchase, limit int) []ItemWeight {
	var out []ItemWeight
	index := make(map[string]int)
	for _, p := range purchases {
		key := p.ItemKey()
		if i, ok := index[key]; ok {
			out[i].Weight = out[i].Weight.Add(p.Weight())
			continue
		}
		index[key] = len(out)
		out = append(out, ItemWeight{ItemName: p.ItemName(), Weight: p.Weight()})
	}
	if len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []ItemWeight{}
	}
	return out
}

// RecentEntries primeras limit compras en el orden recibido (normalmente más recientes primero).
func RecentEntries(purchases []*entity.StockPurchase, limit int) []*entity.StockPurchase {
	n := len(purchases)
	if n > limit {
		n = limit
	}
	out := make([]*entity.StockPurchase, n)
	copy(out, purchases[:n])
	return out
}
