package aggregation

import (
	"fmt"
	"time"

	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// SheetItem ítem comprado en la fecha, pendiente o ya cerrado.
type SheetItem struct {
	ItemName     string
	ItemKey      string
	TotalWeight  decimal.Decimal
	BatchNumbers []string
	// Closed indica que ya existe un cierre para (fecha, ítem).
	Closed bool
}

// NightSheet planilla de cierre nocturno de una fecha.
type NightSheet struct {
	Date  string
	Items []SheetItem
}

// BuildNightSheet agrupa las compras de date por ítem (peso sumado, lotes en orden).
func BuildNightSheet(purchases []*entity.StockPurchase, entries []*entity.StockLeftEntry, date string) (*NightSheet, error) {
	if _, err := stock.ParseDate(date); err != nil {
		return nil, err
	}
	closed := make(map[string]bool)
	for _, e := range entries {
		if e.Date() == date {
			closed[e.ItemKey()] = true
		}
	}
	sheet := &NightSheet{Date: date, Items: []SheetItem{}}
	index := make(map[string]int)
	for _, p := range purchases {
		if p.Date() != date {
			continue
		}
		key := p.ItemKey()
		i, ok := index[key]
		if !ok {
			i = len(sheet.Items)
			index[key] = i
			sheet.Items = append(sheet.Items, SheetItem{
				ItemName:    p.ItemName(),
				ItemKey:     key,
				TotalWeight: decimal.Zero,
				Closed:      closed[key],
			})
		}
		sheet.Items[i].TotalWeight = sheet.Items[i].TotalWeight.Add(p.Weight())
		sheet.Items[i].BatchNumbers = append(sheet.Items[i].BatchNumbers, p.BatchNo())
	}
	return sheet, nil
}

// Pending ítems de la planilla aún sin cierre.
func (s *NightSheet) Pending() []SheetItem {
	out := make([]SheetItem, 0, len(s.Items))
	for _, it := range s.Items {
		if !it.Closed {
			out = append(out, it)
		}
	}
	return out
}

// Remaining cantidad remanente medida para un ítem de la planilla.
type Remaining struct {
	ItemName string
	Amount   decimal.Decimal
}

// CloseOut construye los cierres de los ítems pendientes. Cada ítem pendiente debe tener
// exactamente un remanente; ítems desconocidos o ya cerrados se rechazan.
// newID y createdAt los aporta el llamador.
func (s *NightSheet) CloseOut(remaining []Remaining, newID func() string, createdAt time.Time) ([]*entity.StockLeftEntry, error) {
	given := make(map[string]decimal.Decimal, len(remaining))
	for _, r := range remaining {
		key := stock.ItemKey(r.ItemName)
		if _, dup := given[key]; dup {
			return nil, fmt.Errorf("%w: ítem %q repetido", domain.ErrInvalidInput, r.ItemName)
		}
		given[key] = r.Amount
	}
	for key := range given {
		if !s.hasPending(key) {
			if s.has(key) {
				return nil, fmt.Errorf("%w: ítem ya cerrado para %s", domain.ErrDuplicate, s.Date)
			}
			return nil, fmt.Errorf("%w: ítem sin compras en %s", domain.ErrInvalidInput, s.Date)
		}
	}
	pending := s.Pending()
	if len(pending) == 0 {
		return nil, fmt.Errorf("%w: no hay ítems pendientes para %s", domain.ErrInvalidInput, s.Date)
	}

	out := make([]*entity.StockLeftEntry, 0, len(pending))
	for _, it := range pending {
		amount, ok := given[it.ItemKey]
		if !ok {
			return nil, fmt.Errorf("%w: falta %s", domain.ErrIncompleteEntries, it.ItemName)
		}
		e, err := entity.NewStockLeftEntry(entity.StockLeftDraft{
			ID:              newID(),
			Date:            s.Date,
			ItemName:        it.ItemName,
			PurchasedAmount: it.TotalWeight,
			RemainingAmount: amount,
			CreatedAt:       createdAt,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *NightSheet) has(key string) bool {
	for _, it := range s.Items {
		if it.ItemKey == key {
			return true
		}
	}
	return false
}

func (s *NightSheet) hasPending(key string) bool {
	for _, it := range s.Items {
		if it.ItemKey == key && !it.Closed {
			return true
		}
	}
	return false
}
