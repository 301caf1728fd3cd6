package stock

import "github.com/shopspring/decimal"

// Decimales admitidos. Coinciden con las columnas NUMERIC del esquema; el total
// (peso * tarifa) necesita WeightPlaces + RatePlaces y se guarda sin escala fija.
const (
	WeightPlaces = 3
	RatePlaces   = 2
)

// CalculateTotalCost costo total de una compra: weight * ratePerKg.
func CalculateTotalCost(weight, ratePerKg decimal.Decimal) decimal.Decimal {
	return weight.Mul(ratePerKg)
}

// CalculateEstimatedSales kilos vendidos estimados: max(0, purchased - remaining).
func CalculateEstimatedSales(purchased, remaining decimal.Decimal) decimal.Decimal {
	sold := purchased.Sub(remaining)
	if sold.IsNegative() {
		return decimal.Zero
	}
	return sold
}

// FitsPlaces indica si d no tiene más de places decimales significativos.
func FitsPlaces(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}
