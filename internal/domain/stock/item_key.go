package stock

import (
	"strings"

	"golang.org/x/text/cases"
)

// ItemKey clave normalizada de un ítem (trim + case folding Unicode).
// Es la clave de unión entre compras y cierres nocturnos y la clave de agrupación en reportes.
func ItemKey(itemName string) string {
	return cases.Fold().String(strings.TrimSpace(itemName))
}

// SameItem compara dos nombres de ítem por su clave normalizada.
func SameItem(a, b string) bool {
	return ItemKey(a) == ItemKey(b)
}
