package stock

import "strings"

// fishCatalog tipos de pescado que ofrece el formulario de compra.
var fishCatalog = []string{
	"Seer Fish (Neymeen)",
	"Pomfret (Avoli)",
	"Tuna (Choora)",
	"Sardine (Mathi)",
	"Mackerel (Ayala)",
	"Pearl Spot (Karimeen)",
	"Red Snapper (Chempalli)",
	"Threadfin Bream (Kilimeen)",
	"Barracuda (Sheela)",
	"Shark (Sravu)",
	"Squid (Koonthal)",
	"Prawns (Chemmeen)",
	"Crab (Njandu)",
}

// Catalog devuelve una copia del catálogo.
func Catalog() []string {
	out := make([]string, len(fishCatalog))
	copy(out, fishCatalog)
	return out
}

// SearchCatalog filtra el catálogo por subcadena sin distinguir mayúsculas. term vacío devuelve todo.
func SearchCatalog(term string) []string {
	key := ItemKey(term)
	if key == "" {
		return Catalog()
	}
	out := make([]string, 0, len(fishCatalog))
	for _, name := range fishCatalog {
		if strings.Contains(ItemKey(name), key) {
			out = append(out, name)
		}
	}
	return out
}
