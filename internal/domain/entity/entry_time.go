package entity

// EntryTime sesión del día en que se registra una compra.
type EntryTime string

const (
	EntryMorning EntryTime = "Morning"
	EntryNoon    EntryTime = "Noon"
	EntryEvening EntryTime = "Evening"
	// EntryNight variante heredada; se conserva para leer registros antiguos, no se usa en compras nuevas.
	EntryNight EntryTime = "Night"
)

// Valid indica si t es una sesión conocida (incluida la heredada Night).
func (t EntryTime) Valid() bool {
	switch t {
	case EntryMorning, EntryNoon, EntryEvening, EntryNight:
		return true
	}
	return false
}

// AllowedForPurchase indica si t puede usarse al registrar una compra nueva.
func (t EntryTime) AllowedForPurchase() bool {
	return t == EntryMorning || t == EntryNoon || t == EntryEvening
}

// PurchaseSessions sesiones disponibles en el formulario de compra.
func PurchaseSessions() []EntryTime {
	return []EntryTime{EntryMorning, EntryNoon, EntryEvening}
}
