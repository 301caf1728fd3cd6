package stock

// Status estado de frescura de un lote según su edad.
type Status string

const (
	StatusFresh    Status = "fresh"
	StatusModerate Status = "moderate"
	StatusUrgent   Status = "urgent"
)

// OldStockAge edad a partir de la cual un lote cuenta como stock antiguo y genera alerta.
const OldStockAge = 2

// UrgentAge edad a partir de la cual la alerta es urgente.
const UrgentAge = 3

// Classify: <=1 Fresh, 2 Moderate, >=3 Urgent. Edades negativas caen en Fresh.
func Classify(ageInDays int) Status {
	switch {
	case ageInDays <= 1:
		return StatusFresh
	case ageInDays == 2:
		return StatusModerate
	default:
		return StatusUrgent
	}
}

// Label texto corto para mostrar el estado.
func (s Status) Label() string {
	switch s {
	case StatusFresh:
		return "Fresh"
	case StatusModerate:
		return "Moderate"
	case StatusUrgent:
		return "Urgent Sale"
	}
	return string(s)
}

// Description rango de edad que cubre el estado.
func (s Status) Description() string {
	switch s {
	case StatusFresh:
		return "0-1 days old"
	case StatusModerate:
		return "2 days old"
	case StatusUrgent:
		return "3+ days old"
	}
	return ""
}
