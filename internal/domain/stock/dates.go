package stock

import (
	"fmt"
	"time"

	"github.com/jhoicas/fishstock-api/internal/domain"
)

// DateLayout formato de fecha de negocio (DD-MM-YYYY) usado en registros y API.
const DateLayout = "02-01-2006"

const day = 24 * time.Hour

// ParseDate interpreta una fecha DD-MM-YYYY como fecha civil (medianoche UTC).
// Cualquier otro formato devuelve domain.ErrInvalidDate.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate formatea la fecha civil de t (en su propia zona) como DD-MM-YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidDate indica si s es una fecha DD-MM-YYYY válida.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// civil normaliza t a la medianoche UTC de su fecha de calendario local.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AgeInDays días completos entre la fecha del lote y today (ambos a medianoche).
// Una fecha futura produce una edad negativa; el clasificador la trata como Fresh.
func AgeInDays(date string, today time.Time) (int, error) {
	purchased, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return DaysBetween(purchased, today), nil
}

// DaysBetween diferencia en días de calendario de from a to.
func DaysBetween(from, to time.Time) int {
	return int(civil(to).Sub(civil(from)) / day)
}
