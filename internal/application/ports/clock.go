package ports

import (
	"time"

	"github.com/jhoicas/fishstock-api/internal/domain/stock"
)

// Clock fuente de "ahora" inyectable en los casos de uso.
type Clock interface {
	Now() time.Time
}

// ZonedClock reloj del sistema en la zona horaria del negocio.
type ZonedClock struct {
	Location *time.Location
}

// Now hora actual en la zona configurada.
func (c ZonedClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// ClockFunc adapta una función a Clock (tests).
type ClockFunc func() time.Time

// Now implementa Clock.
func (f ClockFunc) Now() time.Time { return f() }

// ResolveToday devuelve la fecha de referencia: override (DD-MM-YYYY) si viene, si no la fecha del reloj.
func ResolveToday(c Clock, override string) (string, time.Time, error) {
	if override != "" {
		t, err := stock.ParseDate(override)
		if err != nil {
			return "", time.Time{}, err
		}
		return override, t, nil
	}
	now := c.Now()
	return stock.FormatDate(now), now, nil
}
