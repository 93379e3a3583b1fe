package clock

import (
	"fmt"
	"time"
)

// DateLayout formato de día calendario usado en todo el sistema.
const DateLayout = "2006-01-02"

// Clock resuelve "ahora" y "hoy" en la zona horaria del negocio.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New construye un reloj real en la zona tz (ej. America/Argentina/Buenos_Aires).
func New(tz string) (*Clock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("clock: zona horaria %q: %w", tz, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// Fixed devuelve un reloj detenido en t (tests).
func Fixed(t time.Time) *Clock {
	return &Clock{loc: t.Location(), now: func() time.Time { return t }}
}

// Now devuelve la hora actual en la zona del reloj.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today devuelve el día actual como YYYY-MM-DD.
func (c *Clock) Today() string {
	return c.Now().Format(DateLayout)
}

// Location zona horaria del reloj.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// ValidDate indica si s es un día YYYY-MM-DD válido.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
