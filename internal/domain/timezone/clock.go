package timezone

import "time"

// Clock abstrae "ahora" para que las reglas de mismo-día sean testeables con
// instantes fijos en lugar de estado global del proceso.
type Clock interface {
	Now() time.Time
}

// SystemClock implementación de producción sobre time.Now.
type SystemClock struct{}

// Now devuelve la hora actual del sistema.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock devuelve siempre el mismo instante. Para tests.
type FixedClock time.Time

// Now devuelve el instante fijo.
func (c FixedClock) Now() time.Time { return time.Time(c) }
