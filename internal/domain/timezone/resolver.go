package timezone

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/tu-usuario/pedidos-pro/internal/domain"
)

// BusinessTimezone es la zona horaria fija del negocio. Los límites de día
// calendario para filtros y reglas de mismo-día se definen siempre aquí
// (UTC-5, sin horario de verano), nunca en la zona local del servidor.
const BusinessTimezone = "America/Lima"

// businessDateLayout formato canónico de fecha de negocio.
const businessDateLayout = "2006-01-02"

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location devuelve la *time.Location de la zona de negocio. Si la base de
// datos tz no está disponible en el contenedor, cae a UTC-5 fija (Lima no
// tiene DST, por lo que el offset fijo es equivalente).
func Location() *time.Location {
	locOnce.Do(func() {
		var err error
		loc, err = time.LoadLocation(BusinessTimezone)
		if err != nil {
			loc = time.FixedZone("-05", -5*60*60)
		}
	})
	return loc
}

// plainDateRe reconoce una fecha plana YYYY-MM-DD (sin componente horario).
var plainDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// timestampLayouts formatos de timestamp aceptados del frontend. El formato
// sin zona se interpreta como UTC: el almacenamiento es UTC y así el
// resultado no depende de la zona del servidor.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// DayRange es un rango de instantes UTC semiabierto [Start, End) que cubre
// uno o más días calendario de la zona de negocio. End es EXCLUSIVO: la
// variante inclusiva 23:59:59.999 se rompe con precisión de almacenamiento
// sub-milisegundo.
type DayRange struct {
	Start time.Time // inclusivo, UTC
	End   time.Time // exclusivo, UTC
}

// Contains indica si el instante t cae dentro del rango [Start, End).
func (r DayRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Resolver normaliza entradas de fecha heterogéneas (fecha plana, datetime
// ISO) a fechas calendario de la zona de negocio, y calcula los rangos UTC
// correspondientes para consultas de un día o de un rango de días.
type Resolver struct {
	loc *time.Location
}

// NewResolver construye el resolver sobre la zona de negocio.
func NewResolver() *Resolver {
	return &Resolver{loc: Location()}
}

// NewResolverIn construye el resolver sobre una zona arbitraria. Para tests.
func NewResolverIn(l *time.Location) *Resolver {
	return &Resolver{loc: l}
}

// NormalizeBusinessDate convierte la entrada a la fecha calendario canónica
// YYYY-MM-DD de la zona de negocio. Una fecha plana se devuelve tal cual (ya
// es una fecha de negocio, no se reinterpreta vía UTC); un timestamp se parsea
// y se convierte a la zona de negocio. Entrada no parseable →
// domain.ErrInvalidDateFormat con el valor ofensivo.
func (r *Resolver) NormalizeBusinessDate(input string) (string, error) {
	if plainDateRe.MatchString(input) {
		// Validar que sea una fecha real (rechaza 2024-13-40).
		if _, err := time.ParseInLocation(businessDateLayout, input, r.loc); err != nil {
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, input)
		}
		return input, nil
	}
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, input, time.UTC)
		if err == nil {
			return t.In(r.loc).Format(businessDateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, input)
}

// DayRange devuelve el rango UTC [inicio, fin) del día calendario de negocio
// indicado: inicio = medianoche de Lima de esa fecha, fin = inicio + 24h.
// Acepta fecha plana o timestamp (se normaliza primero).
func (r *Resolver) DayRange(input string) (DayRange, error) {
	date, err := r.NormalizeBusinessDate(input)
	if err != nil {
		return DayRange{}, err
	}
	start, err := time.ParseInLocation(businessDateLayout, date, r.loc)
	if err != nil {
		return DayRange{}, fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, input)
	}
	startUTC := start.UTC()
	return DayRange{Start: startUTC, End: startUTC.Add(24 * time.Hour)}, nil
}

// RangeAcross devuelve el rango UTC [inicio de startDate, inicio del día
// SIGUIENTE a endDate): la fecha de fin queda completamente incluida.
// startDate > endDate → domain.ErrInvalidRange (la comparación lexicográfica
// es válida sobre el formato canónico YYYY-MM-DD).
func (r *Resolver) RangeAcross(startInput, endInput string) (DayRange, error) {
	startDate, err := r.NormalizeBusinessDate(startInput)
	if err != nil {
		return DayRange{}, err
	}
	endDate, err := r.NormalizeBusinessDate(endInput)
	if err != nil {
		return DayRange{}, err
	}
	if startDate > endDate {
		return DayRange{}, fmt.Errorf("%w: %s > %s", domain.ErrInvalidRange, startDate, endDate)
	}
	startRange, err := r.DayRange(startDate)
	if err != nil {
		return DayRange{}, err
	}
	endRange, err := r.DayRange(endDate)
	if err != nil {
		return DayRange{}, err
	}
	return DayRange{Start: startRange.Start, End: endRange.End}, nil
}

// BusinessDate devuelve la fecha calendario YYYY-MM-DD del instante t vista
// desde la zona de negocio.
func (r *Resolver) BusinessDate(t time.Time) string {
	return t.In(r.loc).Format(businessDateLayout)
}

// SameBusinessDay indica si a y b caen en el mismo día calendario de la zona
// de negocio. Compara fechas de pared, no deltas de 24 horas: dos instantes a
// un minuto de distancia cruzando la medianoche de Lima NO son el mismo día.
func (r *Resolver) SameBusinessDay(a, b time.Time) bool {
	return r.BusinessDate(a) == r.BusinessDate(b)
}
