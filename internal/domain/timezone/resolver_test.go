package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

// Lima es UTC-5 sin horario de verano: la medianoche local de una fecha D es
// el instante UTC D 05:00:00Z. Los tests fijan estos valores a mano para no
// depender del propio resolver.

func TestDayRange_FechaPlana(t *testing.T) {
	r := timezone.NewResolver()

	dr, err := r.DayRange("2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC), dr.Start,
		"el inicio debe ser la medianoche de Lima en UTC")
	assert.Equal(t, time.Date(2024, 3, 16, 5, 0, 0, 0, time.UTC), dr.End,
		"el fin debe ser la medianoche de Lima del día siguiente")
}

func TestDayRange_FinExclusivo(t *testing.T) {
	r := timezone.NewResolver()

	dr, err := r.DayRange("2024-03-15")
	require.NoError(t, err)

	assert.True(t, dr.Contains(dr.Start), "el inicio es inclusivo")
	assert.True(t, dr.Contains(dr.End.Add(-time.Nanosecond)),
		"el último instante antes del fin pertenece al día")
	assert.False(t, dr.Contains(dr.End),
		"el instante de fin NO pertenece al día: rango semiabierto")

	// Un pedido creado exactamente a medianoche de Lima del día siguiente
	// (2024-03-16 00:00:00 Lima = 2024-03-16T05:00:00Z) cae fuera.
	nextMidnight := time.Date(2024, 3, 16, 5, 0, 0, 0, time.UTC)
	assert.False(t, dr.Contains(nextMidnight))
}

func TestDayRange_AceptaTimestamp(t *testing.T) {
	r := timezone.NewResolver()

	// 2024-03-16T03:00:00Z son las 22:00 del 15 en Lima: el día de negocio
	// es el 15, no el 16.
	dr, err := r.DayRange("2024-03-16T03:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC), dr.Start)
}

func TestNormalizeBusinessDate_FechaPlanaEsIdempotente(t *testing.T) {
	r := timezone.NewResolver()

	// Una fecha plana ya ES una fecha de negocio: no debe reinterpretarse
	// vía UTC (eso la correría un día hacia atrás).
	got, err := r.NormalizeBusinessDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", got)

	again, err := r.NormalizeBusinessDate(got)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestNormalizeBusinessDate_TimestampCruzaMedianoche(t *testing.T) {
	r := timezone.NewResolver()

	// 01:30 UTC del 16 son las 20:30 del 15 en Lima.
	got, err := r.NormalizeBusinessDate("2024-03-16T01:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", got)
}

func TestNormalizeBusinessDate_EntradaInvalida(t *testing.T) {
	r := timezone.NewResolver()

	for _, input := range []string{"", "hoy", "15/03/2024", "2024-13-40"} {
		_, err := r.NormalizeBusinessDate(input)
		assert.ErrorIs(t, err, domain.ErrInvalidDateFormat, "entrada %q", input)
	}
}

func TestRangeAcross_IncluyeFechaFinal(t *testing.T) {
	r := timezone.NewResolver()

	dr, err := r.RangeAcross("2024-03-10", "2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC), dr.Start)
	assert.Equal(t, time.Date(2024, 3, 16, 5, 0, 0, 0, time.UTC), dr.End,
		"el fin debe ser el inicio del día SIGUIENTE a endDate")

	// Un instante dentro del último día del rango queda incluido.
	assert.True(t, dr.Contains(time.Date(2024, 3, 16, 2, 0, 0, 0, time.UTC)),
		"las 21:00 de Lima del 15 pertenecen al rango")
}

func TestRangeAcross_UnSoloDiaEquivaleADayRange(t *testing.T) {
	r := timezone.NewResolver()

	single, err := r.DayRange("2024-03-15")
	require.NoError(t, err)
	across, err := r.RangeAcross("2024-03-15", "2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, single, across)
}

func TestRangeAcross_InicioDespuesDelFin(t *testing.T) {
	r := timezone.NewResolver()

	_, err := r.RangeAcross("2024-03-16", "2024-03-15")
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestBusinessDate_RoundTripConContains(t *testing.T) {
	r := timezone.NewResolver()

	// Para cualquier instante t: t pertenece al DayRange de BusinessDate(t).
	instants := []time.Time{
		time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC),  // medianoche exacta de Lima
		time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), // mediodía UTC
		time.Date(2024, 3, 16, 4, 59, 59, 0, time.UTC), // último segundo del día de Lima
	}
	for _, inst := range instants {
		date := r.BusinessDate(inst)
		dr, err := r.DayRange(date)
		require.NoError(t, err)
		assert.True(t, dr.Contains(inst), "instante %s debe caer en su propio día %s", inst, date)
	}
}

func TestSameBusinessDay_CruceDeMedianoche(t *testing.T) {
	r := timezone.NewResolver()

	// Un minuto antes y un minuto después de la medianoche de Lima: días
	// distintos aunque los separen dos minutos.
	before := time.Date(2024, 3, 16, 4, 59, 0, 0, time.UTC)
	after := time.Date(2024, 3, 16, 5, 1, 0, 0, time.UTC)

	assert.False(t, r.SameBusinessDay(before, after))
	assert.True(t, r.SameBusinessDay(before, before.Add(-20*time.Hour)))
}
