package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pedidos-pro/internal/domain/pagination"
	"github.com/tu-usuario/pedidos-pro/internal/domain/query"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

var testSpec = query.ListSpec{
	SearchFields:   []string{"observation", "status"},
	NumericIDField: "id",
	DateField:      "createdAt",
	SortFields:     []string{"id", "createdAt", "totalAmount"},
	DefaultSort:    "createdAt",
}

func TestBuild_SinEntradasEsVacio(t *testing.T) {
	p := testSpec.Build("", nil)
	assert.True(t, p.IsEmpty())

	// Solo espacios también cuenta como sin búsqueda.
	p = testSpec.Build("   ", nil)
	assert.True(t, p.IsEmpty())
}

func TestBuild_TerminoNumericoAgregaRamaID(t *testing.T) {
	p := testSpec.Build("42", nil)
	require.Len(t, p.Conds, 1)

	s, ok := p.Conds[0].(query.Search)
	require.True(t, ok)
	assert.Equal(t, "42", s.Term, "la búsqueda de texto se mantiene: '42' también puede ser parte de una observación")
	assert.True(t, s.IDMatch)
	assert.Equal(t, int64(42), s.IDValue)
	assert.Equal(t, "id", s.IDField)
}

func TestBuild_TerminoTextualSinRamaID(t *testing.T) {
	p := testSpec.Build("urgente", nil)
	require.Len(t, p.Conds, 1)

	s, ok := p.Conds[0].(query.Search)
	require.True(t, ok)
	assert.False(t, s.IDMatch, "término no numérico: sin rama de igualdad por ID, sin error")
	assert.Equal(t, []string{"observation", "status"}, s.Fields)
}

func TestBuild_SinCampoNumericoConfigurado(t *testing.T) {
	spec := testSpec
	spec.NumericIDField = ""

	p := spec.Build("42", nil)
	require.Len(t, p.Conds, 1)
	s := p.Conds[0].(query.Search)
	assert.False(t, s.IDMatch, "sin NumericIDField no hay rama numérica aunque el término parsee")
}

func TestBuild_ComponeFechaBusquedaYExtras(t *testing.T) {
	dr := timezone.DayRange{
		Start: time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 16, 5, 0, 0, 0, time.UTC),
	}

	p := testSpec.Build("pan", &dr, query.Eq{Field: "areaId", Value: int64(7)})
	require.Len(t, p.Conds, 3)

	d, ok := p.Conds[0].(query.DateRange)
	require.True(t, ok)
	assert.Equal(t, "createdAt", d.Field)
	assert.Equal(t, dr, d.Range)

	_, ok = p.Conds[1].(query.Search)
	require.True(t, ok)

	eq, ok := p.Conds[2].(query.Eq)
	require.True(t, ok)
	assert.Equal(t, "areaId", eq.Field)
}

func TestResolveSort(t *testing.T) {
	sort := testSpec.ResolveSort(pagination.PageRequest{SortBy: "totalAmount", Order: "asc"})
	assert.Equal(t, query.Sort{Field: "totalAmount", Desc: false}, sort)

	// Campo desconocido: fallback silencioso al default, dirección desc por defecto.
	sort = testSpec.ResolveSort(pagination.PageRequest{SortBy: "secretColumn"})
	assert.Equal(t, query.Sort{Field: "createdAt", Desc: true}, sort)
}
