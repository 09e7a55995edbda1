package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pedidos-pro/internal/domain/query"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

var testCols = map[string]string{
	"id":          "o.id",
	"observation": "o.observation",
	"status":      "o.status",
	"createdAt":   "o.created_at",
	"areaId":      "o.area_id",
}

func testRange() timezone.DayRange {
	return timezone.DayRange{
		Start: time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 16, 5, 0, 0, 0, time.UTC),
	}
}

func TestRenderPredicate_Vacio(t *testing.T) {
	clause, args, err := renderPredicate(query.Predicate{}, testCols, nil)
	require.NoError(t, err)
	assert.Empty(t, clause)
	assert.Empty(t, args)
	assert.Empty(t, whereSQL(clause), "predicado vacío no produce WHERE")
}

func TestRenderPredicate_RangoSemiabierto(t *testing.T) {
	dr := testRange()
	p := query.Predicate{}.And(query.DateRange{Field: "createdAt", Range: dr})

	clause, args, err := renderPredicate(p, testCols, nil)
	require.NoError(t, err)

	assert.Equal(t, "o.created_at >= $1 AND o.created_at < $2", clause,
		"inicio inclusivo, fin estrictamente exclusivo")
	require.Len(t, args, 2)
	assert.Equal(t, dr.Start, args[0])
	assert.Equal(t, dr.End, args[1])
}

func TestRenderPredicate_BusquedaConRamaID(t *testing.T) {
	p := query.Predicate{}.And(query.Search{
		Fields:  []string{"observation", "status"},
		Term:    "42",
		IDField: "id",
		IDValue: 42,
		IDMatch: true,
	})

	clause, args, err := renderPredicate(p, testCols, nil)
	require.NoError(t, err)

	assert.Equal(t, "(o.observation ILIKE $1 OR o.status ILIKE $1 OR o.id = $2)", clause)
	require.Len(t, args, 2)
	assert.Equal(t, "%42%", args[0], "el término siempre va envuelto para contains")
	assert.Equal(t, int64(42), args[1])
}

func TestRenderPredicate_BusquedaSinRamaID(t *testing.T) {
	p := query.Predicate{}.And(query.Search{
		Fields: []string{"observation", "status"},
		Term:   "urgente",
	})

	clause, _, err := renderPredicate(p, testCols, nil)
	require.NoError(t, err)
	assert.Equal(t, "(o.observation ILIKE $1 OR o.status ILIKE $1)", clause)
}

func TestRenderPredicate_ConjuncionYArgsAcumulados(t *testing.T) {
	dr := testRange()
	p := query.Predicate{}.
		And(query.DateRange{Field: "createdAt", Range: dr}).
		And(query.Eq{Field: "areaId", Value: int64(7)})

	// Los args parten de una lista ya poblada: la numeración posicional
	// debe continuar, no reiniciarse.
	clause, args, err := renderPredicate(p, testCols, []any{int64(99)})
	require.NoError(t, err)

	assert.Equal(t, "o.created_at >= $2 AND o.created_at < $3 AND o.area_id = $4", clause)
	require.Len(t, args, 4)
	assert.Equal(t, int64(7), args[3])
}

func TestRenderPredicate_CampoNoMapeado(t *testing.T) {
	p := query.Predicate{}.And(query.Eq{Field: "password", Value: "x"})
	_, _, err := renderPredicate(p, testCols, nil)
	assert.Error(t, err, "un campo fuera del mapa de columnas nunca llega al SQL")
}

func TestOrderBySQL(t *testing.T) {
	assert.Equal(t, " ORDER BY o.total_amount ASC",
		orderBySQL(query.Sort{Field: "totalAmount", Desc: false},
			map[string]string{"totalAmount": "o.total_amount"}, "o.created_at"))

	assert.Equal(t, " ORDER BY o.created_at DESC",
		orderBySQL(query.Sort{Field: "desconocido", Desc: false}, testCols, "o.created_at"),
		"campo no mapeado cae al default descendente")
}
