package pagination_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/pagination"
)

// fetchN devuelve un FetchFunc que entrega los primeros n enteros desde offset.
func fetchN(total int) pagination.FetchFunc[int] {
	return func(_ context.Context, limit, offset int) ([]int, error) {
		var out []int
		for i := offset; i < total && i < offset+limit; i++ {
			out = append(out, i)
		}
		return out, nil
	}
}

func countN(total int64) pagination.CountFunc {
	return func(_ context.Context) (int64, error) { return total, nil }
}

func TestPaginate_MetadatosDeNavegacion(t *testing.T) {
	req := pagination.PageRequest{Page: 3, Limit: 10}

	page, err := pagination.Paginate(context.Background(), req, fetchN(25), countN(25))
	require.NoError(t, err)

	assert.Len(t, page.Data, 5, "la última página trae el resto")
	assert.Equal(t, int64(25), page.Meta.Total)
	assert.Equal(t, 3, page.Meta.TotalPages, "ceil(25/10) = 3")
	assert.False(t, page.Meta.HasNextPage)
	assert.True(t, page.Meta.HasPrevPage)
}

func TestPaginate_ColeccionVacia(t *testing.T) {
	req := pagination.PageRequest{Page: 1, Limit: 10}

	page, err := pagination.Paginate(context.Background(), req, fetchN(0), countN(0))
	require.NoError(t, err)

	assert.NotNil(t, page.Data, "data nunca es nil, serializa como []")
	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.Meta.TotalPages, "totalPages mínimo es 1 incluso con total 0")
	assert.False(t, page.Meta.HasNextPage)
	assert.False(t, page.Meta.HasPrevPage)
}

func TestPaginate_PaginaMasAllaDelFinal(t *testing.T) {
	req := pagination.PageRequest{Page: 9, Limit: 10}

	page, err := pagination.Paginate(context.Background(), req, fetchN(25), countN(25))
	require.NoError(t, err)

	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)
	assert.Equal(t, int64(25), page.Meta.Total, "el total no depende de la página pedida")
}

func TestPaginate_ParametrosInvalidos(t *testing.T) {
	cases := []pagination.PageRequest{
		{Page: 0, Limit: 10},
		{Page: -1, Limit: 10},
		{Page: 1, Limit: 0},
		{Page: 1, Limit: 150}, // por encima de MaxLimit: se rechaza, no se recorta
	}
	for _, req := range cases {
		_, err := pagination.Paginate(context.Background(), req, fetchN(25), countN(25))
		assert.ErrorIs(t, err, domain.ErrInvalidPageParameter, "page=%d limit=%d", req.Page, req.Limit)
	}
}

func TestPaginate_PropagaErrores(t *testing.T) {
	req := pagination.PageRequest{Page: 1, Limit: 10}
	boom := errors.New("conexión perdida")

	_, err := pagination.Paginate(context.Background(), req,
		func(_ context.Context, _, _ int) ([]int, error) { return nil, boom },
		countN(5),
	)
	assert.ErrorIs(t, err, boom, "error del fetch")

	_, err = pagination.Paginate(context.Background(), req, fetchN(5),
		func(_ context.Context) (int64, error) { return 0, boom },
	)
	assert.ErrorIs(t, err, boom, "error del count")
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.PageRequest{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, pagination.PageRequest{Page: 3, Limit: 10}.Offset())
}

func TestResolveSortField_FallbackSilencioso(t *testing.T) {
	allowed := []string{"id", "createdAt", "totalAmount"}

	assert.Equal(t, "totalAmount", pagination.ResolveSortField("totalAmount", allowed, "createdAt"))
	assert.Equal(t, "createdAt", pagination.ResolveSortField("", allowed, "createdAt"))
	// Campo desconocido: fallback sin error, nunca llega al SQL.
	assert.Equal(t, "createdAt", pagination.ResolveSortField("password; DROP TABLE", allowed, "createdAt"))
}

func TestResolveOrder(t *testing.T) {
	assert.Equal(t, pagination.OrderAsc, pagination.ResolveOrder("asc"))
	assert.Equal(t, pagination.OrderDesc, pagination.ResolveOrder("desc"))
	assert.Equal(t, pagination.OrderDesc, pagination.ResolveOrder(""))
	assert.Equal(t, pagination.OrderDesc, pagination.ResolveOrder("ASC"), "solo asc en minúsculas asciende")
}

func TestMap_PreservaMetadatos(t *testing.T) {
	req := pagination.PageRequest{Page: 2, Limit: 2}
	page, err := pagination.Paginate(context.Background(), req, fetchN(5), countN(5))
	require.NoError(t, err)

	mapped := pagination.Map(page, func(i int) int { return i * 10 })
	assert.Equal(t, page.Meta, mapped.Meta)
	assert.Equal(t, []int{20, 30}, mapped.Data)
}
