package pagination

import "context"

// FetchFunc trae una página de la colección: limit filas desde offset, en el
// orden ya resuelto de la consulta.
type FetchFunc[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// CountFunc cuenta el total de coincidencias del mismo predicado, sin paginar.
type CountFunc func(ctx context.Context) (int64, error)

// Paginate ejecuta el conteo y el fetch de la página concurrentemente y arma
// la envoltura {data, meta}. Las dos lecturas son independientes y ninguna
// muta estado; la consistencia entre ambas es best-effort — un insert
// concurrente entre count y fetch puede dejar total desfasado una petición
// (limitación conocida, no se previene con snapshot ni transacción).
//
// El orden de data sigue el sort resuelto de la consulta (default: fecha de
// creación descendente). Sin una clave secundaria determinista, páginas
// consecutivas no garantizan ser disjuntas cuando la clave primaria de orden
// tiene empates.
func Paginate[T any](ctx context.Context, req PageRequest, fetch FetchFunc[T], count CountFunc) (*Page[T], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	type fetchResult struct {
		data []T
		err  error
	}
	type countResult struct {
		total int64
		err   error
	}

	fetchCh := make(chan fetchResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		data, err := fetch(ctx, req.Limit, req.Offset())
		fetchCh <- fetchResult{data, err}
	}()
	go func() {
		total, err := count(ctx)
		countCh <- countResult{total, err}
	}()

	fetched := <-fetchCh
	counted := <-countCh

	if fetched.err != nil {
		return nil, fetched.err
	}
	if counted.err != nil {
		return nil, counted.err
	}

	data := fetched.data
	if data == nil {
		data = []T{}
	}
	return &Page[T]{Data: data, Meta: buildMeta(req, counted.total)}, nil
}

// Map convierte una página de un tipo a otro preservando los metadatos. Útil
// para proyectar entidades a DTOs de respuesta sin recalcular nada.
func Map[T, U any](p *Page[T], f func(T) U) *Page[U] {
	out := &Page[U]{Data: make([]U, len(p.Data)), Meta: p.Meta}
	for i, v := range p.Data {
		out.Data[i] = f(v)
	}
	return out
}
