package pagination

import (
	"fmt"

	"github.com/tu-usuario/pedidos-pro/internal/domain"
)

// Límites de protocolo para los parámetros de paginación.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest parámetros de paginación ya resueltos de una petición. Page y
// Limit son siempre enteros positivos concretos antes de usarse; la capa HTTP
// aplica los defaults cuando el parámetro viene ausente y rechaza valores
// explícitos fuera de rango (nunca clamping silencioso).
type PageRequest struct {
	Page   int
	Limit  int
	SortBy string // campo solicitado; se valida contra la whitelist por entidad
	Order  string // "asc" | "desc"
	Query  string // búsqueda libre opcional
}

// Validate rechaza page/limit fuera del protocolo. Se ejecuta antes de
// cualquier llamada al almacenamiento.
func (p PageRequest) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page=%d", domain.ErrInvalidPageParameter, p.Page)
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return fmt.Errorf("%w: limit=%d (permitido 1..%d)", domain.ErrInvalidPageParameter, p.Limit, MaxLimit)
	}
	return nil
}

// Offset devuelve el desplazamiento SQL de la página actual.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta metadatos de navegación de una página.
type Meta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// Page envoltura {data, meta} de un listado paginado. Data nunca es null en
// JSON; Meta.Total es el conteo completo sin paginar, independiente de Data.
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// buildMeta deriva los metadatos: totalPages = max(1, ceil(total/limit));
// hasNextPage/hasPrevPage son puramente derivados.
func buildMeta(req PageRequest, total int64) Meta {
	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	if totalPages < 1 {
		totalPages = 1
	}
	return Meta{
		Page:        req.Page,
		Limit:       req.Limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: req.Page < totalPages,
		HasPrevPage: req.Page > 1,
	}
}
