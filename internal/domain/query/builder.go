package query

import (
	"strconv"
	"strings"

	"github.com/tu-usuario/pedidos-pro/internal/domain/pagination"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

// ListSpec configuración de listado por entidad: qué campos admite la
// búsqueda libre, cuál es el campo de ID numérico buscable, el campo de
// timestamp para filtros de fecha, y la whitelist de orden. Los nombres de
// campo son los de la API (camelCase); el adaptador de persistencia los mapea
// a columnas.
type ListSpec struct {
	SearchFields   []string
	NumericIDField string // vacío = búsqueda sin rama numérica
	DateField      string
	SortFields     []string
	DefaultSort    string
}

// Build compone el predicado conjunción de: rango de fecha opcional, búsqueda
// libre opcional y filtros de igualdad del caller. Sin entradas → predicado
// vacío (siempre verdadero). Un término de búsqueda malformado nunca falla:
// si no parsea como entero simplemente se omite la rama numérica.
func (s ListSpec) Build(search string, dr *timezone.DayRange, extra ...Eq) Predicate {
	var p Predicate
	if dr != nil {
		p = p.And(DateRange{Field: s.DateField, Range: *dr})
	}
	if term := strings.TrimSpace(search); term != "" {
		c := Search{Fields: s.SearchFields, Term: term, IDField: s.NumericIDField}
		if s.NumericIDField != "" {
			if id, err := strconv.ParseInt(term, 10, 64); err == nil {
				c.IDValue = id
				c.IDMatch = true
			}
		}
		p = p.And(c)
	}
	for _, eq := range extra {
		p = p.And(eq)
	}
	return p
}

// ResolveSort valida SortBy contra la whitelist de la entidad (fallback
// silencioso al default) y normaliza la dirección.
func (s ListSpec) ResolveSort(req pagination.PageRequest) Sort {
	field := pagination.ResolveSortField(req.SortBy, s.SortFields, s.DefaultSort)
	return Sort{
		Field: field,
		Desc:  pagination.ResolveOrder(req.Order) == pagination.OrderDesc,
	}
}
