// Package query define predicados de filtrado declarativos, neutrales al
// lenguaje de consulta. La composición (AND/OR) es lógica; traducirla a SQL
// es responsabilidad del adaptador de persistencia.
package query

import "github.com/tu-usuario/pedidos-pro/internal/domain/timezone"

// Cond condición atómica de un predicado.
type Cond interface {
	cond()
}

// DateRange restringe un campo de timestamp al rango UTC semiabierto
// [Start, End) de uno o más días de negocio.
type DateRange struct {
	Field string
	Range timezone.DayRange
}

// Search disyunción de búsqueda libre: contains insensible a mayúsculas
// sobre Fields, más igualdad sobre IDField cuando el término parsea como
// entero (permite buscar pedidos por ID numérico o texto en una sola caja).
type Search struct {
	Fields  []string
	Term    string
	IDField string // vacío = sin rama numérica
	IDValue int64
	IDMatch bool // true si Term parseó como entero e IDField está configurado
}

// Eq igualdad exacta sobre un campo.
type Eq struct {
	Field string
	Value any
}

func (DateRange) cond() {}
func (Search) cond()    {}
func (Eq) cond()        {}

// Predicate conjunción de condiciones. Vacío = siempre verdadero.
type Predicate struct {
	Conds []Cond
}

// IsEmpty indica si el predicado no restringe nada.
func (p Predicate) IsEmpty() bool { return len(p.Conds) == 0 }

// And agrega una condición a la conjunción.
func (p Predicate) And(c Cond) Predicate {
	p.Conds = append(p.Conds, c)
	return p
}

// Sort orden de un listado: campo ya validado contra la whitelist de la
// entidad y dirección.
type Sort struct {
	Field string
	Desc  bool
}
