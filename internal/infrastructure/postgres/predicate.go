package postgres

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/pedidos-pro/internal/domain/query"
)

// renderPredicate traduce un predicado lógico al fragmento WHERE de
// PostgreSQL con argumentos posicionales, partiendo de los args ya
// acumulados. cols mapea los nombres de campo de la API (camelCase, siempre
// provenientes de una whitelist, nunca del caller) a columnas de la tabla.
// Devuelve el fragmento sin el prefijo "WHERE" ("" si el predicado es vacío).
func renderPredicate(p query.Predicate, cols map[string]string, args []any) (string, []any, error) {
	if p.IsEmpty() {
		return "", args, nil
	}
	clauses := make([]string, 0, len(p.Conds))
	for _, c := range p.Conds {
		switch cond := c.(type) {
		case query.DateRange:
			col, ok := cols[cond.Field]
			if !ok {
				return "", nil, fmt.Errorf("campo de fecha no mapeado: %s", cond.Field)
			}
			args = append(args, cond.Range.Start)
			startArg := len(args)
			args = append(args, cond.Range.End)
			endArg := len(args)
			// Rango semiabierto: inicio inclusivo, fin exclusivo.
			clauses = append(clauses, fmt.Sprintf("%s >= $%d AND %s < $%d", col, startArg, col, endArg))

		case query.Search:
			args = append(args, "%"+cond.Term+"%")
			termArg := len(args)
			ors := make([]string, 0, len(cond.Fields)+1)
			for _, f := range cond.Fields {
				col, ok := cols[f]
				if !ok {
					return "", nil, fmt.Errorf("campo de búsqueda no mapeado: %s", f)
				}
				ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, termArg))
			}
			if cond.IDMatch {
				col, ok := cols[cond.IDField]
				if !ok {
					return "", nil, fmt.Errorf("campo de ID no mapeado: %s", cond.IDField)
				}
				args = append(args, cond.IDValue)
				ors = append(ors, fmt.Sprintf("%s = $%d", col, len(args)))
			}
			clauses = append(clauses, "("+strings.Join(ors, " OR ")+")")

		case query.Eq:
			col, ok := cols[cond.Field]
			if !ok {
				return "", nil, fmt.Errorf("campo de igualdad no mapeado: %s", cond.Field)
			}
			args = append(args, cond.Value)
			clauses = append(clauses, fmt.Sprintf("%s = $%d", col, len(args)))

		default:
			return "", nil, fmt.Errorf("condición de predicado desconocida: %T", c)
		}
	}
	return strings.Join(clauses, " AND "), args, nil
}

// whereSQL antepone "WHERE" al fragmento si no está vacío.
func whereSQL(clause string) string {
	if clause == "" {
		return ""
	}
	return " WHERE " + clause
}

// orderBySQL traduce el orden resuelto (campo ya validado por whitelist) a la
// cláusula ORDER BY. Si el campo no está mapeado cae a defaultCol descendente.
func orderBySQL(sort query.Sort, cols map[string]string, defaultCol string) string {
	col, ok := cols[sort.Field]
	if !ok {
		return " ORDER BY " + defaultCol + " DESC"
	}
	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir
}
