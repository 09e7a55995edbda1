package pagination

// Direcciones de orden aceptadas.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ResolveSortField valida el campo de orden solicitado contra la whitelist de
// la entidad. Ausente, vacío o desconocido → fallback, SIN error: el fallback
// silencioso cierra la inyección vía nombres de campo arbitrarios sin volverse
// estricto con el caller. No "mejorar" esto a un error.
func ResolveSortField(requested string, allowed []string, fallback string) string {
	if requested == "" {
		return fallback
	}
	for _, f := range allowed {
		if f == requested {
			return requested
		}
	}
	return fallback
}

// ResolveOrder normaliza la dirección: solo "asc" explícito asciende, todo lo
// demás (incluido vacío) es "desc".
func ResolveOrder(order string) string {
	if order == OrderAsc {
		return OrderAsc
	}
	return OrderDesc
}
