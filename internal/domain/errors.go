package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Errores de paginación y consultas temporales. Se lanzan antes de
	// cualquier llamada al almacenamiento y nunca se reintentan.
	ErrInvalidDateFormat    = errors.New("formato de fecha inválido")
	ErrInvalidRange         = errors.New("la fecha de inicio debe ser anterior o igual a la fecha de fin")
	ErrInvalidPageParameter = errors.New("parámetro de paginación inválido")

	// ErrSameDayEdit: los pedidos solo pueden modificarse el mismo día
	// calendario (hora de Perú) en que fueron creados.
	ErrSameDayEdit = errors.New("la orden solo puede ser modificada durante el mismo día en que fue creada (horario de Perú)")
)
