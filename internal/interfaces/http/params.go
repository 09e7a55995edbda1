package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/pagination"
)

// parsePageQuery arma el PageRequest desde la query string. Parámetro ausente
// → default; parámetro presente pero no numérico o fuera de rango →
// ErrInvalidPageParameter (rechazo, nunca clamping silencioso: el clamping
// enmascaraba errores del caller).
func parsePageQuery(c *fiber.Ctx) (pagination.PageRequest, error) {
	req := pagination.PageRequest{
		Page:   pagination.DefaultPage,
		Limit:  pagination.DefaultLimit,
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
		Query:  c.Query("q"),
	}
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("%w: page=%q", domain.ErrInvalidPageParameter, raw)
		}
		req.Page = n
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("%w: limit=%q", domain.ErrInvalidPageParameter, raw)
		}
		req.Limit = n
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

// parseIDParam lee el parámetro de ruta id como int64.
func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", domain.ErrInvalidInput, name, raw)
	}
	return id, nil
}
