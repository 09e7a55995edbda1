package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pedidos-pro/internal/domain/pagination"
)

// echoApp expone parsePageQuery detrás de una ruta para testearlo con la
// query string real de Fiber.
func echoApp() *fiber.App {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		req, err := parsePageQuery(c)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(req)
	})
	return app
}

func getPage(t *testing.T, app *fiber.App, qs string) (*http.Response, pagination.PageRequest) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items"+qs, nil), -1)
	require.NoError(t, err)
	var req pagination.PageRequest
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&req))
	}
	resp.Body.Close()
	return resp, req
}

func TestParsePageQuery_AusenteUsaDefaults(t *testing.T) {
	app := echoApp()

	resp, req := getPage(t, app, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, pagination.DefaultPage, req.Page)
	assert.Equal(t, pagination.DefaultLimit, req.Limit)
}

func TestParsePageQuery_ValoresExplicitos(t *testing.T) {
	app := echoApp()

	resp, req := getPage(t, app, "?page=3&limit=50&sortBy=createdAt&order=asc&q=pan")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 50, req.Limit)
	assert.Equal(t, "createdAt", req.SortBy)
	assert.Equal(t, "asc", req.Order)
	assert.Equal(t, "pan", req.Query)
}

func TestParsePageQuery_RechazaInvalidos(t *testing.T) {
	app := echoApp()

	// Presente pero inválido se rechaza con 400: nunca clamping silencioso.
	for _, qs := range []string{
		"?page=0",
		"?page=-1",
		"?page=abc",
		"?limit=0",
		"?limit=101",
		"?limit=abc",
	} {
		resp, _ := getPage(t, app, qs)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "query %q", qs)
	}
}

func TestParsePageQuery_LimiteMaximoPermitido(t *testing.T) {
	app := echoApp()

	resp, req := getPage(t, app, "?limit=100")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, pagination.MaxLimit, req.Limit)
}

func TestParseIDParam(t *testing.T) {
	app := fiber.New()
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(fiber.Map{"id": id})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/things/7", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	for _, raw := range []string{"abc", "0", "-3"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/things/"+raw, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "id %q", raw)
		resp.Body.Close()
	}
}
