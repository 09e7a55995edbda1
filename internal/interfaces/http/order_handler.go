package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/application/usecase"
	"github.com/tu-usuario/pedidos-pro/pkg/validator"
)

// OrderHandler maneja las peticiones HTTP para Order (protegido).
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos (paginado, con filtros temporales en hora de Perú)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Tamaño de página (1-100)"  default(10)
// @Param        sortBy     query  string  false  "Campo de orden (id, createdAt, updatedAt, totalAmount, status, userId, areaId)"
// @Param        order      query  string  false  "asc | desc"  default(desc)
// @Param        q          query  string  false  "Búsqueda libre (observación, estado o ID numérico)"
// @Param        date       query  string  false  "Un día de negocio: YYYY-MM-DD o timestamp ISO"
// @Param        startDate  query  string  false  "Inicio del rango (requiere endDate)"
// @Param        endDate    query  string  false  "Fin del rango, incluido (requiere startDate)"
// @Success      200  {object}  pagination.Page[dto.OrderResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	req, err := parsePageQuery(c)
	if err != nil {
		return handleError(c, err)
	}
	filter := usecase.OrderDateFilter{
		Date:      c.Query("date"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	out, err := h.uc.List(c.UserContext(), req, filter)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListByUser godoc
// @Summary      Listar pedidos de un usuario
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        userId  path  int  true  "ID del usuario"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders/user/{userId} [get]
func (h *OrderHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.ListByUser(c.UserContext(), userID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// CheckExisting godoc
// @Summary      Verificar si el área ya colocó un pedido en un día de negocio
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        areaId  path   int     true  "ID del área"
// @Param        date    query  string  true  "Día de negocio: YYYY-MM-DD o timestamp ISO"
// @Success      200  {object}  dto.ExistsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/check/{areaId} [get]
func (h *OrderHandler) CheckExisting(c *fiber.Ctx) error {
	areaID, err := parseIDParam(c, "areaId")
	if err != nil {
		return handleError(c, err)
	}
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date es requerido"})
	}
	exists, err := h.uc.CheckExisting(c.UserContext(), areaID, date)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.ExistsResponse{Exists: exists})
}

// Update godoc
// @Summary      Actualizar pedido (solo el mismo día de su creación, hora de Perú)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido
// @Tags         orders
// @Security     Bearer
// @Param        id  path  int  true  "ID del pedido"
// @Success      204
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
