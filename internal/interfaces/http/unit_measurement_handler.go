package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/application/usecase"
	"github.com/tu-usuario/pedidos-pro/pkg/validator"
)

// UnitMeasurementHandler maneja las peticiones HTTP para UnitMeasurement (protegido).
type UnitMeasurementHandler struct {
	uc *usecase.UnitMeasurementUseCase
}

// NewUnitMeasurementHandler construye el handler.
func NewUnitMeasurementHandler(uc *usecase.UnitMeasurementUseCase) *UnitMeasurementHandler {
	return &UnitMeasurementHandler{uc: uc}
}

// Create godoc
// @Summary      Crear unidad de medida
// @Tags         unit-measurements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUnitMeasurementRequest  true  "Datos de la unidad"
// @Success      201   {object}  dto.UnitMeasurementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/unit-measurements [post]
func (h *UnitMeasurementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUnitMeasurementRequest
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
// @Summary      Obtener unidad de medida por ID
// @Tags         unit-measurements
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la unidad"
// @Success      200  {object}  dto.UnitMeasurementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/unit-measurements/{id} [get]
func (h *UnitMeasurementHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar unidades de medida
// @Tags         unit-measurements
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UnitMeasurementResponse
// @Router       /api/unit-measurements [get]
func (h *UnitMeasurementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar unidad de medida
// @Tags         unit-measurements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la unidad"
// @Param        body  body  dto.UpdateUnitMeasurementRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.UnitMeasurementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/unit-measurements/{id} [put]
func (h *UnitMeasurementHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	var in dto.UpdateUnitMeasurementRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar unidad de medida
// @Tags         unit-measurements
// @Security     Bearer
// @Param        id  path  int  true  "ID de la unidad"
// @Success      204
// @Router       /api/unit-measurements/{id} [delete]
func (h *UnitMeasurementHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
