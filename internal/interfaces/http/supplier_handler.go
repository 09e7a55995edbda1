package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/application/usecase"
	"github.com/tu-usuario/pedidos-pro/pkg/validator"
)

// SupplierHandler maneja las peticiones HTTP para Supplier y sus compras (protegido).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
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
// @Summary      Obtener proveedor por ID
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar proveedores (paginado)
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Tamaño de página (1-100)"  default(10)
// @Param        sortBy  query  string  false  "Campo de orden (id, name, createdAt)"
// @Param        order   query  string  false  "asc | desc"  default(desc)
// @Param        q       query  string  false  "Búsqueda libre (nombre, razón social, contacto, email)"
// @Success      200  {object}  pagination.Page[dto.SupplierResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	req, err := parsePageQuery(c)
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proveedor"
// @Param        body  body  dto.UpdateSupplierRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SupplierResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	var in dto.UpdateSupplierRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         suppliers
// @Security     Bearer
// @Param        id  path  int  true  "ID del proveedor"
// @Success      204
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePurchase godoc
// @Summary      Registrar compra bajo un proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proveedor"
// @Param        body  body  dto.CreatePurchaseRequest  true  "Datos de la compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/purchases [post]
func (h *SupplierHandler) CreatePurchase(c *fiber.Ctx) error {
	supplierID, err := parseIDParam(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.CreatePurchase(c.UserContext(), supplierID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPurchases godoc
// @Summary      Listar compras de un proveedor
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del proveedor"
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/suppliers/{id}/purchases [get]
func (h *SupplierHandler) ListPurchases(c *fiber.Ctx) error {
	supplierID, err := parseIDParam(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.ListPurchases(c.UserContext(), supplierID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetPurchase godoc
// @Summary      Obtener compra por ID
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        purchaseId  path  int  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{purchaseId} [get]
func (h *SupplierHandler) GetPurchase(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "purchaseId")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.GetPurchase(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
	}
	return c.JSON(out)
}

// UpdatePurchase godoc
// @Summary      Actualizar compra
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        purchaseId  path  int  true  "ID de la compra"
// @Param        body        body  dto.UpdatePurchaseRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{purchaseId} [put]
func (h *SupplierHandler) UpdatePurchase(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "purchaseId")
	if err != nil {
		return handleError(c, err)
	}
	var in dto.UpdatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UpdatePurchase(c.UserContext(), id, in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
	}
	return c.JSON(out)
}

// DeletePurchase godoc
// @Summary      Eliminar compra
// @Tags         suppliers
// @Security     Bearer
// @Param        purchaseId  path  int  true  "ID de la compra"
// @Success      204
// @Router       /api/purchases/{purchaseId} [delete]
func (h *SupplierHandler) DeletePurchase(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "purchaseId")
	if err != nil {
		return handleError(c, err)
	}
	if err := h.uc.DeletePurchase(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdatePurchaseItem godoc
// @Summary      Actualizar línea de compra
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        itemId  path  int  true  "ID de la línea"
// @Param        body    body  dto.UpdatePurchaseItemRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/items/{itemId} [put]
func (h *SupplierHandler) UpdatePurchaseItem(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		return handleError(c, err)
	}
	var in dto.UpdatePurchaseItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UpdatePurchaseItem(c.UserContext(), itemID, in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea de compra no encontrada"})
	}
	return c.JSON(out)
}

// DeletePurchaseItem godoc
// @Summary      Eliminar línea de compra
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        itemId  path  int  true  "ID de la línea"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/items/{itemId} [delete]
func (h *SupplierHandler) DeletePurchaseItem(c *fiber.Ctx) error {
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.DeletePurchaseItem(c.UserContext(), itemID)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea de compra no encontrada"})
	}
	return c.JSON(out)
}
