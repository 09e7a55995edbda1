package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para registrar un proveedor.
type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	CompanyName string `json:"companyName" validate:"omitempty,max=200"`
	ContactName string `json:"contactName" validate:"omitempty,max=120"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address" validate:"omitempty,max=250"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
type UpdateSupplierRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	CompanyName *string `json:"companyName" validate:"omitempty,max=200"`
	ContactName *string `json:"contactName" validate:"omitempty,max=120"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address" validate:"omitempty,max=250"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"companyName"`
	ContactName string    `json:"contactName"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PurchaseItemRequest línea de compra en creación/actualización. TotalCost se
// calcula como Quantity*UnitCost si llega en cero.
type PurchaseItemRequest struct {
	ProductID         int64           `json:"productId" validate:"required,gt=0"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitCost          decimal.Decimal `json:"unitCost"`
	TotalCost         decimal.Decimal `json:"totalCost"`
	UnitMeasurementID int64           `json:"unitMeasurementId" validate:"required,gt=0"`
}

// CreatePurchaseRequest entrada para registrar una compra bajo un proveedor.
// PurchaseDate acepta fecha plana YYYY-MM-DD o timestamp ISO; vacía usa el
// instante actual.
type CreatePurchaseRequest struct {
	AreaID       *int64                `json:"areaId" validate:"omitempty,gt=0"`
	PurchaseDate string                `json:"purchaseDate"`
	Items        []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdatePurchaseRequest entrada para actualizar una compra. Items no nil
// reemplaza las líneas completas.
type UpdatePurchaseRequest struct {
	AreaID       *int64                `json:"areaId" validate:"omitempty,gt=0"`
	PurchaseDate *string               `json:"purchaseDate"`
	Items        []PurchaseItemRequest `json:"items" validate:"omitempty,min=1,dive"`
}

// UpdatePurchaseItemRequest entrada para actualizar una línea de compra.
type UpdatePurchaseItemRequest struct {
	Quantity          *decimal.Decimal `json:"quantity"`
	UnitCost          *decimal.Decimal `json:"unitCost"`
	UnitMeasurementID *int64           `json:"unitMeasurementId" validate:"omitempty,gt=0"`
}

// PurchaseItemResponse línea de compra en respuestas.
type PurchaseItemResponse struct {
	ID                int64                    `json:"id"`
	ProductID         int64                    `json:"productId"`
	Quantity          decimal.Decimal          `json:"quantity"`
	UnitCost          decimal.Decimal          `json:"unitCost"`
	TotalCost         decimal.Decimal          `json:"totalCost"`
	UnitMeasurementID int64                    `json:"unitMeasurementId"`
	Product           *ProductResponse         `json:"product,omitempty"`
	UnitMeasurement   *UnitMeasurementResponse `json:"unitMeasurement,omitempty"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID           int64                  `json:"id"`
	SupplierID   int64                  `json:"supplierId"`
	AreaID       *int64                 `json:"areaId"`
	TotalAmount  decimal.Decimal        `json:"totalAmount"`
	PurchaseDate time.Time              `json:"purchaseDate"`
	Items        []PurchaseItemResponse `json:"items"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}
