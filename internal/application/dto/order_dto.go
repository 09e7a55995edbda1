package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de pedido en creación/actualización.
type OrderItemRequest struct {
	ProductID         int64           `json:"productId" validate:"required,gt=0"`
	Quantity          decimal.Decimal `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	UnitMeasurementID int64           `json:"unitMeasurementId" validate:"required,gt=0"`
}

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	UserID      int64              `json:"userId" validate:"required,gt=0"`
	AreaID      int64              `json:"areaId" validate:"required,gt=0"`
	Observation string             `json:"observation" validate:"omitempty,max=500"`
	Items       []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderRequest entrada para actualizar un pedido. Items no nil
// reemplaza las líneas completas, como hace el frontend.
type UpdateOrderRequest struct {
	Status      *string            `json:"status" validate:"omitempty,oneof=created process delivered"`
	Observation *string            `json:"observation" validate:"omitempty,max=500"`
	Items       []OrderItemRequest `json:"items" validate:"omitempty,min=1,dive"`
}

// OrderItemResponse línea de pedido en respuestas.
type OrderItemResponse struct {
	ID                int64                    `json:"id"`
	ProductID         int64                    `json:"productId"`
	Quantity          decimal.Decimal          `json:"quantity"`
	Price             decimal.Decimal          `json:"price"`
	UnitMeasurementID int64                    `json:"unitMeasurementId"`
	Product           *ProductResponse         `json:"product,omitempty"`
	UnitMeasurement   *UnitMeasurementResponse `json:"unitMeasurement,omitempty"`
}

// OrderUserResponse resumen del usuario que colocó el pedido.
type OrderUserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// OrderResponse salida de un pedido. CreatedAt/UpdatedAt son los instantes
// UTC almacenados; los campos *Peru son su proyección en hora de Perú para
// presentación (solo fecha, solo hora y combinada).
type OrderResponse struct {
	ID            int64               `json:"id"`
	UserID        int64               `json:"userId"`
	AreaID        int64               `json:"areaId"`
	TotalAmount   decimal.Decimal     `json:"totalAmount"`
	Status        string              `json:"status"`
	Observation   string              `json:"observation"`
	User          *OrderUserResponse  `json:"user,omitempty"`
	Area          *AreaResponse       `json:"area,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     *time.Time          `json:"updatedAt"`
	CreatedDate   string              `json:"createdDatePeru"`
	CreatedTime   string              `json:"createdTimePeru"`
	CreatedLocal  string              `json:"createdAtPeru"`
	UpdatedLocal  *string             `json:"updatedAtPeru"`
}
