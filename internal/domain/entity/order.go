package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un pedido.
const (
	OrderStatusCreated   = "created"
	OrderStatusProcess   = "process"
	OrderStatusDelivered = "delivered"
)

// ValidOrderStatus indica si s es uno de los estados conocidos.
func ValidOrderStatus(s string) bool {
	return s == OrderStatusCreated || s == OrderStatusProcess || s == OrderStatusDelivered
}

// Order representa un pedido colocado por un área. CreatedAt/UpdatedAt se
// almacenan siempre en UTC; la presentación en hora de Perú es responsabilidad
// de la capa de aplicación.
type Order struct {
	ID          int64
	UserID      int64
	AreaID      int64
	TotalAmount decimal.Decimal
	Status      string // created, process, delivered
	Observation string
	CreatedAt   time.Time
	UpdatedAt   *time.Time // nil si nunca se modificó
	Items       []OrderItem
	User        *User // cargado bajo demanda
	Area        *Area // cargada bajo demanda
}

// OrderItem línea de un pedido.
type OrderItem struct {
	ID                int64
	OrderID           int64
	ProductID         int64
	Quantity          decimal.Decimal
	Price             decimal.Decimal
	UnitMeasurementID int64
	Product           *Product         // cargado bajo demanda
	UnitMeasurement   *UnitMeasurement // cargada bajo demanda
}
