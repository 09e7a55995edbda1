package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra a un proveedor. PurchaseDate es el instante
// UTC de la compra; si el frontend envía una fecha plana YYYY-MM-DD se ancla a
// la medianoche de Lima de ese día.
type Purchase struct {
	ID           int64
	SupplierID   int64
	AreaID       *int64 // opcional
	TotalAmount  decimal.Decimal
	PurchaseDate time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Items        []PurchaseItem
}

// PurchaseItem línea de una compra.
type PurchaseItem struct {
	ID                int64
	PurchaseID        int64
	ProductID         int64
	Quantity          decimal.Decimal
	UnitCost          decimal.Decimal
	TotalCost         decimal.Decimal
	UnitMeasurementID int64
	Product           *Product         // cargado bajo demanda
	UnitMeasurement   *UnitMeasurement // cargada bajo demanda
}
