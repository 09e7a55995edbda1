package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Las unidades de medida
// disponibles son una relación muchas-a-muchas (un producto puede venderse
// por kilo y por unidad).
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
	CategoryID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Units       []UnitMeasurement // cargadas bajo demanda
	Category    *Category         // cargada bajo demanda
}
