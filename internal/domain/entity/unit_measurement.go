package entity

import "time"

// UnitMeasurement unidad de medida de un producto (ej: "Kg", "L", "Und").
type UnitMeasurement struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
