package dto

import "time"

// CreateUnitMeasurementRequest entrada para crear una unidad de medida.
type CreateUnitMeasurementRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=60"`
	Description string `json:"description" validate:"omitempty,max=250"`
}

// UpdateUnitMeasurementRequest entrada para actualizar una unidad de medida.
type UpdateUnitMeasurementRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=60"`
	Description *string `json:"description" validate:"omitempty,max=250"`
}

// UnitMeasurementResponse salida de una unidad de medida.
type UnitMeasurementResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
