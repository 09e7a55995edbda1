package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name               string          `json:"name" validate:"required,min=1,max=200"`
	Description        string          `json:"description" validate:"omitempty,max=500"`
	Price              decimal.Decimal `json:"price"`
	Stock              int             `json:"stock" validate:"gte=0"`
	ImageURL           string          `json:"imageUrl" validate:"omitempty,url"`
	CategoryID         int64           `json:"categoryId" validate:"required,gt=0"`
	UnitMeasurementIDs []int64         `json:"unitMeasurementIds" validate:"omitempty,dive,gt=0"`
}

// UpdateProductRequest entrada para actualizar un producto
// (UnitMeasurementIDs nil conserva las unidades actuales).
type UpdateProductRequest struct {
	Name               *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description        *string          `json:"description" validate:"omitempty,max=500"`
	Price              *decimal.Decimal `json:"price"`
	Stock              *int             `json:"stock" validate:"omitempty,gte=0"`
	ImageURL           *string          `json:"imageUrl" validate:"omitempty,url"`
	CategoryID         *int64           `json:"categoryId" validate:"omitempty,gt=0"`
	UnitMeasurementIDs []int64          `json:"unitMeasurementIds" validate:"omitempty,dive,gt=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64                     `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Price       decimal.Decimal           `json:"price"`
	Stock       int                       `json:"stock"`
	ImageURL    string                    `json:"imageUrl"`
	CategoryID  int64                     `json:"categoryId"`
	Category    *CategoryResponse         `json:"category,omitempty"`
	Units       []UnitMeasurementResponse `json:"units,omitempty"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}
