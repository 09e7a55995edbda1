package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=120"`
	Color string `json:"color" validate:"required,hexcolor"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=120"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Color     string         `json:"color"`
	Areas     []AreaResponse `json:"areas,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
