package dto

import "time"

// CreateAreaRequest entrada para crear un área.
type CreateAreaRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=120"`
	CompanyID int64  `json:"companyId" validate:"required,gt=0"`
}

// UpdateAreaRequest entrada para actualizar un área.
type UpdateAreaRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=120"`
}

// AreaResponse salida de un área.
type AreaResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	CompanyID int64            `json:"companyId"`
	Company   *CompanyResponse `json:"company,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
