package dto

import "time"

// CreateUserRequest entrada para registrar un usuario. Password llega en
// claro y se almacena como hash bcrypt.
type CreateUserRequest struct {
	FirstName string  `json:"firstName" validate:"required,min=1,max=120"`
	LastName  string  `json:"lastName" validate:"required,min=1,max=120"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone" validate:"omitempty,max=30"`
	Address   string  `json:"address" validate:"omitempty,max=250"`
	Role      string  `json:"role" validate:"required,oneof=admin customer"`
	Password  string  `json:"password" validate:"required,min=6"`
	AreaIDs   []int64 `json:"areaIds" validate:"omitempty,dive,gt=0"`
}

// UpdateUserRequest entrada para actualizar un usuario (sin contraseña;
// AreaIDs nil conserva las áreas actuales).
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=120"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=120"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Address   *string `json:"address" validate:"omitempty,max=250"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin customer"`
	AreaIDs   []int64 `json:"areaIds" validate:"omitempty,dive,gt=0"`
}

// UpdatePasswordRequest entrada del endpoint de cambio de contraseña.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse salida de un usuario. Nunca incluye la contraseña.
type UserResponse struct {
	ID        int64          `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Address   string         `json:"address"`
	Role      string         `json:"role"`
	Areas     []AreaResponse `json:"areas,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
