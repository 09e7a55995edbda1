package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User representa un usuario del sistema, asociado a una o más áreas.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	Role         string // admin, customer
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Areas        []Area // muchas-a-muchas, cargadas bajo demanda
}
