package entity

import "time"

// Supplier representa un proveedor que surte compras.
type Supplier struct {
	ID          int64
	Name        string
	CompanyName string
	ContactName string
	Phone       string
	Email       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Purchases   []Purchase // cargadas bajo demanda
}
