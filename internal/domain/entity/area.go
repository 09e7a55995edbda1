package entity

import "time"

// Area representa un área de una empresa; es quien coloca los pedidos.
// El nombre es único dentro de la empresa.
type Area struct {
	ID        int64
	Name      string
	CompanyID int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Company   *Company // cargada bajo demanda
}
