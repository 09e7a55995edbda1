package entity

import "time"

// Company representa una empresa/tenant del sistema. Color es el código
// hexadecimal (#RRGGBB) con el que el frontend la identifica.
type Company struct {
	ID        int64
	Name      string
	Color     string // #RRGGBB
	CreatedAt time.Time
	UpdatedAt time.Time
	Areas     []Area // cargadas bajo demanda
}
