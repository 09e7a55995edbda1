package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// AreaRepository define el puerto de persistencia para Area (DIP).
type AreaRepository interface {
	Create(ctx context.Context, area *entity.Area) error
	GetByID(ctx context.Context, id int64) (*entity.Area, error)
	// GetByNameAndCompany detecta duplicados de nombre dentro de la empresa.
	GetByNameAndCompany(ctx context.Context, name string, companyID int64) (*entity.Area, error)
	List(ctx context.Context) ([]*entity.Area, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Area, error)
	Update(ctx context.Context, area *entity.Area) error
	Delete(ctx context.Context, id int64) error
}
