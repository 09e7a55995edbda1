package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// UnitMeasurementRepository define el puerto de persistencia para UnitMeasurement (DIP).
type UnitMeasurementRepository interface {
	Create(ctx context.Context, unit *entity.UnitMeasurement) error
	GetByID(ctx context.Context, id int64) (*entity.UnitMeasurement, error)
	List(ctx context.Context) ([]*entity.UnitMeasurement, error)
	Update(ctx context.Context, unit *entity.UnitMeasurement) error
	Delete(ctx context.Context, id int64) error
}
