package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
)

// UnitMeasurementUseCase casos de uso CRUD para unidades de medida.
type UnitMeasurementUseCase struct {
	repo repository.UnitMeasurementRepository
}

// NewUnitMeasurementUseCase construye el caso de uso.
func NewUnitMeasurementUseCase(repo repository.UnitMeasurementRepository) *UnitMeasurementUseCase {
	return &UnitMeasurementUseCase{repo: repo}
}

// Create crea una unidad de medida.
func (uc *UnitMeasurementUseCase) Create(ctx context.Context, in dto.CreateUnitMeasurementRequest) (*dto.UnitMeasurementResponse, error) {
	now := time.Now().UTC()
	unit := &entity.UnitMeasurement{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitMeasurementResponse(unit), nil
}

// GetByID obtiene una unidad de medida por ID.
func (uc *UnitMeasurementUseCase) GetByID(ctx context.Context, id int64) (*dto.UnitMeasurementResponse, error) {
	unit, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	return toUnitMeasurementResponse(unit), nil
}

// List devuelve todas las unidades de medida.
func (uc *UnitMeasurementUseCase) List(ctx context.Context) ([]dto.UnitMeasurementResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitMeasurementResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUnitMeasurementResponse(u))
	}
	return out, nil
}

// Update actualiza una unidad de medida.
func (uc *UnitMeasurementUseCase) Update(ctx context.Context, id int64, in dto.UpdateUnitMeasurementRequest) (*dto.UnitMeasurementResponse, error) {
	unit, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	if in.Name != nil {
		unit.Name = *in.Name
	}
	if in.Description != nil {
		unit.Description = *in.Description
	}
	unit.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitMeasurementResponse(unit), nil
}

// Delete elimina una unidad de medida por ID.
func (uc *UnitMeasurementUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toUnitMeasurementResponse(u *entity.UnitMeasurement) *dto.UnitMeasurementResponse {
	if u == nil {
		return nil
	}
	return &dto.UnitMeasurementResponse{
		ID:          u.ID,
		Name:        u.Name,
		Description: u.Description,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
