package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
)

// AreaUseCase casos de uso CRUD para áreas.
type AreaUseCase struct {
	repo        repository.AreaRepository
	companyRepo repository.CompanyRepository
}

// NewAreaUseCase construye el caso de uso.
func NewAreaUseCase(repo repository.AreaRepository, companyRepo repository.CompanyRepository) *AreaUseCase {
	return &AreaUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea un área. El nombre debe ser único dentro de la empresa.
func (uc *AreaUseCase) Create(ctx context.Context, in dto.CreateAreaRequest) (*dto.AreaResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNameAndCompany(ctx, in.Name, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now().UTC()
	area := &entity.Area{
		Name:      in.Name,
		CompanyID: in.CompanyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, area); err != nil {
		return nil, err
	}
	return toAreaResponse(area), nil
}

// GetByID obtiene un área por ID.
func (uc *AreaUseCase) GetByID(ctx context.Context, id int64) (*dto.AreaResponse, error) {
	area, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, nil
	}
	return toAreaResponse(area), nil
}

// List devuelve todas las áreas, opcionalmente filtradas por empresa
// (companyID > 0).
func (uc *AreaUseCase) List(ctx context.Context, companyID int64) ([]dto.AreaResponse, error) {
	var (
		list []*entity.Area
		err  error
	)
	if companyID > 0 {
		list, err = uc.repo.ListByCompany(ctx, companyID)
	} else {
		list, err = uc.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.AreaResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAreaResponse(a))
	}
	return out, nil
}

// Update renombra un área, conservando la unicidad dentro de la empresa.
func (uc *AreaUseCase) Update(ctx context.Context, id int64, in dto.UpdateAreaRequest) (*dto.AreaResponse, error) {
	area, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != area.Name {
		existing, err := uc.repo.GetByNameAndCompany(ctx, *in.Name, area.CompanyID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrConflict
		}
		area.Name = *in.Name
	}
	area.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, area); err != nil {
		return nil, err
	}
	return toAreaResponse(area), nil
}

// Delete elimina un área por ID.
func (uc *AreaUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toAreaResponse(a *entity.Area) *dto.AreaResponse {
	if a == nil {
		return nil
	}
	resp := &dto.AreaResponse{
		ID:        a.ID,
		Name:      a.Name,
		CompanyID: a.CompanyID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Company != nil {
		resp.Company = toCompanyResponse(a.Company)
	}
	return resp
}
