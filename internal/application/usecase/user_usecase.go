package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pedidos-pro/internal/application/dto"
	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/pagination"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
)

// UserUseCase casos de uso para usuarios: CRUD, listado paginado con búsqueda
// libre y cambio de contraseña.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create registra un usuario. La contraseña se almacena como hash bcrypt;
// el email debe ser único.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		Role:         in.Role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user, in.AreaIDs); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario con sus áreas.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List devuelve la página de usuarios que coincide con la búsqueda libre
// (nombre/email/teléfono) y el orden solicitado.
func (uc *UserUseCase) List(ctx context.Context, req pagination.PageRequest) (*pagination.Page[dto.UserResponse], error) {
	spec := repository.UserListSpec
	pred := spec.Build(req.Query, nil)
	sort := spec.ResolveSort(req)

	page, err := pagination.Paginate(ctx, req,
		func(ctx context.Context, limit, offset int) ([]*entity.User, error) {
			return uc.repo.List(ctx, pred, sort, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return uc.repo.Count(ctx, pred)
		},
	)
	if err != nil {
		return nil, err
	}
	return pagination.Map(page, func(u *entity.User) dto.UserResponse {
		return *toUserResponse(u)
	}), nil
}

// Update actualiza los datos de un usuario (sin contraseña). AreaIDs nil
// conserva las áreas asignadas.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Email != nil && *in.Email != user.Email {
		existing, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, user, in.AreaIDs); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// UpdatePassword reemplaza la contraseña del usuario por su hash bcrypt.
func (uc *UserUseCase) UpdatePassword(ctx context.Context, id int64, in dto.UpdatePasswordRequest) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePassword(ctx, id, string(hash))
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	for _, a := range u.Areas {
		a := a
		resp.Areas = append(resp.Areas, *toAreaResponse(&a))
	}
	return resp
}
