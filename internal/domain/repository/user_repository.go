package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/query"
)

// UserListSpec configuración de listado paginado de usuarios: búsqueda libre
// sobre nombre/email/teléfono y whitelist de orden.
var UserListSpec = query.ListSpec{
	SearchFields: []string{"firstName", "lastName", "email", "phone"},
	DateField:    "createdAt",
	SortFields:   []string{"id", "createdAt", "email", "firstName", "lastName", "role"},
	DefaultSort:  "createdAt",
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User, areaIDs []int64) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, p query.Predicate, sort query.Sort, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context, p query.Predicate) (int64, error)
	// Update reemplaza las áreas asignadas solo si areaIDs no es nil.
	Update(ctx context.Context, user *entity.User, areaIDs []int64) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}
