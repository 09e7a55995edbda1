package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/query"
)

// ProductListSpec configuración de listado paginado de productos.
var ProductListSpec = query.ListSpec{
	SearchFields: []string{"name", "description"},
	DateField:    "createdAt",
	SortFields:   []string{"id", "name", "price", "stock", "createdAt", "updatedAt"},
	DefaultSort:  "createdAt",
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y sus unidades de medida (muchas-a-muchas).
	Create(ctx context.Context, product *entity.Product, unitIDs []int64) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context, p query.Predicate, sort query.Sort, limit, offset int) ([]*entity.Product, error)
	Count(ctx context.Context, p query.Predicate) (int64, error)
	// Update reemplaza las unidades asignadas solo si unitIDs no es nil.
	Update(ctx context.Context, product *entity.Product, unitIDs []int64) error
	Delete(ctx context.Context, id int64) error
}
