package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/query"
)

// SupplierListSpec configuración de listado paginado de proveedores.
var SupplierListSpec = query.ListSpec{
	SearchFields: []string{"name", "companyName", "contactName", "email"},
	DateField:    "createdAt",
	SortFields:   []string{"id", "name", "createdAt"},
	DefaultSort:  "createdAt",
}

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context, p query.Predicate, sort query.Sort, limit, offset int) ([]*entity.Supplier, error)
	Count(ctx context.Context, p query.Predicate) (int64, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id int64) error
}

// PurchaseRepository define el puerto de persistencia para Purchase (DIP).
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id int64) (*entity.Purchase, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.Purchase, error)
	// Update persiste encabezado y, si replaceItems, reemplaza las líneas.
	Update(ctx context.Context, purchase *entity.Purchase, replaceItems bool) error
	Delete(ctx context.Context, id int64) error
	GetItem(ctx context.Context, itemID int64) (*entity.PurchaseItem, error)
	UpdateItem(ctx context.Context, item *entity.PurchaseItem) error
	DeleteItem(ctx context.Context, itemID int64) error
}
