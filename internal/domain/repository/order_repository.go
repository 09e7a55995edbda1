package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/query"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

// OrderListSpec configuración de listado paginado de pedidos: la búsqueda
// libre cubre observación y estado, y además matchea por ID numérico cuando
// el término parsea como entero (buscar "42" encuentra el pedido 42).
var OrderListSpec = query.ListSpec{
	SearchFields:   []string{"observation", "status"},
	NumericIDField: "id",
	DateField:      "createdAt",
	SortFields:     []string{"id", "createdAt", "updatedAt", "totalAmount", "status", "userId", "areaId"},
	DefaultSort:    "createdAt",
}

// OrderRepository define el puerto de persistencia para Order (DIP).
// Create y Update son atómicos respecto a las líneas del pedido (Update las
// reemplaza por completo, igual que hace el frontend).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context, p query.Predicate, sort query.Sort, limit, offset int) ([]*entity.Order, error)
	Count(ctx context.Context, p query.Predicate) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error)
	// ExistsForArea indica si el área ya colocó un pedido dentro del rango
	// [Start, End) del día de negocio dado.
	ExistsForArea(ctx context.Context, areaID int64, dr timezone.DayRange) (bool, error)
	// Update persiste encabezado y, si items no es nil, reemplaza las líneas.
	Update(ctx context.Context, order *entity.Order, replaceItems bool) error
	Delete(ctx context.Context, id int64) error
}
