package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
)

// ProductOrderCount producto más pedido con su cantidad acumulada.
type ProductOrderCount struct {
	ProductID   int64
	ProductName string
	Quantity    decimal.Decimal
}

// UserOrderCount usuario con su número de pedidos.
type UserOrderCount struct {
	UserID     int64
	FirstName  string
	LastName   string
	Email      string
	OrderCount int64
}

// DayOrderStats pedidos agrupados por día calendario de negocio (Lima).
type DayOrderStats struct {
	BusinessDate string // YYYY-MM-DD en America/Lima
	OrderCount   int64
	TotalAmount  decimal.Decimal
}

// DashboardRepository define las consultas de solo lectura del dashboard.
type DashboardRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	SumOrderAmounts(ctx context.Context) (decimal.Decimal, error)
	TopOrderedProducts(ctx context.Context, limit int) ([]ProductOrderCount, error)
	TopUsersByOrders(ctx context.Context, limit int) ([]UserOrderCount, error)
	LatestUsers(ctx context.Context, limit int) ([]*entity.User, error)
	LatestProducts(ctx context.Context, limit int) ([]*entity.Product, error)
	// OrdersByBusinessDay agrupa pedidos desde since (instante UTC) por fecha
	// calendario de Lima.
	OrdersByBusinessDay(ctx context.Context, since time.Time) ([]DayOrderStats, error)
}
