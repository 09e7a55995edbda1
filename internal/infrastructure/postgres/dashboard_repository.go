package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el panel.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de consultas del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountProducts total de productos en catálogo.
func (r *DashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountOrders total de pedidos registrados.
func (r *DashboardRepo) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// SumOrderAmounts monto acumulado de todos los pedidos.
func (r *DashboardRepo) SumOrderAmounts(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(sum(total_amount), 0) FROM orders`).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum order amounts: %w", err)
	}
	return sum, nil
}

// TopOrderedProducts productos con mayor cantidad acumulada en líneas de pedido.
func (r *DashboardRepo) TopOrderedProducts(ctx context.Context, limit int) ([]repository.ProductOrderCount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.name, COALESCE(sum(i.quantity), 0) AS qty
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		GROUP BY p.id, p.name
		ORDER BY qty DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top ordered products: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductOrderCount
	for rows.Next() {
		var pc repository.ProductOrderCount
		if err := rows.Scan(&pc.ProductID, &pc.ProductName, &pc.Quantity); err != nil {
			return nil, fmt.Errorf("scan product count: %w", err)
		}
		list = append(list, pc)
	}
	return list, rows.Err()
}

// TopUsersByOrders usuarios con más pedidos colocados.
func (r *DashboardRepo) TopUsersByOrders(ctx context.Context, limit int) ([]repository.UserOrderCount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT u.id, u.first_name, u.last_name, u.email, count(o.id) AS orders
		FROM orders o
		JOIN users u ON u.id = o.user_id
		GROUP BY u.id, u.first_name, u.last_name, u.email
		ORDER BY orders DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top users by orders: %w", err)
	}
	defer rows.Close()

	var list []repository.UserOrderCount
	for rows.Next() {
		var uc repository.UserOrderCount
		if err := rows.Scan(&uc.UserID, &uc.FirstName, &uc.LastName, &uc.Email, &uc.OrderCount); err != nil {
			return nil, fmt.Errorf("scan user count: %w", err)
		}
		list = append(list, uc)
	}
	return list, rows.Err()
}

// LatestUsers últimos usuarios registrados.
func (r *DashboardRepo) LatestUsers(ctx context.Context, limit int) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, first_name, last_name, email, role, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("latest users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// LatestProducts últimos productos añadidos al catálogo.
func (r *DashboardRepo) LatestProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, description, price, stock, image_url, category_id, created_at
		FROM products
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("latest products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL, &p.CategoryID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// OrdersByBusinessDay agrupa pedidos desde since por día calendario de Lima.
// El agrupamiento se hace en la base convirtiendo el instante UTC a la zona
// de negocio antes de truncar a fecha.
func (r *DashboardRepo) OrdersByBusinessDay(ctx context.Context, since time.Time) ([]repository.DayOrderStats, error) {
	rows, err := r.q.Query(ctx, `
		SELECT to_char((created_at AT TIME ZONE $2)::date, 'YYYY-MM-DD') AS day,
		       count(*), COALESCE(sum(total_amount), 0)
		FROM orders
		WHERE created_at >= $1
		GROUP BY day
		ORDER BY day`,
		since, timezone.BusinessTimezone)
	if err != nil {
		return nil, fmt.Errorf("orders by business day: %w", err)
	}
	defer rows.Close()

	var list []repository.DayOrderStats
	for rows.Next() {
		var ds repository.DayOrderStats
		if err := rows.Scan(&ds.BusinessDate, &ds.OrderCount, &ds.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan day stats: %w", err)
		}
		list = append(list, ds)
	}
	return list, rows.Err()
}
