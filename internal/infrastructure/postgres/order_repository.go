package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/query"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
	"github.com/tu-usuario/pedidos-pro/internal/domain/timezone"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// orderCols mapea los campos de API de Order a columnas (alias o = orders).
var orderCols = map[string]string{
	"id":          "o.id",
	"createdAt":   "o.created_at",
	"updatedAt":   "o.updated_at",
	"totalAmount": "o.total_amount",
	"status":      "o.status",
	"userId":      "o.user_id",
	"areaId":      "o.area_id",
	"observation": "o.observation",
}

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderSelect = `
	SELECT o.id, o.user_id, o.area_id, o.total_amount, o.status, o.observation, o.created_at, o.updated_at,
	       u.id, u.first_name, u.last_name, u.email,
	       a.id, a.name, a.company_id
	FROM orders o
	JOIN users u ON u.id = o.user_id
	JOIN areas a ON a.id = o.area_id`

// scanOrder lee una fila del orderSelect con su usuario y área.
func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var u entity.User
	var a entity.Area
	err := row.Scan(
		&o.ID, &o.UserID, &o.AreaID, &o.TotalAmount, &o.Status, &o.Observation, &o.CreatedAt, &o.UpdatedAt,
		&u.ID, &u.FirstName, &u.LastName, &u.Email,
		&a.ID, &a.Name, &a.CompanyID,
	)
	if err != nil {
		return nil, err
	}
	o.User = &u
	o.Area = &a
	return &o, nil
}

// Create persiste el pedido y sus líneas. Llamar dentro de una transacción
// (TxRunner) para que encabezado y líneas sean atómicos.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO orders (user_id, area_id, total_amount, status, observation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		order.UserID, order.AreaID, order.TotalAmount, order.Status, order.Observation, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	if err := r.insertItems(ctx, order.ID, order.Items); err != nil {
		return err
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	return nil
}

func (r *OrderRepo) insertItems(ctx context.Context, orderID int64, items []entity.OrderItem) error {
	for i := range items {
		it := &items[i]
		err := r.q.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price, unit_measurement_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			orderID, it.ProductID, it.Quantity, it.Price, it.UnitMeasurementID,
		).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pedido con usuario, área y líneas.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// List devuelve una página de pedidos según predicado y orden, con líneas cargadas.
func (r *OrderRepo) List(ctx context.Context, p query.Predicate, sort query.Sort, limit, offset int) ([]*entity.Order, error) {
	clause, args, err := renderPredicate(p, orderCols, nil)
	if err != nil {
		return nil, err
	}
	sql := orderSelect + whereSQL(clause) + orderBySQL(sort, orderCols, "o.created_at")
	args = append(args, limit)
	sql += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	sql += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Count cuenta las coincidencias del mismo predicado, sin paginar.
func (r *OrderRepo) Count(ctx context.Context, p query.Predicate) (int64, error) {
	clause, args, err := renderPredicate(p, orderCols, nil)
	if err != nil {
		return 0, err
	}
	var total int64
	err = r.q.QueryRow(ctx, `SELECT COUNT(*) FROM orders o`+whereSQL(clause), args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return total, nil
}

// ListByUser devuelve los pedidos de un usuario, más recientes primero.
func (r *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, orderSelect+` WHERE o.user_id = $1 ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// ExistsForArea indica si el área colocó algún pedido en el rango [Start, End).
func (r *OrderRepo) ExistsForArea(ctx context.Context, areaID int64, dr timezone.DayRange) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM orders
			WHERE area_id = $1 AND created_at >= $2 AND created_at < $3
		)`,
		areaID, dr.Start, dr.End,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check order exists: %w", err)
	}
	return exists, nil
}

// Update persiste el encabezado y, si replaceItems, borra y reinserta las
// líneas. Llamar dentro de una transacción (TxRunner).
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order, replaceItems bool) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE orders SET total_amount = $2, status = $3, observation = $4, updated_at = now()
		WHERE id = $1`,
		order.ID, order.TotalAmount, order.Status, order.Observation,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil
	}
	if !replaceItems {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return r.insertItems(ctx, order.ID, order.Items)
}

// Delete elimina el pedido y sus líneas.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// loadItems carga las líneas (con producto y unidad) de todos los pedidos en
// una sola consulta y las reparte por pedido.
func (r *OrderRepo) loadItems(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, len(orders))
	byID := make(map[int64]*entity.Order, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		byID[o.ID] = o
	}
	rows, err := r.q.Query(ctx, `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.price, i.unit_measurement_id,
		       p.id, p.name, p.price, p.image_url,
		       um.id, um.name
		FROM order_items i
		JOIN products p          ON p.id = i.product_id
		JOIN unit_measurements um ON um.id = i.unit_measurement_id
		WHERE i.order_id = ANY($1)
		ORDER BY i.id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.OrderItem
		var p entity.Product
		var um entity.UnitMeasurement
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price, &it.UnitMeasurementID,
			&p.ID, &p.Name, &p.Price, &p.ImageURL,
			&um.ID, &um.Name,
		); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		it.Product = &p
		it.UnitMeasurement = &um
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}
