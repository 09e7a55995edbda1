package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para compras.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseSelect = `
	SELECT id, supplier_id, area_id, total_amount, purchase_date, created_at, updated_at
	FROM purchases`

func scanPurchase(row pgx.Row) (*entity.Purchase, error) {
	var p entity.Purchase
	err := row.Scan(&p.ID, &p.SupplierID, &p.AreaID, &p.TotalAmount,
		&p.PurchaseDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste la compra y sus líneas. Llamar dentro de una transacción
// (TxRunner) para que encabezado y líneas sean atómicos.
func (r *PurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO purchases (supplier_id, area_id, total_amount, purchase_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		purchase.SupplierID, purchase.AreaID, purchase.TotalAmount,
		purchase.PurchaseDate, purchase.CreatedAt,
	).Scan(&purchase.ID)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	if err := r.insertItems(ctx, purchase.ID, purchase.Items); err != nil {
		return err
	}
	for i := range purchase.Items {
		purchase.Items[i].PurchaseID = purchase.ID
	}
	return nil
}

func (r *PurchaseRepo) insertItems(ctx context.Context, purchaseID int64, items []entity.PurchaseItem) error {
	for i := range items {
		it := &items[i]
		err := r.q.QueryRow(ctx, `
			INSERT INTO purchase_items (purchase_id, product_id, quantity, unit_cost, total_cost, unit_measurement_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			purchaseID, it.ProductID, it.Quantity, it.UnitCost, it.TotalCost, it.UnitMeasurementID,
		).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert purchase item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una compra con sus líneas.
func (r *PurchaseRepo) GetByID(ctx context.Context, id int64) (*entity.Purchase, error) {
	p, err := scanPurchase(r.q.QueryRow(ctx, purchaseSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.Purchase{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// ListBySupplier devuelve las compras de un proveedor, más recientes primero.
func (r *PurchaseRepo) ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(ctx, purchaseSelect+` WHERE supplier_id = $1 ORDER BY purchase_date DESC`, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list purchases by supplier: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update persiste el encabezado y, si replaceItems, borra y reinserta las
// líneas. Llamar dentro de una transacción (TxRunner).
func (r *PurchaseRepo) Update(ctx context.Context, purchase *entity.Purchase, replaceItems bool) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE purchases SET area_id = $2, total_amount = $3, purchase_date = $4, updated_at = now()
		WHERE id = $1`,
		purchase.ID, purchase.AreaID, purchase.TotalAmount, purchase.PurchaseDate,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 || !replaceItems {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_items WHERE purchase_id = $1`, purchase.ID); err != nil {
		return fmt.Errorf("delete purchase items: %w", err)
	}
	return r.insertItems(ctx, purchase.ID, purchase.Items)
}

// Delete elimina la compra y sus líneas.
func (r *PurchaseRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_items WHERE purchase_id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

// GetItem obtiene una línea de compra por ID.
func (r *PurchaseRepo) GetItem(ctx context.Context, itemID int64) (*entity.PurchaseItem, error) {
	var it entity.PurchaseItem
	err := r.q.QueryRow(ctx, `
		SELECT id, purchase_id, product_id, quantity, unit_cost, total_cost, unit_measurement_id
		FROM purchase_items WHERE id = $1`, itemID,
	).Scan(&it.ID, &it.PurchaseID, &it.ProductID, &it.Quantity, &it.UnitCost, &it.TotalCost, &it.UnitMeasurementID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase item: %w", err)
	}
	return &it, nil
}

// UpdateItem actualiza una línea de compra.
func (r *PurchaseRepo) UpdateItem(ctx context.Context, item *entity.PurchaseItem) error {
	_, err := r.q.Exec(ctx, `
		UPDATE purchase_items
		SET product_id = $2, quantity = $3, unit_cost = $4, total_cost = $5, unit_measurement_id = $6
		WHERE id = $1`,
		item.ID, item.ProductID, item.Quantity, item.UnitCost, item.TotalCost, item.UnitMeasurementID,
	)
	if err != nil {
		return fmt.Errorf("update purchase item: %w", err)
	}
	return nil
}

// DeleteItem elimina una línea de compra por ID.
func (r *PurchaseRepo) DeleteItem(ctx context.Context, itemID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_items WHERE id = $1`, itemID); err != nil {
		return fmt.Errorf("delete purchase item: %w", err)
	}
	return nil
}

// loadItems carga las líneas (con producto y unidad) de todas las compras en
// una sola consulta y las reparte por compra.
func (r *PurchaseRepo) loadItems(ctx context.Context, purchases []*entity.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}
	ids := make([]int64, len(purchases))
	byID := make(map[int64]*entity.Purchase, len(purchases))
	for i, p := range purchases {
		ids[i] = p.ID
		byID[p.ID] = p
	}
	rows, err := r.q.Query(ctx, `
		SELECT i.id, i.purchase_id, i.product_id, i.quantity, i.unit_cost, i.total_cost, i.unit_measurement_id,
		       p.id, p.name, p.price, p.image_url,
		       um.id, um.name
		FROM purchase_items i
		JOIN products p          ON p.id = i.product_id
		JOIN unit_measurements um ON um.id = i.unit_measurement_id
		WHERE i.purchase_id = ANY($1)
		ORDER BY i.id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("load purchase items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.PurchaseItem
		var p entity.Product
		var um entity.UnitMeasurement
		if err := rows.Scan(
			&it.ID, &it.PurchaseID, &it.ProductID, &it.Quantity, &it.UnitCost, &it.TotalCost, &it.UnitMeasurementID,
			&p.ID, &p.Name, &p.Price, &p.ImageURL,
			&um.ID, &um.Name,
		); err != nil {
			return fmt.Errorf("scan purchase item: %w", err)
		}
		it.Product = &p
		it.UnitMeasurement = &um
		if pu, ok := byID[it.PurchaseID]; ok {
			pu.Items = append(pu.Items, it)
		}
	}
	return rows.Err()
}
