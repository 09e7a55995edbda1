package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/query"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productCols mapea los campos de API de Product a columnas (alias p = products).
var productCols = map[string]string{
	"id":          "p.id",
	"name":        "p.name",
	"description": "p.description",
	"price":       "p.price",
	"stock":       "p.stock",
	"createdAt":   "p.created_at",
	"updatedAt":   "p.updated_at",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.stock, p.image_url, p.category_id, p.created_at, p.updated_at,
	       c.id, c.name
	FROM products p
	JOIN categories c ON c.id = p.category_id`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var c entity.Category
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name,
	)
	if err != nil {
		return nil, err
	}
	p.Category = &c
	return &p, nil
}

// Create persiste el producto y sus unidades de medida.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product, unitIDs []int64) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO products (name, description, price, stock, image_url, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id`,
		product.Name, product.Description, product.Price, product.Stock, product.ImageURL, product.CategoryID, product.CreatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return r.setUnits(ctx, product.ID, unitIDs)
}

func (r *ProductRepo) setUnits(ctx context.Context, productID int64, unitIDs []int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_units WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear product units: %w", err)
	}
	for _, unitID := range unitIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO product_units (product_id, unit_measurement_id) VALUES ($1, $2)`, productID, unitID); err != nil {
			return fmt.Errorf("insert product unit: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un producto con categoría y unidades.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if err := r.loadUnits(ctx, []*entity.Product{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// List devuelve una página de productos según predicado y orden, con unidades cargadas.
func (r *ProductRepo) List(ctx context.Context, p query.Predicate, sort query.Sort, limit, offset int) ([]*entity.Product, error) {
	clause, args, err := renderPredicate(p, productCols, nil)
	if err != nil {
		return nil, err
	}
	sql := productSelect + whereSQL(clause) + orderBySQL(sort, productCols, "p.created_at")
	args = append(args, limit)
	sql += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	sql += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		prod, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, prod)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadUnits(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Count cuenta las coincidencias del mismo predicado, sin paginar.
func (r *ProductRepo) Count(ctx context.Context, p query.Predicate) (int64, error) {
	clause, args, err := renderPredicate(p, productCols, nil)
	if err != nil {
		return 0, err
	}
	var total int64
	err = r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products p`+whereSQL(clause), args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// Update actualiza el producto; si unitIDs no es nil reemplaza las unidades.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product, unitIDs []int64) error {
	_, err := r.q.Exec(ctx, `
		UPDATE products SET name = $2, description = $3, price = $4, stock = $5, image_url = $6, category_id = $7, updated_at = now()
		WHERE id = $1`,
		product.ID, product.Name, product.Description, product.Price, product.Stock, product.ImageURL, product.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if unitIDs == nil {
		return nil
	}
	return r.setUnits(ctx, product.ID, unitIDs)
}

// Delete elimina el producto y sus unidades asignadas.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_units WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("delete product units: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// loadUnits carga las unidades de medida de todos los productos en una sola consulta.
func (r *ProductRepo) loadUnits(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]int64, len(products))
	byID := make(map[int64]*entity.Product, len(products))
	for i, p := range products {
		ids[i] = p.ID
		byID[p.ID] = p
	}
	rows, err := r.q.Query(ctx, `
		SELECT pu.product_id, um.id, um.name, um.description
		FROM product_units pu
		JOIN unit_measurements um ON um.id = pu.unit_measurement_id
		WHERE pu.product_id = ANY($1)
		ORDER BY um.name`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("load product units: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID int64
		var um entity.UnitMeasurement
		if err := rows.Scan(&productID, &um.ID, &um.Name, &um.Description); err != nil {
			return fmt.Errorf("scan product unit: %w", err)
		}
		if p, ok := byID[productID]; ok {
			p.Units = append(p.Units, um)
		}
	}
	return rows.Err()
}
