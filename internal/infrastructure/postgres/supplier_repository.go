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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// supplierCols mapea campos de la API a columnas de suppliers.
var supplierCols = map[string]string{
	"id":          "id",
	"name":        "name",
	"companyName": "company_name",
	"contactName": "contact_name",
	"email":       "email",
	"createdAt":   "created_at",
}

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierSelect = `
	SELECT id, name, company_name, contact_name, phone, email, address, created_at, updated_at
	FROM suppliers`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.CompanyName, &s.ContactName,
		&s.Phone, &s.Email, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO suppliers (name, company_name, contact_name, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id`,
		supplier.Name, supplier.CompanyName, supplier.ContactName,
		supplier.Phone, supplier.Email, supplier.Address, supplier.CreatedAt,
	).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, supplierSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// List devuelve la página de proveedores que satisface el predicado.
func (r *SupplierRepo) List(ctx context.Context, p query.Predicate, sort query.Sort, limit, offset int) ([]*entity.Supplier, error) {
	where, args, err := renderPredicate(p, supplierCols, nil)
	if err != nil {
		return nil, err
	}
	args = append(args, limit)
	limitArg := len(args)
	args = append(args, offset)
	offsetArg := len(args)

	sql := supplierSelect + whereSQL(where) + orderBySQL(sort, supplierCols, "created_at") +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", limitArg, offsetArg)
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

// Count devuelve el total de proveedores que satisface el predicado.
func (r *SupplierRepo) Count(ctx context.Context, p query.Predicate) (int64, error) {
	where, args, err := renderPredicate(p, supplierCols, nil)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM suppliers`+whereSQL(where), args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return total, nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	_, err := r.q.Exec(ctx, `
		UPDATE suppliers
		SET name = $2, company_name = $3, contact_name = $4, phone = $5,
		    email = $6, address = $7, updated_at = now()
		WHERE id = $1`,
		supplier.ID, supplier.Name, supplier.CompanyName, supplier.ContactName,
		supplier.Phone, supplier.Email, supplier.Address,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
