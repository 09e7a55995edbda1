package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
)

var _ repository.AreaRepository = (*AreaRepo)(nil)

// AreaRepo implementación del puerto AreaRepository sobre PostgreSQL (usable con pool o tx).
type AreaRepo struct {
	q Querier
}

// NewAreaRepository construye el adaptador de persistencia para áreas. Pasar pool o tx (Querier).
func NewAreaRepository(q Querier) *AreaRepo {
	return &AreaRepo{q: q}
}

const areaSelect = `
	SELECT a.id, a.name, a.company_id, a.created_at, a.updated_at,
	       c.id, c.name, c.color
	FROM areas a
	JOIN companies c ON c.id = a.company_id`

func scanArea(row pgx.Row) (*entity.Area, error) {
	var a entity.Area
	var c entity.Company
	err := row.Scan(&a.ID, &a.Name, &a.CompanyID, &a.CreatedAt, &a.UpdatedAt, &c.ID, &c.Name, &c.Color)
	if err != nil {
		return nil, err
	}
	a.Company = &c
	return &a, nil
}

// Create persiste una nueva área.
func (r *AreaRepo) Create(ctx context.Context, area *entity.Area) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO areas (name, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id`,
		area.Name, area.CompanyID, area.CreatedAt,
	).Scan(&area.ID)
	if err != nil {
		return fmt.Errorf("insert area: %w", err)
	}
	return nil
}

// GetByID obtiene un área con su empresa.
func (r *AreaRepo) GetByID(ctx context.Context, id int64) (*entity.Area, error) {
	a, err := scanArea(r.q.QueryRow(ctx, areaSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get area: %w", err)
	}
	return a, nil
}

// GetByNameAndCompany obtiene un área por nombre dentro de una empresa.
func (r *AreaRepo) GetByNameAndCompany(ctx context.Context, name string, companyID int64) (*entity.Area, error) {
	a, err := scanArea(r.q.QueryRow(ctx, areaSelect+` WHERE a.name = $1 AND a.company_id = $2`, name, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get area by name: %w", err)
	}
	return a, nil
}

// List devuelve todas las áreas con su empresa.
func (r *AreaRepo) List(ctx context.Context) ([]*entity.Area, error) {
	return r.list(ctx, areaSelect+` ORDER BY a.name`)
}

// ListByCompany devuelve las áreas de una empresa.
func (r *AreaRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Area, error) {
	return r.list(ctx, areaSelect+` WHERE a.company_id = $1 ORDER BY a.name`, companyID)
}

func (r *AreaRepo) list(ctx context.Context, sql string, args ...any) ([]*entity.Area, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Area
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Update actualiza un área existente.
func (r *AreaRepo) Update(ctx context.Context, area *entity.Area) error {
	_, err := r.q.Exec(ctx,
		`UPDATE areas SET name = $2, company_id = $3, updated_at = now() WHERE id = $1`,
		area.ID, area.Name, area.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("update area: %w", err)
	}
	return nil
}

// Delete elimina un área por ID.
func (r *AreaRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM areas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete area: %w", err)
	}
	return nil
}
