package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
)

var _ repository.UnitMeasurementRepository = (*UnitMeasurementRepo)(nil)

// UnitMeasurementRepo implementación del puerto UnitMeasurementRepository sobre PostgreSQL.
type UnitMeasurementRepo struct {
	q Querier
}

// NewUnitMeasurementRepository construye el adaptador de persistencia para unidades de medida.
func NewUnitMeasurementRepository(q Querier) *UnitMeasurementRepo {
	return &UnitMeasurementRepo{q: q}
}

// Create persiste una nueva unidad de medida.
func (r *UnitMeasurementRepo) Create(ctx context.Context, unit *entity.UnitMeasurement) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO unit_measurements (name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id`,
		unit.Name, unit.Description, unit.CreatedAt,
	).Scan(&unit.ID)
	if err != nil {
		return fmt.Errorf("insert unit measurement: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad de medida por ID.
func (r *UnitMeasurementRepo) GetByID(ctx context.Context, id int64) (*entity.UnitMeasurement, error) {
	var um entity.UnitMeasurement
	err := r.q.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM unit_measurements WHERE id = $1`, id,
	).Scan(&um.ID, &um.Name, &um.Description, &um.CreatedAt, &um.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit measurement: %w", err)
	}
	return &um, nil
}

// List devuelve todas las unidades de medida.
func (r *UnitMeasurementRepo) List(ctx context.Context) ([]*entity.UnitMeasurement, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, description, created_at, updated_at FROM unit_measurements ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list unit measurements: %w", err)
	}
	defer rows.Close()
	var list []*entity.UnitMeasurement
	for rows.Next() {
		var um entity.UnitMeasurement
		if err := rows.Scan(&um.ID, &um.Name, &um.Description, &um.CreatedAt, &um.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit measurement: %w", err)
		}
		list = append(list, &um)
	}
	return list, rows.Err()
}

// Update actualiza una unidad de medida existente.
func (r *UnitMeasurementRepo) Update(ctx context.Context, unit *entity.UnitMeasurement) error {
	_, err := r.q.Exec(ctx,
		`UPDATE unit_measurements SET name = $2, description = $3, updated_at = now() WHERE id = $1`,
		unit.ID, unit.Name, unit.Description,
	)
	if err != nil {
		return fmt.Errorf("update unit measurement: %w", err)
	}
	return nil
}

// Delete elimina una unidad de medida por ID.
func (r *UnitMeasurementRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM unit_measurements WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete unit measurement: %w", err)
	}
	return nil
}
