package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pedidos-pro/internal/domain"
	"github.com/tu-usuario/pedidos-pro/internal/domain/entity"
	"github.com/tu-usuario/pedidos-pro/internal/domain/query"
	"github.com/tu-usuario/pedidos-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// userCols mapea los campos de API de User a columnas (alias u = users).
var userCols = map[string]string{
	"id":        "u.id",
	"firstName": "u.first_name",
	"lastName":  "u.last_name",
	"email":     "u.email",
	"phone":     "u.phone",
	"role":      "u.role",
	"createdAt": "u.created_at",
	"updatedAt": "u.updated_at",
}

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userSelect = `
	SELECT u.id, u.first_name, u.last_name, u.email, u.phone, u.address, u.role, u.password_hash, u.created_at, u.updated_at
	FROM users u`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.Address, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste el usuario y sus áreas asignadas.
func (r *UserRepo) Create(ctx context.Context, user *entity.User, areaIDs []int64) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, phone, address, role, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id`,
		user.FirstName, user.LastName, user.Email, user.Phone, user.Address, user.Role, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return r.setAreas(ctx, user.ID, areaIDs)
}

func (r *UserRepo) setAreas(ctx context.Context, userID int64, areaIDs []int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM user_areas WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear user areas: %w", err)
	}
	for _, areaID := range areaIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO user_areas (user_id, area_id) VALUES ($1, $2)`, userID, areaID); err != nil {
			return fmt.Errorf("insert user area: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un usuario con sus áreas.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := r.loadAreas(ctx, []*entity.User{u}); err != nil {
		return nil, err
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email (para login). Sin áreas.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, userSelect+` WHERE u.email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// List devuelve una página de usuarios según predicado y orden, con áreas cargadas.
func (r *UserRepo) List(ctx context.Context, p query.Predicate, sort query.Sort, limit, offset int) ([]*entity.User, error) {
	clause, args, err := renderPredicate(p, userCols, nil)
	if err != nil {
		return nil, err
	}
	sql := userSelect + whereSQL(clause) + orderBySQL(sort, userCols, "u.created_at")
	args = append(args, limit)
	sql += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	sql += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadAreas(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Count cuenta las coincidencias del mismo predicado, sin paginar.
func (r *UserRepo) Count(ctx context.Context, p query.Predicate) (int64, error) {
	clause, args, err := renderPredicate(p, userCols, nil)
	if err != nil {
		return 0, err
	}
	var total int64
	err = r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users u`+whereSQL(clause), args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

// Update actualiza el usuario; si areaIDs no es nil reemplaza las áreas asignadas.
func (r *UserRepo) Update(ctx context.Context, user *entity.User, areaIDs []int64) error {
	_, err := r.q.Exec(ctx, `
		UPDATE users SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6, role = $7, password_hash = $8, updated_at = now()
		WHERE id = $1`,
		user.ID, user.FirstName, user.LastName, user.Email, user.Phone, user.Address, user.Role, user.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	if areaIDs == nil {
		return nil
	}
	return r.setAreas(ctx, user.ID, areaIDs)
}

// UpdatePassword actualiza solo el hash de contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Delete elimina el usuario y sus asignaciones de área.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM user_areas WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user areas: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// loadAreas carga las áreas de todos los usuarios en una sola consulta.
func (r *UserRepo) loadAreas(ctx context.Context, users []*entity.User) error {
	if len(users) == 0 {
		return nil
	}
	ids := make([]int64, len(users))
	byID := make(map[int64]*entity.User, len(users))
	for i, u := range users {
		ids[i] = u.ID
		byID[u.ID] = u
	}
	rows, err := r.q.Query(ctx, `
		SELECT ua.user_id, a.id, a.name, a.company_id, a.created_at, a.updated_at
		FROM user_areas ua
		JOIN areas a ON a.id = ua.area_id
		WHERE ua.user_id = ANY($1)
		ORDER BY a.name`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("load user areas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID int64
		var a entity.Area
		if err := rows.Scan(&userID, &a.ID, &a.Name, &a.CompanyID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return fmt.Errorf("scan user area: %w", err)
		}
		if u, ok := byID[userID]; ok {
			u.Areas = append(u.Areas, a)
		}
	}
	return rows.Err()
}
