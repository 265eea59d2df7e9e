package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/clientes-pro/internal/domain"
	"github.com/tu-usuario/clientes-pro/internal/domain/entity"
	"github.com/tu-usuario/clientes-pro/internal/domain/repository"
)

var _ repository.ExecutiveRepository = (*ExecutiveRepo)(nil)

// ExecutiveRepo implementación de ExecutiveRepository (usable con pool o tx).
type ExecutiveRepo struct {
	q Querier
}

// NewExecutiveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExecutiveRepository(q Querier) *ExecutiveRepo {
	return &ExecutiveRepo{q: q}
}

// Create persiste un nuevo ejecutivo.
func (r *ExecutiveRepo) Create(exec *entity.Executive) error {
	query := `
		INSERT INTO executives (id, name, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		exec.ID, exec.Name, exec.Phone, exec.Email, exec.Status, exec.CreatedAt, exec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert executive: %w", err)
	}
	return nil
}

// GetByID obtiene un ejecutivo por ID.
func (r *ExecutiveRepo) GetByID(id string) (*entity.Executive, error) {
	query := `
		SELECT id, name, phone, email, status, created_at, updated_at
		FROM executives WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get executive")
}

// GetByName obtiene un ejecutivo por nombre exacto.
func (r *ExecutiveRepo) GetByName(name string) (*entity.Executive, error) {
	query := `
		SELECT id, name, phone, email, status, created_at, updated_at
		FROM executives WHERE name = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get executive by name")
}

func (r *ExecutiveRepo) scanOne(row pgx.Row, op string) (*entity.Executive, error) {
	var e entity.Executive
	err := row.Scan(&e.ID, &e.Name, &e.Phone, &e.Email, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}

// List lista ejecutivos con paginación.
func (r *ExecutiveRepo) List(limit, offset int) ([]*entity.Executive, error) {
	query := `
		SELECT id, name, phone, email, status, created_at, updated_at
		FROM executives ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list executives: %w", err)
	}
	defer rows.Close()
	var list []*entity.Executive
	for rows.Next() {
		var e entity.Executive
		if err := rows.Scan(&e.ID, &e.Name, &e.Phone, &e.Email, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan executive: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un ejecutivo.
func (r *ExecutiveRepo) Update(exec *entity.Executive) error {
	query := `
		UPDATE executives SET name = $2, phone = $3, email = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		exec.ID, exec.Name, exec.Phone, exec.Email, exec.Status, exec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update executive: %w", err)
	}
	return nil
}

// Delete elimina un ejecutivo por ID.
func (r *ExecutiveRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM executives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete executive: %w", err)
	}
	return nil
}
