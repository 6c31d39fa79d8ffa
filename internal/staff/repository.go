package staff

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

type Repository interface {
	Create(ctx context.Context, scope tenant.Scope, req StaffRequest) (*Staff, error)
	List(ctx context.Context, scope tenant.Scope) ([]Staff, error)
	GetByID(ctx context.Context, scope tenant.Scope, id int) (*Staff, error)
	Update(ctx context.Context, scope tenant.Scope, id int, req StaffRequest) error
	Delete(ctx context.Context, scope tenant.Scope, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) Create(ctx context.Context, scope tenant.Scope, req StaffRequest) (*Staff, error) {
	query := `INSERT INTO staff (gym_id, name, phone, email, role, salary) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, gym_id, name, phone, email, role, salary, created_at, updated_at`

	var s Staff
	err := r.db.GetContext(ctx, &s, query, scope.GymID(), req.Name, req.Phone, req.Email, req.Role, req.Salary)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) List(ctx context.Context, scope tenant.Scope) ([]Staff, error) {
	query := `SELECT id, gym_id, name, phone, email, role, salary, created_at, updated_at FROM staff WHERE gym_id = $1 ORDER BY name`

	staff := []Staff{}
	if err := r.db.SelectContext(ctx, &staff, query, scope.GymID()); err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *repository) GetByID(ctx context.Context, scope tenant.Scope, id int) (*Staff, error) {
	query := `SELECT id, gym_id, name, phone, email, role, salary, created_at, updated_at FROM staff WHERE id = $1 AND gym_id = $2`

	var s Staff
	if err := r.db.GetContext(ctx, &s, query, id, scope.GymID()); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, scope tenant.Scope, id int, req StaffRequest) error {
	query := `UPDATE staff SET name = $1, phone = $2, email = $3, role = $4, salary = $5, updated_at = NOW() WHERE id = $6 AND gym_id = $7`

	result, err := r.db.ExecContext(ctx, query, req.Name, req.Phone, req.Email, req.Role, req.Salary, id, scope.GymID())
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, scope tenant.Scope, id int) error {
	query := `DELETE FROM staff WHERE id = $1 AND gym_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, scope.GymID())
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
