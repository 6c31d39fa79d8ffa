package lead

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

type Repository interface {
	Create(ctx context.Context, scope tenant.Scope, req LeadRequest) (*Lead, error)
	List(ctx context.Context, scope tenant.Scope) ([]Lead, error)
	GetByID(ctx context.Context, scope tenant.Scope, id int) (*Lead, error)
	Update(ctx context.Context, scope tenant.Scope, id int, req LeadRequest) error
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

func (r *repository) Create(ctx context.Context, scope tenant.Scope, req LeadRequest) (*Lead, error) {
	status := req.Status
	if status == "" {
		status = "new"
	}

	query := `INSERT INTO leads (gym_id, name, phone, email, source, status, notes) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, gym_id, name, phone, email, source, status, notes, created_at, updated_at`

	var l Lead
	err := r.db.GetContext(ctx, &l, query, scope.GymID(), req.Name, req.Phone, req.Email, req.Source, status, req.Notes)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) List(ctx context.Context, scope tenant.Scope) ([]Lead, error) {
	query := `SELECT id, gym_id, name, phone, email, source, status, notes, created_at, updated_at FROM leads WHERE gym_id = $1 ORDER BY created_at DESC`

	leads := []Lead{}
	if err := r.db.SelectContext(ctx, &leads, query, scope.GymID()); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *repository) GetByID(ctx context.Context, scope tenant.Scope, id int) (*Lead, error) {
	query := `SELECT id, gym_id, name, phone, email, source, status, notes, created_at, updated_at FROM leads WHERE id = $1 AND gym_id = $2`

	var l Lead
	if err := r.db.GetContext(ctx, &l, query, id, scope.GymID()); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, scope tenant.Scope, id int, req LeadRequest) error {
	query := `UPDATE leads SET name = $1, phone = $2, email = $3, source = $4, status = $5, notes = $6, updated_at = NOW() WHERE id = $7 AND gym_id = $8`

	result, err := r.db.ExecContext(ctx, query, req.Name, req.Phone, req.Email, req.Source, req.Status, req.Notes, id, scope.GymID())
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
	query := `DELETE FROM leads WHERE id = $1 AND gym_id = $2`

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
