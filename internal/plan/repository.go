package plan

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, scope tenant.Scope, name string, days int, amount float64) (*Plan, error) {
	query := `
		INSERT INTO plans (gym_id, name, days, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, gym_id, name, days, amount, created_at, updated_at
	`

	var p Plan
	err := r.db.GetContext(ctx, &p, query, scope.GymID(), name, days, amount)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) List(ctx context.Context, scope tenant.Scope) ([]Plan, error) {
	query := `
		SELECT id, gym_id, name, days, amount, created_at, updated_at
		FROM plans
		WHERE gym_id = $1
		ORDER BY id
	`

	var plans []Plan
	err := r.db.SelectContext(ctx, &plans, query, scope.GymID())
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *repository) GetByID(ctx context.Context, scope tenant.Scope, id int) (*Plan, error) {
	query := `
		SELECT id, gym_id, name, days, amount, created_at, updated_at
		FROM plans
		WHERE id = $1 AND gym_id = $2
	`

	var p Plan
	err := r.db.GetContext(ctx, &p, query, id, scope.GymID())
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Update(ctx context.Context, scope tenant.Scope, id int, name string, days int, amount float64) error {
	query := `
		UPDATE plans
		SET name = $1, days = $2, amount = $3, updated_at = NOW()
		WHERE id = $4 AND gym_id = $5
	`

	result, err := r.db.ExecContext(ctx, query, name, days, amount, id, scope.GymID())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, scope tenant.Scope, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = $1 AND gym_id = $2`, id, scope.GymID())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
