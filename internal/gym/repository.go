package gym

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create inserts the gym and the owner membership in one transaction: a gym
// without an owner row would be unreachable by anyone.
func (r *repository) Create(ctx context.Context, req CreateGymRequest, ownerID int) (*Gym, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var gym Gym
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO gyms (name, description, address, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, address, phone, email, created_at, updated_at
	`, req.Name, req.Description, req.Address, req.Phone, req.Email).StructScan(&gym)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_gyms (user_id, gym_id, role, is_owner)
		VALUES ($1, $2, 'admin', TRUE)
	`, ownerID, gym.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &gym, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Gym, error) {
	var gym Gym
	err := r.db.GetContext(ctx, &gym, `
		SELECT id, name, description, address, phone, email, created_at, updated_at
		FROM gyms
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	return &gym, nil
}

func (r *repository) ListForUser(ctx context.Context, userID int) ([]Gym, error) {
	var gyms []Gym
	err := r.db.SelectContext(ctx, &gyms, `
		SELECT g.id, g.name, g.description, g.address, g.phone, g.email, g.created_at, g.updated_at
		FROM gyms g
		JOIN user_gyms ug ON g.id = ug.gym_id
		WHERE ug.user_id = $1
		ORDER BY ug.is_owner DESC, g.name
	`, userID)
	if err != nil {
		return nil, err
	}

	return gyms, nil
}

func (r *repository) IsMember(ctx context.Context, userID, gymID int) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS(SELECT 1 FROM user_gyms WHERE user_id = $1 AND gym_id = $2)
	`, userID, gymID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// ResolveActiveGym picks the gym a fresh session starts in: owned gyms first,
// then alphabetical. Nil means the user is still onboarding.
func (r *repository) ResolveActiveGym(ctx context.Context, userID int) (*int, error) {
	var gymID int
	err := r.db.GetContext(ctx, &gymID, `
		SELECT g.id
		FROM gyms g
		JOIN user_gyms ug ON g.id = ug.gym_id
		WHERE ug.user_id = $1
		ORDER BY ug.is_owner DESC, g.name
		LIMIT 1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &gymID, nil
}
