package client

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

const selectClientWithPlan = `SELECT c.id, c.gym_id, c.name, c.phone, c.date_of_birth, c.gender, c.blood_group, c.address, c.notes, c.email, c.height, c.weight, c.plan_id, c.start_date, c.end_date, c.total_paid, c.balance_due, c.cycle, c.created_at, c.updated_at, p.name AS plan_name, p.days AS plan_days, p.amount AS plan_amount FROM clients c JOIN plans p ON c.plan_id = p.id`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) Create(ctx context.Context, scope tenant.Scope, cl *Client) (*Client, error) {
	query := `INSERT INTO clients (gym_id, name, phone, date_of_birth, gender, blood_group, address, notes, email, height, weight, plan_id, start_date, end_date, total_paid, balance_due, cycle)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at`

	cl.GymID = scope.GymID()
	err := r.db.QueryRowxContext(ctx, query,
		cl.GymID, cl.Name, cl.Phone, cl.DateOfBirth, cl.Gender, cl.BloodGroup,
		cl.Address, cl.Notes, cl.Email, cl.Height, cl.Weight,
		cl.PlanID, cl.StartDate, cl.EndDate, cl.TotalPaid, cl.BalanceDue, cl.Cycle,
	).Scan(&cl.ID, &cl.CreatedAt, &cl.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return cl, nil
}

func (r *repository) List(ctx context.Context, scope tenant.Scope) ([]ClientWithPlan, error) {
	query := selectClientWithPlan + ` WHERE c.gym_id = $1 ORDER BY c.id`

	clients := []ClientWithPlan{}
	if err := r.db.SelectContext(ctx, &clients, query, scope.GymID()); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *repository) GetByID(ctx context.Context, scope tenant.Scope, id int) (*ClientWithPlan, error) {
	query := selectClientWithPlan + ` WHERE c.id = $1 AND c.gym_id = $2`

	var cl ClientWithPlan
	if err := r.db.GetContext(ctx, &cl, query, id, scope.GymID()); err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *repository) UpdateProfile(ctx context.Context, scope tenant.Scope, id int, p Profile) error {
	query := `UPDATE clients SET name = $1, phone = $2, date_of_birth = $3, gender = $4, blood_group = $5, address = $6, notes = $7, email = $8, height = $9, weight = $10, updated_at = NOW() WHERE id = $11 AND gym_id = $12`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Phone, p.DateOfBirth, p.Gender, p.BloodGroup,
		p.Address, p.Notes, p.Email, p.Height, p.Weight,
		id, scope.GymID())
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Renew starts a fresh billing cycle: the paid total is zeroed, the balance
// is reset to the new plan's full amount and the cycle counter moves on so
// payments from earlier cycles stay out of the new balance.
func (r *repository) Renew(ctx context.Context, scope tenant.Scope, id, planID int, start, end time.Time, planAmount float64) error {
	query := `UPDATE clients SET plan_id = $1, start_date = $2, end_date = $3, total_paid = 0, balance_due = $4, cycle = cycle + 1, updated_at = NOW() WHERE id = $5 AND gym_id = $6`

	result, err := r.db.ExecContext(ctx, query, planID, start, end, planAmount, id, scope.GymID())
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *repository) Delete(ctx context.Context, scope tenant.Scope, id int) error {
	query := `DELETE FROM clients WHERE id = $1 AND gym_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, scope.GymID())
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *repository) FilterByStatus(ctx context.Context, scope tenant.Scope, status Status) ([]ClientWithPlan, error) {
	var cond string
	switch status {
	case StatusActive:
		cond = `c.end_date >= CURRENT_DATE`
	case StatusExpiring:
		cond = `c.end_date BETWEEN CURRENT_DATE AND CURRENT_DATE + INTERVAL '10 days'`
	case StatusExpired:
		cond = `c.end_date < CURRENT_DATE AND c.end_date >= CURRENT_DATE - INTERVAL '30 days'`
	default:
		return nil, sql.ErrNoRows
	}

	query := selectClientWithPlan + ` WHERE c.gym_id = $1 AND ` + cond + ` ORDER BY c.end_date`

	clients := []ClientWithPlan{}
	if err := r.db.SelectContext(ctx, &clients, query, scope.GymID()); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *repository) BirthdaysToday(ctx context.Context, scope tenant.Scope) ([]ClientWithPlan, error) {
	query := selectClientWithPlan + ` WHERE c.gym_id = $1 AND c.date_of_birth IS NOT NULL AND EXTRACT(MONTH FROM c.date_of_birth) = EXTRACT(MONTH FROM CURRENT_DATE) AND EXTRACT(DAY FROM c.date_of_birth) = EXTRACT(DAY FROM CURRENT_DATE) ORDER BY c.name`

	clients := []ClientWithPlan{}
	if err := r.db.SelectContext(ctx, &clients, query, scope.GymID()); err != nil {
		return nil, err
	}
	return clients, nil
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
