package payment

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

// Every ledger mutation runs in one transaction: lock the client row, apply
// the payment change, recompute the running totals from the payment rows of
// the current cycle and write them back. The stored totals are never adjusted
// by deltas, so a lost or repeated adjustment cannot drift them.

const lockClientByID = `SELECT c.id, c.cycle, c.name, c.email, p.amount AS plan_amount FROM clients c JOIN plans p ON c.plan_id = p.id WHERE c.id = $1 AND c.gym_id = $2 FOR UPDATE OF c`

const lockClientByPayment = `SELECT c.id, c.cycle, c.name, c.email, p.amount AS plan_amount FROM payments pm JOIN clients c ON pm.client_id = c.id JOIN plans p ON c.plan_id = p.id WHERE pm.id = $1 AND pm.gym_id = $2 FOR UPDATE OF c`

const sumCurrentCycle = `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE client_id = $1 AND cycle = $2`

const writeBackTotals = `UPDATE clients SET total_paid = $1, balance_due = $2, updated_at = NOW() WHERE id = $3`

type lockedClient struct {
	ID         int     `db:"id"`
	Cycle      int     `db:"cycle"`
	Name       string  `db:"name"`
	Email      string  `db:"email"`
	PlanAmount float64 `db:"plan_amount"`
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) Record(ctx context.Context, scope tenant.Scope, clientID int, amount float64, mode, notes string, paidAt time.Time) (*Payment, *LedgerState, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	var cl lockedClient
	if err := tx.GetContext(ctx, &cl, lockClientByID, clientID, scope.GymID()); err != nil {
		return nil, nil, err
	}

	p := &Payment{
		GymID:       scope.GymID(),
		ClientID:    cl.ID,
		Amount:      amount,
		Mode:        mode,
		Notes:       notes,
		PaymentDate: paidAt,
		Cycle:       cl.Cycle,
	}
	insert := `INSERT INTO payments (gym_id, client_id, amount, mode, notes, payment_date, cycle) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	if err := tx.QueryRowxContext(ctx, insert,
		p.GymID, p.ClientID, p.Amount, p.Mode, p.Notes, p.PaymentDate, p.Cycle,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, nil, err
	}

	state, err := recompute(ctx, tx, cl)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return p, state, nil
}

func (r *repository) Update(ctx context.Context, scope tenant.Scope, paymentID int, amount float64, mode, notes string, paidAt time.Time) (*LedgerState, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var cl lockedClient
	if err := tx.GetContext(ctx, &cl, lockClientByPayment, paymentID, scope.GymID()); err != nil {
		return nil, err
	}

	update := `UPDATE payments SET amount = $1, mode = $2, notes = $3, payment_date = $4, updated_at = NOW() WHERE id = $5`
	if _, err := tx.ExecContext(ctx, update, amount, mode, notes, paidAt, paymentID); err != nil {
		return nil, err
	}

	state, err := recompute(ctx, tx, cl)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return state, nil
}

func (r *repository) Delete(ctx context.Context, scope tenant.Scope, paymentID int) (*LedgerState, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var cl lockedClient
	if err := tx.GetContext(ctx, &cl, lockClientByPayment, paymentID, scope.GymID()); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, paymentID); err != nil {
		return nil, err
	}

	state, err := recompute(ctx, tx, cl)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return state, nil
}

// recompute sums the current cycle's payments and writes the totals back to
// the locked client row. Entries stamped with an earlier cycle are excluded,
// so editing a pre-renewal payment leaves the live balance untouched.
func recompute(ctx context.Context, tx *sqlx.Tx, cl lockedClient) (*LedgerState, error) {
	var total float64
	if err := tx.GetContext(ctx, &total, sumCurrentCycle, cl.ID, cl.Cycle); err != nil {
		return nil, err
	}

	balance := cl.PlanAmount - total
	if _, err := tx.ExecContext(ctx, writeBackTotals, total, balance, cl.ID); err != nil {
		return nil, err
	}

	return &LedgerState{
		TotalPaid:   total,
		BalanceDue:  balance,
		PlanAmount:  cl.PlanAmount,
		ClientName:  cl.Name,
		ClientEmail: cl.Email,
	}, nil
}

func (r *repository) List(ctx context.Context, scope tenant.Scope) ([]PaymentWithClient, error) {
	query := `SELECT pm.id, pm.gym_id, pm.client_id, pm.amount, pm.mode, pm.notes, pm.payment_date, pm.cycle, pm.created_at, pm.updated_at, c.name AS client_name FROM payments pm JOIN clients c ON pm.client_id = c.id WHERE pm.gym_id = $1 ORDER BY pm.payment_date DESC, pm.id DESC`

	payments := []PaymentWithClient{}
	if err := r.db.SelectContext(ctx, &payments, query, scope.GymID()); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repository) ListForClient(ctx context.Context, scope tenant.Scope, clientID int) ([]Payment, error) {
	query := `SELECT id, gym_id, client_id, amount, mode, notes, payment_date, cycle, created_at, updated_at FROM payments WHERE client_id = $1 AND gym_id = $2 ORDER BY payment_date DESC, id DESC`

	payments := []Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, clientID, scope.GymID()); err != nil {
		return nil, err
	}
	return payments, nil
}
