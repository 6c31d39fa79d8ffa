package payment

import "time"

// Payment is one ledger entry against a client. The cycle it was recorded in
// is stamped at insert time; renewals move the client to a new cycle and the
// balance only ever sums entries from the current one.
type Payment struct {
	ID          int       `db:"id" json:"id"`
	GymID       int       `db:"gym_id" json:"gym_id"`
	ClientID    int       `db:"client_id" json:"client_id"`
	Amount      float64   `db:"amount" json:"amount"`
	Mode        string    `db:"mode" json:"mode"`
	Notes       string    `db:"notes" json:"notes"`
	PaymentDate time.Time `db:"payment_date" json:"payment_date"`
	Cycle       int       `db:"cycle" json:"cycle"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type PaymentWithClient struct {
	Payment
	ClientName string `db:"client_name" json:"client_name"`
}

// LedgerState is the client's recomputed balance after a ledger mutation.
type LedgerState struct {
	TotalPaid   float64 `json:"total_paid"`
	BalanceDue  float64 `json:"balance_due"`
	PlanAmount  float64 `json:"plan_amount"`
	ClientName  string  `json:"-"`
	ClientEmail string  `json:"-"`
}

type RecordPaymentRequest struct {
	ClientID    int     `json:"client_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Mode        string  `json:"mode"`
	Notes       string  `json:"notes"`
	PaymentDate string  `json:"payment_date"`
}

type UpdatePaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Mode        string  `json:"mode"`
	Notes       string  `json:"notes"`
	PaymentDate string  `json:"payment_date"`
}

type RecordPaymentResponse struct {
	Payment     *Payment `json:"payment"`
	TotalPaid   float64  `json:"total_paid"`
	BalanceDue  float64  `json:"balance_due"`
	PlanAmount  float64  `json:"plan_amount"`
	Overpayment bool     `json:"overpayment"`
}

type LedgerResponse struct {
	TotalPaid   float64 `json:"total_paid"`
	BalanceDue  float64 `json:"balance_due"`
	PlanAmount  float64 `json:"plan_amount"`
	Overpayment bool    `json:"overpayment"`
}
