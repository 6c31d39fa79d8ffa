package client

import "time"

// Client is a gym member. end_date, total_paid and balance_due are derived
// fields owned by the membership engine and the billing ledger; profile
// updates never touch them.
type Client struct {
	ID          int        `db:"id" json:"id"`
	GymID       int        `db:"gym_id" json:"gym_id"`
	Name        string     `db:"name" json:"name"`
	Phone       string     `db:"phone" json:"phone"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender      string     `db:"gender" json:"gender"`
	BloodGroup  string     `db:"blood_group" json:"blood_group"`
	Address     string     `db:"address" json:"address"`
	Notes       string     `db:"notes" json:"notes"`
	Email       string     `db:"email" json:"email"`
	Height      float64    `db:"height" json:"height"`
	Weight      float64    `db:"weight" json:"weight"`
	PlanID      int        `db:"plan_id" json:"plan_id"`
	StartDate   time.Time  `db:"start_date" json:"start_date"`
	EndDate     time.Time  `db:"end_date" json:"end_date"`
	TotalPaid   float64    `db:"total_paid" json:"total_paid"`
	BalanceDue  float64    `db:"balance_due" json:"balance_due"`
	Cycle       int        `db:"cycle" json:"cycle"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

type ClientWithPlan struct {
	Client
	PlanName   string  `db:"plan_name" json:"plan_name"`
	PlanDays   int     `db:"plan_days" json:"plan_days"`
	PlanAmount float64 `db:"plan_amount" json:"plan_amount"`
	Status     Status  `db:"-" json:"status"`
}

type CreateClientRequest struct {
	Name        string  `json:"name" binding:"required"`
	Phone       string  `json:"phone"`
	DateOfBirth string  `json:"date_of_birth"`
	Gender      string  `json:"gender"`
	BloodGroup  string  `json:"blood_group"`
	Address     string  `json:"address"`
	Notes       string  `json:"notes"`
	Email       string  `json:"email"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	PlanID      int     `json:"plan_id" binding:"required"`
	StartDate   string  `json:"start_date"`
}

// UpdateProfileRequest deliberately has no plan, start date or billing
// fields; renewals are a separate operation.
type UpdateProfileRequest struct {
	Name        string  `json:"name" binding:"required"`
	Phone       string  `json:"phone"`
	DateOfBirth string  `json:"date_of_birth"`
	Gender      string  `json:"gender"`
	BloodGroup  string  `json:"blood_group"`
	Address     string  `json:"address"`
	Notes       string  `json:"notes"`
	Email       string  `json:"email"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
}

type RenewRequest struct {
	PlanID    int    `json:"plan_id" binding:"required"`
	StartDate string `json:"start_date"`
}

type CreateClientResponse struct {
	ID      int    `json:"id"`
	EndDate string `json:"end_date"`
}

type RenewResponse struct {
	EndDate    string  `json:"end_date"`
	TotalPaid  float64 `json:"total_paid"`
	BalanceDue float64 `json:"balance_due"`
}

// Profile carries the parsed profile fields down to storage.
type Profile struct {
	Name        string
	Phone       string
	DateOfBirth *time.Time
	Gender      string
	BloodGroup  string
	Address     string
	Notes       string
	Email       string
	Height      float64
	Weight      float64
}
