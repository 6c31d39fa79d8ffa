package plan

import "time"

// Plan is a subscription template. Clients copy its duration and price at
// assignment time; editing a plan never touches already-enrolled clients.
type Plan struct {
	ID        int       `db:"id" json:"id"`
	GymID     int       `db:"gym_id" json:"gym_id"`
	Name      string    `db:"name" json:"name"`
	Days      int       `db:"days" json:"days"`
	Amount    float64   `db:"amount" json:"amount"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type PlanRequest struct {
	Name   string  `json:"name" binding:"required"`
	Days   int     `json:"days" binding:"required,min=1"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
