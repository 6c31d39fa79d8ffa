package lead

import "time"

// Lead is a walk-in or enquiry that has not enrolled yet.
type Lead struct {
	ID        int       `db:"id" json:"id"`
	GymID     int       `db:"gym_id" json:"gym_id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	Source    string    `db:"source" json:"source"`
	Status    string    `db:"status" json:"status"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type LeadRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Source string `json:"source"`
	Status string `json:"status" binding:"omitempty,oneof=new contacted converted lost"`
	Notes  string `json:"notes"`
}
