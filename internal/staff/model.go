package staff

import "time"

type Staff struct {
	ID        int       `db:"id" json:"id"`
	GymID     int       `db:"gym_id" json:"gym_id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	Role      string    `db:"role" json:"role"`
	Salary    float64   `db:"salary" json:"salary"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type StaffRequest struct {
	Name   string  `json:"name" binding:"required"`
	Phone  string  `json:"phone"`
	Email  string  `json:"email"`
	Role   string  `json:"role"`
	Salary float64 `json:"salary"`
}
