package gym

import "time"

type Gym struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Address     string    `db:"address" json:"address"`
	Phone       string    `db:"phone" json:"phone"`
	Email       string    `db:"email" json:"email"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Membership links a credential to a gym it may act within.
type Membership struct {
	UserID  int    `db:"user_id" json:"user_id"`
	GymID   int    `db:"gym_id" json:"gym_id"`
	Role    string `db:"role" json:"role"`
	IsOwner bool   `db:"is_owner" json:"is_owner"`
}

type CreateGymRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

type SwitchGymRequest struct {
	GymID int `json:"gym_id" binding:"required"`
}

// TokenGrant is returned whenever an operation changes the active gym: the
// old token keeps its old claim, so the client must adopt the new pair.
type TokenGrant struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Gym          *Gym   `json:"gym"`
}
