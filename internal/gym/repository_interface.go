package gym

import "context"

type Repository interface {
	Create(ctx context.Context, req CreateGymRequest, ownerID int) (*Gym, error)
	GetByID(ctx context.Context, id int) (*Gym, error)
	ListForUser(ctx context.Context, userID int) ([]Gym, error)
	IsMember(ctx context.Context, userID, gymID int) (bool, error)
	ResolveActiveGym(ctx context.Context, userID int) (*int, error)
}
