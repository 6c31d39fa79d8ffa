package client

import (
	"context"
	"time"

	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

type Repository interface {
	Create(ctx context.Context, scope tenant.Scope, cl *Client) (*Client, error)
	List(ctx context.Context, scope tenant.Scope) ([]ClientWithPlan, error)
	GetByID(ctx context.Context, scope tenant.Scope, id int) (*ClientWithPlan, error)
	UpdateProfile(ctx context.Context, scope tenant.Scope, id int, p Profile) error
	Renew(ctx context.Context, scope tenant.Scope, id, planID int, start, end time.Time, planAmount float64) error
	Delete(ctx context.Context, scope tenant.Scope, id int) error
	FilterByStatus(ctx context.Context, scope tenant.Scope, status Status) ([]ClientWithPlan, error)
	BirthdaysToday(ctx context.Context, scope tenant.Scope) ([]ClientWithPlan, error)
}
