package plan

import (
	"context"

	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

type Repository interface {
	Create(ctx context.Context, scope tenant.Scope, name string, days int, amount float64) (*Plan, error)
	List(ctx context.Context, scope tenant.Scope) ([]Plan, error)
	GetByID(ctx context.Context, scope tenant.Scope, id int) (*Plan, error)
	Update(ctx context.Context, scope tenant.Scope, id int, name string, days int, amount float64) error
	Delete(ctx context.Context, scope tenant.Scope, id int) error
}
