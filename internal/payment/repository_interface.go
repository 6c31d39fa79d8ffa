package payment

import (
	"context"
	"time"

	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

type Repository interface {
	Record(ctx context.Context, scope tenant.Scope, clientID int, amount float64, mode, notes string, paidAt time.Time) (*Payment, *LedgerState, error)
	Update(ctx context.Context, scope tenant.Scope, paymentID int, amount float64, mode, notes string, paidAt time.Time) (*LedgerState, error)
	Delete(ctx context.Context, scope tenant.Scope, paymentID int) (*LedgerState, error)
	List(ctx context.Context, scope tenant.Scope) ([]PaymentWithClient, error)
	ListForClient(ctx context.Context, scope tenant.Scope, clientID int) ([]Payment, error)
}
