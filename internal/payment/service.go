package payment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Freaksthegeeks/GymBook/internal/logger"
	"github.com/Freaksthegeeks/GymBook/internal/metrics"
	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

const dateFormat = "2006-01-02"

var (
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrInvalidClient   = errors.New("client not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
)

// ReceiptNotifier queues a payment receipt email. Best effort only.
type ReceiptNotifier interface {
	SendPaymentReceipt(to, clientName string, amount, balanceDue float64) error
}

type Service interface {
	Record(ctx context.Context, scope tenant.Scope, req RecordPaymentRequest) (*RecordPaymentResponse, error)
	Update(ctx context.Context, scope tenant.Scope, paymentID int, req UpdatePaymentRequest) (*LedgerResponse, error)
	Delete(ctx context.Context, scope tenant.Scope, paymentID int) (*LedgerResponse, error)
	List(ctx context.Context, scope tenant.Scope) ([]PaymentWithClient, error)
	ListForClient(ctx context.Context, scope tenant.Scope, clientID int) ([]Payment, error)
}

type service struct {
	repo     Repository
	notifier ReceiptNotifier
}

func NewService(repo Repository, notifier ReceiptNotifier) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *service) Record(ctx context.Context, scope tenant.Scope, req RecordPaymentRequest) (*RecordPaymentResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	paidAt, err := parseDateOrToday(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	p, state, err := s.repo.Record(ctx, scope, req.ClientID, req.Amount, req.Mode, req.Notes, paidAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidClient
		}
		return nil, err
	}

	over := state.BalanceDue < 0
	metrics.RecordPayment("record", over)
	if over {
		logger.Warn("payment exceeds plan amount",
			"client_id", req.ClientID, "balance_due", state.BalanceDue)
	}

	if s.notifier != nil && state.ClientEmail != "" {
		if err := s.notifier.SendPaymentReceipt(state.ClientEmail, state.ClientName, p.Amount, state.BalanceDue); err != nil {
			logger.Errorf("failed to queue payment receipt for client %d: %v", req.ClientID, err)
		}
	}

	return &RecordPaymentResponse{
		Payment:     p,
		TotalPaid:   state.TotalPaid,
		BalanceDue:  state.BalanceDue,
		PlanAmount:  state.PlanAmount,
		Overpayment: over,
	}, nil
}

func (s *service) Update(ctx context.Context, scope tenant.Scope, paymentID int, req UpdatePaymentRequest) (*LedgerResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	paidAt, err := parseDateOrToday(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	state, err := s.repo.Update(ctx, scope, paymentID, req.Amount, req.Mode, req.Notes, paidAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	over := state.BalanceDue < 0
	metrics.RecordPayment("update", over)

	return &LedgerResponse{
		TotalPaid:   state.TotalPaid,
		BalanceDue:  state.BalanceDue,
		PlanAmount:  state.PlanAmount,
		Overpayment: over,
	}, nil
}

func (s *service) Delete(ctx context.Context, scope tenant.Scope, paymentID int) (*LedgerResponse, error) {
	state, err := s.repo.Delete(ctx, scope, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	over := state.BalanceDue < 0
	metrics.RecordPayment("delete", over)

	return &LedgerResponse{
		TotalPaid:   state.TotalPaid,
		BalanceDue:  state.BalanceDue,
		PlanAmount:  state.PlanAmount,
		Overpayment: over,
	}, nil
}

func (s *service) List(ctx context.Context, scope tenant.Scope) ([]PaymentWithClient, error) {
	return s.repo.List(ctx, scope)
}

func (s *service) ListForClient(ctx context.Context, scope tenant.Scope, clientID int) ([]Payment, error) {
	return s.repo.ListForClient(ctx, scope, clientID)
}

func parseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		return dateOnly(time.Now()), nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
