package payment

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Freaksthegeeks/GymBook/internal/logger"
	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Record(ctx context.Context, scope tenant.Scope, clientID int, amount float64, mode, notes string, paidAt time.Time) (*Payment, *LedgerState, error) {
	args := m.Called(ctx, scope, clientID, amount, mode, notes, paidAt)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*Payment), args.Get(1).(*LedgerState), args.Error(2)
}

func (m *MockRepository) Update(ctx context.Context, scope tenant.Scope, paymentID int, amount float64, mode, notes string, paidAt time.Time) (*LedgerState, error) {
	args := m.Called(ctx, scope, paymentID, amount, mode, notes, paidAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LedgerState), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, scope tenant.Scope, paymentID int) (*LedgerState, error) {
	args := m.Called(ctx, scope, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LedgerState), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, scope tenant.Scope) ([]PaymentWithClient, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PaymentWithClient), args.Error(1)
}

func (m *MockRepository) ListForClient(ctx context.Context, scope tenant.Scope, clientID int) ([]Payment, error) {
	args := m.Called(ctx, scope, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Payment), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendPaymentReceipt(to, clientName string, amount, balanceDue float64) error {
	args := m.Called(to, clientName, amount, balanceDue)
	return args.Error(0)
}

func TestRecordPayment_PartialPayment(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil)
	scope := tenant.NewScope(3)

	repo.On("Record", mock.Anything, scope, 1, 20.0, "cash", "", mock.Anything).
		Return(&Payment{ID: 11, Amount: 20}, &LedgerState{TotalPaid: 20, BalanceDue: 30, PlanAmount: 50}, nil)

	resp, err := svc.Record(context.Background(), scope, RecordPaymentRequest{ClientID: 1, Amount: 20, Mode: "cash"})
	require.NoError(t, err)
	assert.Equal(t, 20.0, resp.TotalPaid)
	assert.Equal(t, 30.0, resp.BalanceDue)
	assert.Equal(t, 50.0, resp.PlanAmount)
	assert.False(t, resp.Overpayment)
}

func TestRecordPayment_OverpaymentIsFlaggedNotRejected(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil)
	scope := tenant.NewScope(3)

	repo.On("Record", mock.Anything, scope, 1, 40.0, "cash", "", mock.Anything).
		Return(&Payment{ID: 12, Amount: 40}, &LedgerState{TotalPaid: 60, BalanceDue: -10, PlanAmount: 50}, nil)

	resp, err := svc.Record(context.Background(), scope, RecordPaymentRequest{ClientID: 1, Amount: 40, Mode: "cash"})
	require.NoError(t, err)
	assert.Equal(t, 60.0, resp.TotalPaid)
	assert.Equal(t, -10.0, resp.BalanceDue)
	assert.Equal(t, 50.0, resp.PlanAmount)
	assert.True(t, resp.Overpayment)
}

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil)
	scope := tenant.NewScope(3)

	for _, amount := range []float64{0, -5} {
		_, err := svc.Record(context.Background(), scope, RecordPaymentRequest{ClientID: 1, Amount: amount})
		assert.True(t, errors.Is(err, ErrInvalidAmount))
	}
	repo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordPayment_UnknownClient(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil)
	scope := tenant.NewScope(3)

	repo.On("Record", mock.Anything, scope, 99, 20.0, "", "", mock.Anything).
		Return(nil, nil, sql.ErrNoRows)

	_, err := svc.Record(context.Background(), scope, RecordPaymentRequest{ClientID: 99, Amount: 20})
	assert.True(t, errors.Is(err, ErrInvalidClient))
}

func TestRecordPayment_QueuesReceipt(t *testing.T) {
	repo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(repo, notifier)
	scope := tenant.NewScope(3)

	repo.On("Record", mock.Anything, scope, 1, 20.0, "cash", "", mock.Anything).
		Return(&Payment{ID: 11, Amount: 20},
			&LedgerState{TotalPaid: 20, BalanceDue: 30, PlanAmount: 50, ClientName: "Asha", ClientEmail: "asha@example.com"}, nil)
	notifier.On("SendPaymentReceipt", "asha@example.com", "Asha", 20.0, 30.0).Return(nil)

	_, err := svc.Record(context.Background(), scope, RecordPaymentRequest{ClientID: 1, Amount: 20, Mode: "cash"})
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestRecordPayment_QueueFailureDoesNotFailPayment(t *testing.T) {
	repo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(repo, notifier)
	scope := tenant.NewScope(3)

	repo.On("Record", mock.Anything, scope, 1, 20.0, "cash", "", mock.Anything).
		Return(&Payment{ID: 11, Amount: 20},
			&LedgerState{TotalPaid: 20, BalanceDue: 30, PlanAmount: 50, ClientName: "Asha", ClientEmail: "asha@example.com"}, nil)
	notifier.On("SendPaymentReceipt", "asha@example.com", "Asha", 20.0, 30.0).
		Return(errors.New("queue unavailable"))

	resp, err := svc.Record(context.Background(), scope, RecordPaymentRequest{ClientID: 1, Amount: 20, Mode: "cash"})
	require.NoError(t, err)
	assert.Equal(t, 30.0, resp.BalanceDue)
}

func TestUpdatePayment_ReturnsLedgerAndPlanAmount(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil)
	scope := tenant.NewScope(3)

	repo.On("Update", mock.Anything, scope, 11, 30.0, "upi", "", mock.Anything).
		Return(&LedgerState{TotalPaid: 30, BalanceDue: 20, PlanAmount: 50}, nil)

	resp, err := svc.Update(context.Background(), scope, 11, UpdatePaymentRequest{Amount: 30, Mode: "upi"})
	require.NoError(t, err)
	assert.Equal(t, 30.0, resp.TotalPaid)
	assert.Equal(t, 20.0, resp.BalanceDue)
	assert.Equal(t, 50.0, resp.PlanAmount)
	assert.False(t, resp.Overpayment)
}

func TestUpdatePayment_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil)
	scope := tenant.NewScope(3)

	repo.On("Update", mock.Anything, scope, 99, 25.0, "", "", mock.Anything).
		Return(nil, sql.ErrNoRows)

	_, err := svc.Update(context.Background(), scope, 99, UpdatePaymentRequest{Amount: 25})
	assert.True(t, errors.Is(err, ErrPaymentNotFound))
}

func TestDeletePayment_RestoresBalance(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil)
	scope := tenant.NewScope(3)

	// After deleting the overpaying entry the totals fall back to the
	// remaining payments.
	repo.On("Delete", mock.Anything, scope, 12).
		Return(&LedgerState{TotalPaid: 20, BalanceDue: 30, PlanAmount: 50}, nil)

	resp, err := svc.Delete(context.Background(), scope, 12)
	require.NoError(t, err)
	assert.Equal(t, 20.0, resp.TotalPaid)
	assert.Equal(t, 30.0, resp.BalanceDue)
	assert.Equal(t, 50.0, resp.PlanAmount)
	assert.False(t, resp.Overpayment)
}

func TestParseDateOrToday_DefaultsToUTCMidnight(t *testing.T) {
	got, err := parseDateOrToday("")
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), got)
}

func TestRecordPayment_BadDate(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil)

	_, err := svc.Record(context.Background(), tenant.NewScope(3), RecordPaymentRequest{
		ClientID:    1,
		Amount:      20,
		PaymentDate: "20/01/2024",
	})
	assert.True(t, errors.Is(err, ErrInvalidDate))
}
