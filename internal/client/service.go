package client

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Freaksthegeeks/GymBook/internal/logger"
	"github.com/Freaksthegeeks/GymBook/internal/metrics"
	"github.com/Freaksthegeeks/GymBook/internal/plan"
	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

const dateFormat = "2006-01-02"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidPlan    = errors.New("plan not found")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidStatus  = errors.New("invalid status filter")
)

// RenewalNotifier queues a renewal email. Delivery is best effort; a queue
// failure never fails the renewal itself.
type RenewalNotifier interface {
	SendRenewalNotice(to, clientName, planName, endDate string) error
}

type Service interface {
	Create(ctx context.Context, scope tenant.Scope, req CreateClientRequest) (*Client, error)
	List(ctx context.Context, scope tenant.Scope) ([]ClientWithPlan, error)
	GetByID(ctx context.Context, scope tenant.Scope, id int) (*ClientWithPlan, error)
	UpdateProfile(ctx context.Context, scope tenant.Scope, id int, req UpdateProfileRequest) error
	Renew(ctx context.Context, scope tenant.Scope, id int, req RenewRequest) (*RenewResponse, error)
	Delete(ctx context.Context, scope tenant.Scope, id int) error
	FilterByStatus(ctx context.Context, scope tenant.Scope, status string) ([]ClientWithPlan, error)
	BirthdaysToday(ctx context.Context, scope tenant.Scope) ([]ClientWithPlan, error)
}

type service struct {
	repo     Repository
	plans    plan.Repository
	notifier RenewalNotifier
}

func NewService(repo Repository, plans plan.Repository, notifier RenewalNotifier) Service {
	return &service{
		repo:     repo,
		plans:    plans,
		notifier: notifier,
	}
}

func (s *service) Create(ctx context.Context, scope tenant.Scope, req CreateClientRequest) (*Client, error) {
	p, err := s.plans.GetByID(ctx, scope, req.PlanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidPlan
		}
		return nil, err
	}

	start, err := parseDateOrToday(req.StartDate)
	if err != nil {
		return nil, err
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	cl := &Client{
		Name:        req.Name,
		Phone:       req.Phone,
		DateOfBirth: dob,
		Gender:      req.Gender,
		BloodGroup:  req.BloodGroup,
		Address:     req.Address,
		Notes:       req.Notes,
		Email:       req.Email,
		Height:      req.Height,
		Weight:      req.Weight,
		PlanID:      p.ID,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, p.Days),
		TotalPaid:   0,
		BalanceDue:  p.Amount,
		Cycle:       1,
	}

	created, err := s.repo.Create(ctx, scope, cl)
	if err != nil {
		return nil, err
	}

	metrics.RecordClientCreated()
	return created, nil
}

func (s *service) List(ctx context.Context, scope tenant.Scope) ([]ClientWithPlan, error) {
	clients, err := s.repo.List(ctx, scope)
	if err != nil {
		return nil, err
	}
	stampStatuses(clients)
	return clients, nil
}

func (s *service) GetByID(ctx context.Context, scope tenant.Scope, id int) (*ClientWithPlan, error) {
	cl, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	cl.Status = StatusOf(cl.EndDate, time.Now())
	return cl, nil
}

func (s *service) UpdateProfile(ctx context.Context, scope tenant.Scope, id int, req UpdateProfileRequest) error {
	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return err
	}

	p := Profile{
		Name:        req.Name,
		Phone:       req.Phone,
		DateOfBirth: dob,
		Gender:      req.Gender,
		BloodGroup:  req.BloodGroup,
		Address:     req.Address,
		Notes:       req.Notes,
		Email:       req.Email,
		Height:      req.Height,
		Weight:      req.Weight,
	}

	if err := s.repo.UpdateProfile(ctx, scope, id, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}

func (s *service) Renew(ctx context.Context, scope tenant.Scope, id int, req RenewRequest) (*RenewResponse, error) {
	p, err := s.plans.GetByID(ctx, scope, req.PlanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidPlan
		}
		return nil, err
	}

	start, err := parseDateOrToday(req.StartDate)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 0, p.Days)

	if err := s.repo.Renew(ctx, scope, id, p.ID, start, end, p.Amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	metrics.RecordRenewal()

	if s.notifier != nil {
		if cl, err := s.repo.GetByID(ctx, scope, id); err == nil && cl.Email != "" {
			if err := s.notifier.SendRenewalNotice(cl.Email, cl.Name, p.Name, end.Format(dateFormat)); err != nil {
				logger.Errorf("failed to queue renewal notice for client %d: %v", id, err)
			}
		}
	}

	return &RenewResponse{
		EndDate:    end.Format(dateFormat),
		TotalPaid:  0,
		BalanceDue: p.Amount,
	}, nil
}

func (s *service) Delete(ctx context.Context, scope tenant.Scope, id int) error {
	err := s.repo.Delete(ctx, scope, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrClientNotFound
	}
	return err
}

func (s *service) FilterByStatus(ctx context.Context, scope tenant.Scope, status string) ([]ClientWithPlan, error) {
	parsed, ok := ParseStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	clients, err := s.repo.FilterByStatus(ctx, scope, parsed)
	if err != nil {
		return nil, err
	}
	stampStatuses(clients)
	return clients, nil
}

func (s *service) BirthdaysToday(ctx context.Context, scope tenant.Scope) ([]ClientWithPlan, error) {
	clients, err := s.repo.BirthdaysToday(ctx, scope)
	if err != nil {
		return nil, err
	}
	stampStatuses(clients)
	return clients, nil
}

func stampStatuses(clients []ClientWithPlan) {
	now := time.Now()
	for i := range clients {
		clients[i].Status = StatusOf(clients[i].EndDate, now)
	}
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

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
