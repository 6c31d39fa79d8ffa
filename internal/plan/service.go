package plan

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

var ErrPlanNotFound = errors.New("plan not found")

type Service interface {
	Create(ctx context.Context, scope tenant.Scope, req PlanRequest) (*Plan, error)
	List(ctx context.Context, scope tenant.Scope) ([]Plan, error)
	GetByID(ctx context.Context, scope tenant.Scope, id int) (*Plan, error)
	Update(ctx context.Context, scope tenant.Scope, id int, req PlanRequest) error
	Delete(ctx context.Context, scope tenant.Scope, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Create(ctx context.Context, scope tenant.Scope, req PlanRequest) (*Plan, error) {
	return s.repo.Create(ctx, scope, req.Name, req.Days, req.Amount)
}

func (s *service) List(ctx context.Context, scope tenant.Scope) ([]Plan, error) {
	return s.repo.List(ctx, scope)
}

func (s *service) GetByID(ctx context.Context, scope tenant.Scope, id int) (*Plan, error) {
	p, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, scope tenant.Scope, id int, req PlanRequest) error {
	err := s.repo.Update(ctx, scope, id, req.Name, req.Days, req.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPlanNotFound
	}
	return err
}

func (s *service) Delete(ctx context.Context, scope tenant.Scope, id int) error {
	err := s.repo.Delete(ctx, scope, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPlanNotFound
	}
	return err
}
