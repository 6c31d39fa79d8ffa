package gym

import (
	"context"
	"errors"

	"github.com/Freaksthegeeks/GymBook/internal/auth"
	"github.com/Freaksthegeeks/GymBook/internal/metrics"
	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

var (
	ErrGymNotFound = errors.New("gym not found")
	ErrNotMember   = errors.New("user is not a member of this gym")
)

type Service interface {
	Create(ctx context.Context, req CreateGymRequest, userID int, username string) (*TokenGrant, error)
	ListMine(ctx context.Context, userID int) ([]Gym, error)
	Current(ctx context.Context, scope tenant.Scope) (*Gym, error)
	Switch(ctx context.Context, userID int, username string, gymID int) (*TokenGrant, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Create(ctx context.Context, req CreateGymRequest, userID int, username string) (*TokenGrant, error) {
	gym, err := s.repo.Create(ctx, req, userID)
	if err != nil {
		return nil, err
	}

	// The creator's session moves into the new gym immediately.
	accessToken, refreshToken, err := auth.GenerateTokens(userID, username, &gym.ID, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &TokenGrant{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Gym:          gym,
	}, nil
}

func (s *service) ListMine(ctx context.Context, userID int) ([]Gym, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *service) Current(ctx context.Context, scope tenant.Scope) (*Gym, error) {
	gym, err := s.repo.GetByID(ctx, scope.GymID())
	if err != nil {
		return nil, ErrGymNotFound
	}
	return gym, nil
}

func (s *service) Switch(ctx context.Context, userID int, username string, gymID int) (*TokenGrant, error) {
	ok, err := s.repo.IsMember(ctx, userID, gymID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotMember
	}

	gym, err := s.repo.GetByID(ctx, gymID)
	if err != nil {
		return nil, ErrGymNotFound
	}

	accessToken, refreshToken, err := auth.GenerateTokens(userID, username, &gym.ID, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	metrics.RecordGymSwitch()

	return &TokenGrant{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Gym:          gym,
	}, nil
}
