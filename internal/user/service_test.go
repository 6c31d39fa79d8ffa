package user

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Freaksthegeeks/GymBook/internal/auth"
	"github.com/Freaksthegeeks/GymBook/internal/gym"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, username, email, passwordHash string) (*User, error) {
	args := m.Called(ctx, username, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockGymRepository struct {
	mock.Mock
}

func (m *MockGymRepository) Create(ctx context.Context, req gym.CreateGymRequest, ownerID int) (*gym.Gym, error) {
	args := m.Called(ctx, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gym.Gym), args.Error(1)
}

func (m *MockGymRepository) GetByID(ctx context.Context, id int) (*gym.Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gym.Gym), args.Error(1)
}

func (m *MockGymRepository) ListForUser(ctx context.Context, userID int) ([]gym.Gym, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gym.Gym), args.Error(1)
}

func (m *MockGymRepository) IsMember(ctx context.Context, userID, gymID int) (bool, error) {
	args := m.Called(ctx, userID, gymID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGymRepository) ResolveActiveGym(ctx context.Context, userID int) (*int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

const testSecret = "user-service-test-secret"

func TestService_Register(t *testing.T) {
	t.Run("successful registration has no gym claim", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockGyms := new(MockGymRepository)
		service := NewService(mockRepo, mockGyms, testSecret)

		mockRepo.On("EmailExists", mock.Anything, "a@example.com").Return(false, nil)
		mockRepo.On("UsernameExists", mock.Anything, "alice").Return(false, nil)
		mockRepo.On("Create", mock.Anything, "alice", "a@example.com", mock.AnythingOfType("string")).
			Return(&User{ID: 1, Username: "alice", Email: "a@example.com"}, nil)

		resp, err := service.Register(context.Background(), RegisterRequest{
			Username: "alice",
			Email:    "a@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		claims, err := auth.ValidateToken(resp.AccessToken, testSecret)
		require.NoError(t, err)
		assert.Nil(t, claims.ActiveGymID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, new(MockGymRepository), testSecret)

		mockRepo.On("EmailExists", mock.Anything, "a@example.com").Return(true, nil)

		_, err := service.Register(context.Background(), RegisterRequest{
			Username: "alice",
			Email:    "a@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, new(MockGymRepository), testSecret)

		mockRepo.On("EmailExists", mock.Anything, "a@example.com").Return(false, nil)
		mockRepo.On("UsernameExists", mock.Anything, "alice").Return(true, nil)

		_, err := service.Register(context.Background(), RegisterRequest{
			Username: "alice",
			Email:    "a@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, ErrUsernameExists)
	})
}

func TestService_Login(t *testing.T) {
	hash, _ := auth.HashPassword("password123")

	t.Run("resolves active gym into the token", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockGyms := new(MockGymRepository)
		service := NewService(mockRepo, mockGyms, testSecret)

		gymID := 3
		mockRepo.On("FindByEmail", mock.Anything, "a@example.com").
			Return(&User{ID: 1, Username: "alice", Email: "a@example.com", PasswordHash: hash}, nil)
		mockGyms.On("ResolveActiveGym", mock.Anything, 1).Return(&gymID, nil)

		resp, err := service.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "password123"})

		require.NoError(t, err)
		require.NotNil(t, resp.ActiveGymID)
		assert.Equal(t, 3, *resp.ActiveGymID)

		claims, err := auth.ValidateToken(resp.AccessToken, testSecret)
		require.NoError(t, err)
		require.NotNil(t, claims.ActiveGymID)
		assert.Equal(t, 3, *claims.ActiveGymID)
	})

	t.Run("onboarding user gets token without gym", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockGyms := new(MockGymRepository)
		service := NewService(mockRepo, mockGyms, testSecret)

		mockRepo.On("FindByEmail", mock.Anything, "a@example.com").
			Return(&User{ID: 1, Username: "alice", PasswordHash: hash}, nil)
		mockGyms.On("ResolveActiveGym", mock.Anything, 1).Return(nil, nil)

		resp, err := service.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "password123"})

		require.NoError(t, err)
		assert.Nil(t, resp.ActiveGymID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, new(MockGymRepository), testSecret)

		mockRepo.On("FindByEmail", mock.Anything, "a@example.com").
			Return(&User{ID: 1, PasswordHash: hash}, nil)

		_, err := service.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "nope"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, new(MockGymRepository), testSecret)

		mockRepo.On("FindByEmail", mock.Anything, "x@example.com").Return(nil, sql.ErrNoRows)

		_, err := service.Login(context.Background(), LoginRequest{Email: "x@example.com", Password: "password123"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_RefreshToken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockGymRepository), testSecret)

	gymID := 3
	_, refreshToken, err := auth.GenerateTokens(1, "alice", &gymID, testSecret)
	require.NoError(t, err)

	mockRepo.On("FindByID", mock.Anything, 1).Return(&User{ID: 1, Username: "alice"}, nil)

	accessToken, u, err := service.RefreshToken(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)

	claims, err := auth.ValidateToken(accessToken, testSecret)
	require.NoError(t, err)
	require.NotNil(t, claims.ActiveGymID)
	assert.Equal(t, 3, *claims.ActiveGymID)
}
