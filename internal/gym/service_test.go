package gym

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Freaksthegeeks/GymBook/internal/auth"
	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, req CreateGymRequest, ownerID int) (*Gym, error) {
	args := m.Called(ctx, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockRepository) ListForUser(ctx context.Context, userID int) ([]Gym, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Gym), args.Error(1)
}

func (m *MockRepository) IsMember(ctx context.Context, userID, gymID int) (bool, error) {
	args := m.Called(ctx, userID, gymID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ResolveActiveGym(ctx context.Context, userID int) (*int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

const testJWTSecret = "gym-service-test-secret"

func TestService_Create_GrantsTokenForNewGym(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, testJWTSecret)

	req := CreateGymRequest{Name: "Iron Temple"}
	mockRepo.On("Create", mock.Anything, req, 7).Return(&Gym{ID: 3, Name: "Iron Temple"}, nil)

	grant, err := service.Create(context.Background(), req, 7, "owner1")

	assert.NoError(t, err)
	assert.NotEmpty(t, grant.AccessToken)
	assert.Equal(t, 3, grant.Gym.ID)

	claims, err := auth.ValidateToken(grant.AccessToken, testJWTSecret)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ActiveGymID)
	assert.Equal(t, 3, *claims.ActiveGymID)
	mockRepo.AssertExpectations(t)
}

func TestService_Switch(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockRepository)
		wantErr   error
	}{
		{
			name: "member can switch",
			setupMock: func(m *MockRepository) {
				m.On("IsMember", mock.Anything, 7, 5).Return(true, nil)
				m.On("GetByID", mock.Anything, 5).Return(&Gym{ID: 5, Name: "Westside"}, nil)
			},
			wantErr: nil,
		},
		{
			name: "non-member is forbidden",
			setupMock: func(m *MockRepository) {
				m.On("IsMember", mock.Anything, 7, 5).Return(false, nil)
			},
			wantErr: ErrNotMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)
			service := NewService(mockRepo, testJWTSecret)

			grant, err := service.Switch(context.Background(), 7, "owner1", 5)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, grant)
			} else {
				assert.NoError(t, err)
				claims, err := auth.ValidateToken(grant.AccessToken, testJWTSecret)
				assert.NoError(t, err)
				assert.Equal(t, 5, *claims.ActiveGymID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Current(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, testJWTSecret)

	mockRepo.On("GetByID", mock.Anything, 3).Return(&Gym{ID: 3, Name: "Iron Temple"}, nil)

	gym, err := service.Current(context.Background(), tenant.NewScope(3))

	assert.NoError(t, err)
	assert.Equal(t, "Iron Temple", gym.Name)
	mockRepo.AssertExpectations(t)
}
