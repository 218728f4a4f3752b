package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "busbook/internal/errors"
	"busbook/internal/model"
)

// MockBusRepository is a mock implementation of BusRepository.
type MockBusRepository struct {
	mock.Mock
}

func (m *MockBusRepository) Create(ctx context.Context, bus *model.Bus) error {
	args := m.Called(ctx, bus)
	return args.Error(0)
}

func (m *MockBusRepository) FindByID(ctx context.Context, id uint) (*model.Bus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bus), args.Error(1)
}

func (m *MockBusRepository) List(ctx context.Context) ([]model.Bus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bus), args.Error(1)
}

func (m *MockBusRepository) ListByAvailableSeats(ctx context.Context, minSeats int) ([]model.Bus, error) {
	args := m.Called(ctx, minSeats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bus), args.Error(1)
}

func TestBusService_CreateBus(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockBusRepository)
		expectedError error
	}{
		{
			name: "successful create returns re-read row",
			setupMock: func(m *MockBusRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Bus")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.Bus).ID = 2
					}).Return(nil)
				m.On("FindByID", mock.Anything, uint(2)).
					Return(&model.Bus{ID: 2, BusNumber: "BUS001", TotalSeats: 50, AvailableSeats: 45}, nil)
			},
		},
		{
			name: "duplicate bus number maps to typed error",
			setupMock: func(m *MockBusRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Bus")).
					Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrDuplicateBusNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBusRepository)
			tt.setupMock(mockRepo)

			svc := NewBusService(mockRepo)
			bus, err := svc.CreateBus(context.Background(), "BUS001", 50, 45)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, bus)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(2), bus.ID)
				assert.Equal(t, "BUS001", bus.BusNumber)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBusService_BusesWithAvailableSeats(t *testing.T) {
	mockRepo := new(MockBusRepository)
	mockRepo.On("ListByAvailableSeats", mock.Anything, 10).
		Return([]model.Bus{
			{ID: 1, BusNumber: "BUS001", TotalSeats: 50, AvailableSeats: 45},
			{ID: 3, BusNumber: "BUS003", TotalSeats: 60, AvailableSeats: 30},
		}, nil)

	svc := NewBusService(mockRepo)
	buses, err := svc.BusesWithAvailableSeats(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, buses, 2)
	mockRepo.AssertExpectations(t)
}

func TestBusService_SeedBuses_SkipsDuplicates(t *testing.T) {
	mockRepo := new(MockBusRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Bus) bool {
		return b.BusNumber == "BUS001"
	})).Return(gorm.ErrDuplicatedKey)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Bus) bool {
		return b.BusNumber != "BUS001"
	})).Return(nil)

	svc := NewBusService(mockRepo)
	created, skipped, err := svc.SeedBuses(context.Background(), []model.Bus{
		{BusNumber: "BUS001", TotalSeats: 50, AvailableSeats: 45},
		{BusNumber: "BUS002", TotalSeats: 40, AvailableSeats: 15},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, skipped)
	mockRepo.AssertExpectations(t)
}
