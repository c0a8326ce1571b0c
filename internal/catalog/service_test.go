package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateTrainer(ctx context.Context, name string) (*Trainer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Trainer), args.Error(1)
}

func (m *MockRepository) GetTrainers(ctx context.Context) ([]TrainerWithClassCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TrainerWithClassCount), args.Error(1)
}

func (m *MockRepository) GetTrainerByID(ctx context.Context, id int) (*Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Trainer), args.Error(1)
}

func (m *MockRepository) CreateClass(ctx context.Context, class *GymClass) (*GymClass, error) {
	args := m.Called(ctx, class)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymClass), args.Error(1)
}

func (m *MockRepository) GetClassByID(ctx context.Context, id int) (*GymClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymClass), args.Error(1)
}

func (m *MockRepository) GetClassesWithAvailability(ctx context.Context) ([]ClassWithAvailability, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ClassWithAvailability), args.Error(1)
}

func TestService_CreateTrainer(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("CreateTrainer", mock.Anything, "Alex").Return(&Trainer{
		ID:   1,
		Name: "Alex",
	}, nil)

	trainer, err := service.CreateTrainer(context.Background(), CreateTrainerRequest{Name: "Alex"})

	assert.NoError(t, err)
	assert.Equal(t, "Alex", trainer.Name)
	mockRepo.AssertExpectations(t)
}

func TestService_CreateTrainer_TrimsName(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("CreateTrainer", mock.Anything, "Alex").Return(&Trainer{ID: 1, Name: "Alex"}, nil)

	_, err := service.CreateTrainer(context.Background(), CreateTrainerRequest{Name: "  Alex  "})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_CreateTrainer_NameRequired(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	for _, name := range []string{"", "   "} {
		_, err := service.CreateTrainer(context.Background(), CreateTrainerRequest{Name: name})
		assert.ErrorIs(t, err, ErrNameRequired)
	}

	mockRepo.AssertNotCalled(t, "CreateTrainer")
}

func validClassRequest() CreateClassRequest {
	return CreateClassRequest{
		DayLabel:    "Monday",
		Title:       "Morning Yoga",
		Category:    "Yoga",
		Level:       "Low",
		StartTime:   "07:30",
		DurationMin: 60,
		TotalSlots:  20,
		TrainerID:   1,
	}
}

func TestService_CreateClass(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*CreateClassRequest)
		setupMock   func(*MockRepository)
		expectedErr error
	}{
		{
			name:   "success",
			mutate: func(r *CreateClassRequest) {},
			setupMock: func(m *MockRepository) {
				m.On("GetTrainerByID", mock.Anything, 1).Return(&Trainer{ID: 1, Name: "Alex"}, nil)
				m.On("CreateClass", mock.Anything, mock.MatchedBy(func(c *GymClass) bool {
					return c.DayOfWeek == Monday && c.Title == "Morning Yoga"
				})).Return(&GymClass{ID: 1, DayOfWeek: Monday, Title: "Morning Yoga"}, nil)
			},
		},
		{
			name:        "unknown day label",
			mutate:      func(r *CreateClassRequest) { r.DayLabel = "Funday" },
			setupMock:   func(m *MockRepository) {},
			expectedErr: ErrInvalidDayLabel,
		},
		{
			name:        "lowercase day label rejected",
			mutate:      func(r *CreateClassRequest) { r.DayLabel = "monday" },
			setupMock:   func(m *MockRepository) {},
			expectedErr: ErrInvalidDayLabel,
		},
		{
			name:        "missing title",
			mutate:      func(r *CreateClassRequest) { r.Title = "  " },
			setupMock:   func(m *MockRepository) {},
			expectedErr: ErrMissingFields,
		},
		{
			name:        "zero duration",
			mutate:      func(r *CreateClassRequest) { r.DurationMin = 0 },
			setupMock:   func(m *MockRepository) {},
			expectedErr: ErrMissingFields,
		},
		{
			name:        "zero slots",
			mutate:      func(r *CreateClassRequest) { r.TotalSlots = 0 },
			setupMock:   func(m *MockRepository) {},
			expectedErr: ErrMissingFields,
		},
		{
			name:   "unknown trainer",
			mutate: func(r *CreateClassRequest) { r.TrainerID = 42 },
			setupMock: func(m *MockRepository) {
				m.On("GetTrainerByID", mock.Anything, 42).Return(nil, assert.AnError)
			},
			expectedErr: ErrTrainerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)
			service := NewService(mockRepo)

			req := validClassRequest()
			tt.mutate(&req)

			class, err := service.CreateClass(context.Background(), req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, class)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, class)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_ListClasses(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetClassesWithAvailability", mock.Anything).Return([]ClassWithAvailability{
		{GymClass: GymClass{ID: 1, DayOfWeek: Monday}, TrainerName: "Alex", BookedCount: 5, SpotsLeft: 15},
	}, nil)

	classes, err := service.ListClasses(context.Background())
	assert.NoError(t, err)
	assert.Len(t, classes, 1)
	mockRepo.AssertExpectations(t)
}

func TestService_ListTrainers(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetTrainers", mock.Anything).Return([]TrainerWithClassCount{
		{Trainer: Trainer{ID: 1, Name: "Alex"}, ClassCount: 2},
	}, nil)

	trainers, err := service.ListTrainers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, trainers, 1)
	assert.Equal(t, 2, trainers[0].ClassCount)
	mockRepo.AssertExpectations(t)
}
