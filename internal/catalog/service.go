package catalog

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidDayLabel = errors.New("dayLabel is required")
	ErrMissingFields   = errors.New("missing required fields")
	ErrTrainerNotFound = errors.New("trainer not found")
)

type Service interface {
	CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*Trainer, error)
	ListTrainers(ctx context.Context) ([]TrainerWithClassCount, error)
	CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error)
	ListClasses(ctx context.Context) ([]ClassWithAvailability, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*Trainer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	return s.repo.CreateTrainer(ctx, name)
}

func (s *service) ListTrainers(ctx context.Context) ([]TrainerWithClassCount, error) {
	return s.repo.GetTrainers(ctx)
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error) {
	day, ok := WeekdayFromLabel(req.DayLabel)
	if !ok {
		return nil, ErrInvalidDayLabel
	}

	title := strings.TrimSpace(req.Title)
	category := strings.TrimSpace(req.Category)
	level := strings.TrimSpace(req.Level)
	startTime := strings.TrimSpace(req.StartTime)

	if title == "" || category == "" || level == "" || startTime == "" ||
		req.DurationMin <= 0 || req.TotalSlots <= 0 || req.TrainerID <= 0 {
		return nil, ErrMissingFields
	}

	if _, err := s.repo.GetTrainerByID(ctx, req.TrainerID); err != nil {
		return nil, ErrTrainerNotFound
	}

	return s.repo.CreateClass(ctx, &GymClass{
		DayOfWeek:   day,
		Title:       title,
		Category:    category,
		Level:       level,
		StartTime:   startTime,
		DurationMin: req.DurationMin,
		TotalSlots:  req.TotalSlots,
		TrainerID:   req.TrainerID,
	})
}

func (s *service) ListClasses(ctx context.Context) ([]ClassWithAvailability, error) {
	return s.repo.GetClassesWithAvailability(ctx)
}
