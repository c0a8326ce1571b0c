package catalog

import "context"

type Repository interface {
	CreateTrainer(ctx context.Context, name string) (*Trainer, error)
	GetTrainers(ctx context.Context) ([]TrainerWithClassCount, error)
	GetTrainerByID(ctx context.Context, id int) (*Trainer, error)
	CreateClass(ctx context.Context, class *GymClass) (*GymClass, error)
	GetClassByID(ctx context.Context, id int) (*GymClass, error)
	GetClassesWithAvailability(ctx context.Context) ([]ClassWithAvailability, error)
}
