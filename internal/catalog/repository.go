package catalog

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTrainer(ctx context.Context, name string) (*Trainer, error) {
	query := `
		INSERT INTO trainers (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`

	var trainer Trainer
	err := r.db.GetContext(ctx, &trainer, query, name)
	if err != nil {
		return nil, err
	}

	return &trainer, nil
}

func (r *repository) GetTrainers(ctx context.Context) ([]TrainerWithClassCount, error) {
	query := `
		SELECT
			t.id,
			t.name,
			t.created_at,
			COUNT(c.id) AS class_count
		FROM trainers t
		LEFT JOIN gym_classes c ON c.trainer_id = t.id
		GROUP BY t.id
		ORDER BY t.created_at ASC
	`

	var trainers []TrainerWithClassCount
	err := r.db.SelectContext(ctx, &trainers, query)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}

func (r *repository) GetTrainerByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT id, name, created_at
		FROM trainers
		WHERE id = $1
	`

	var trainer Trainer
	err := r.db.GetContext(ctx, &trainer, query, id)
	if err != nil {
		return nil, err
	}

	return &trainer, nil
}

func (r *repository) CreateClass(ctx context.Context, class *GymClass) (*GymClass, error) {
	query := `
		INSERT INTO gym_classes (day_of_week, title, category, level, start_time, duration_min, total_slots, trainer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, day_of_week, title, category, level, start_time, duration_min, total_slots, trainer_id, created_at
	`

	var created GymClass
	err := r.db.GetContext(ctx, &created, query,
		class.DayOfWeek,
		class.Title,
		class.Category,
		class.Level,
		class.StartTime,
		class.DurationMin,
		class.TotalSlots,
		class.TrainerID,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetClassByID(ctx context.Context, id int) (*GymClass, error) {
	query := `
		SELECT id, day_of_week, title, category, level, start_time, duration_min, total_slots, trainer_id, created_at
		FROM gym_classes
		WHERE id = $1
	`

	var class GymClass
	err := r.db.GetContext(ctx, &class, query, id)
	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *repository) GetClassesWithAvailability(ctx context.Context) ([]ClassWithAvailability, error) {
	query := `
		SELECT
			c.id,
			c.day_of_week,
			c.title,
			c.category,
			c.level,
			c.start_time,
			c.duration_min,
			c.total_slots,
			c.trainer_id,
			c.created_at,
			t.name AS trainer_name,
			COUNT(b.id) AS booked_count
		FROM gym_classes c
		JOIN trainers t ON c.trainer_id = t.id
		LEFT JOIN class_bookings b ON b.class_id = c.id
		GROUP BY c.id, t.name
		ORDER BY c.day_of_week ASC, c.start_time ASC
	`

	var classes []ClassWithAvailability
	err := r.db.SelectContext(ctx, &classes, query)
	if err != nil {
		return nil, err
	}

	for i := range classes {
		classes[i].SpotsLeft = SpotsLeft(classes[i].TotalSlots, classes[i].BookedCount)
	}

	return classes, nil
}
