package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dbx := sqlx.NewDb(db, "sqlmock")
	return NewRepository(dbx), mock, func() { db.Close() }
}

func TestCreateTrainer(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery(`INSERT INTO trainers.*`).
		WithArgs("Alex").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(1, "Alex", time.Now()))

	trainer, err := repo.CreateTrainer(context.Background(), "Alex")
	assert.NoError(t, err)
	assert.Equal(t, 1, trainer.ID)
	assert.Equal(t, "Alex", trainer.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrainers(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT(.|\n)*FROM trainers t(.|\n)*LEFT JOIN gym_classes.*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "class_count"}).
			AddRow(1, "Alex", time.Now(), 3).
			AddRow(2, "Sam", time.Now(), 0))

	trainers, err := repo.GetTrainers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, trainers, 2)
	assert.Equal(t, 3, trainers[0].ClassCount)
	assert.Equal(t, 0, trainers[1].ClassCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrainerByID(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT id, name, created_at\s+FROM trainers\s+WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(1, "Alex", time.Now()))

	trainer, err := repo.GetTrainerByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, trainer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClass(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery(`INSERT INTO gym_classes.*`).
		WithArgs(Monday, "Morning Yoga", "Yoga", "Low", "07:30", 60, 20, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "day_of_week", "title", "category", "level", "start_time",
			"duration_min", "total_slots", "trainer_id", "created_at",
		}).AddRow(1, "MONDAY", "Morning Yoga", "Yoga", "Low", "07:30", 60, 20, 1, time.Now()))

	class, err := repo.CreateClass(context.Background(), &GymClass{
		DayOfWeek:   Monday,
		Title:       "Morning Yoga",
		Category:    "Yoga",
		Level:       "Low",
		StartTime:   "07:30",
		DurationMin: 60,
		TotalSlots:  20,
		TrainerID:   1,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, class.ID)
	assert.Equal(t, Monday, class.DayOfWeek)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetClassesWithAvailability(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	rows := sqlmock.NewRows([]string{
		"id", "day_of_week", "title", "category", "level", "start_time",
		"duration_min", "total_slots", "trainer_id", "created_at",
		"trainer_name", "booked_count",
	}).
		AddRow(1, "MONDAY", "Morning Yoga", "Yoga", "Low", "07:30", 60, 20, 1, time.Now(), "Alex", 5).
		AddRow(2, "TUESDAY", "HIIT Blast", "Cardio", "High", "18:00", 45, 1, 1, time.Now(), "Alex", 2)

	mock.ExpectQuery(`SELECT(.|\n)*FROM gym_classes c(.|\n)*LEFT JOIN class_bookings.*`).
		WillReturnRows(rows)

	classes, err := repo.GetClassesWithAvailability(context.Background())
	assert.NoError(t, err)
	assert.Len(t, classes, 2)

	assert.Equal(t, "Alex", classes[0].TrainerName)
	assert.Equal(t, 5, classes[0].BookedCount)
	assert.Equal(t, 15, classes[0].SpotsLeft)

	// Overbooked class reports zero spots, never negative.
	assert.Equal(t, 2, classes[1].BookedCount)
	assert.Equal(t, 0, classes[1].SpotsLeft)

	assert.NoError(t, mock.ExpectationsWereMet())
}
