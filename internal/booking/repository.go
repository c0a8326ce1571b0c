package booking

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID string, classID int, date time.Time) (*Booking, error) {
	query := `
		INSERT INTO class_bookings (user_id, class_id, date)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, class_id, date, created_at
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, userID, classID, date)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) CountForClass(ctx context.Context, classID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM class_bookings
		WHERE class_id = $1
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, classID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) ExistsForUserClassDate(ctx context.Context, userID string, classID int, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM class_bookings
			WHERE user_id = $1 AND class_id = $2 AND date = $3
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, classID, date)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) ListForUser(ctx context.Context, userID string) ([]BookingWithDetails, error) {
	query := `
		SELECT
			b.id,
			b.user_id,
			b.class_id,
			b.date,
			b.created_at,
			c.title AS class_title,
			c.day_of_week AS class_day,
			c.start_time AS class_start,
			t.name AS trainer_name,
			u.email AS user_email,
			u.full_name AS user_name
		FROM class_bookings b
		JOIN gym_classes c ON b.class_id = c.id
		JOIN trainers t ON c.trainer_id = t.id
		JOIN users u ON b.user_id = u.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListAll(ctx context.Context) ([]BookingWithDetails, error) {
	query := `
		SELECT
			b.id,
			b.user_id,
			b.class_id,
			b.date,
			b.created_at,
			c.title AS class_title,
			c.day_of_week AS class_day,
			c.start_time AS class_start,
			t.name AS trainer_name,
			u.email AS user_email,
			u.full_name AS user_name
		FROM class_bookings b
		JOIN gym_classes c ON b.class_id = c.id
		JOIN trainers t ON c.trainer_id = t.id
		JOIN users u ON b.user_id = u.id
		ORDER BY b.created_at DESC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
