package booking

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, userID string, classID int, date time.Time) (*Booking, error)
	CountForClass(ctx context.Context, classID int) (int, error)
	ExistsForUserClassDate(ctx context.Context, userID string, classID int, date time.Time) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]BookingWithDetails, error)
	ListAll(ctx context.Context) ([]BookingWithDetails, error)
}
