package booking

import (
	"time"

	"pulsefit/internal/catalog"
)

// Booking is one member's reservation of one class occurrence on one
// calendar date.
type Booking struct {
	ID        int       `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	ClassID   int       `db:"class_id" json:"class_id"`
	Date      time.Time `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// BookingWithDetails joins a booking with its class, trainer and user for
// the profile and admin views.
type BookingWithDetails struct {
	Booking
	ClassTitle  string          `db:"class_title" json:"class_title"`
	ClassDay    catalog.Weekday `db:"class_day" json:"class_day"`
	ClassStart  string          `db:"class_start" json:"class_start"`
	TrainerName string          `db:"trainer_name" json:"trainer_name"`
	UserEmail   *string         `db:"user_email" json:"user_email,omitempty"`
	UserName    *string         `db:"user_name" json:"user_name,omitempty"`
}

type CreateBookingRequest struct {
	ClassID int    `json:"classId"`
	Date    string `json:"date"`
}
