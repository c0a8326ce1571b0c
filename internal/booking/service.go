package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"pulsefit/internal/catalog"
	"pulsefit/internal/user"
)

var (
	ErrMissingFields    = errors.New("classId and date are required")
	ErrInvalidDate      = errors.New("invalid date")
	ErrClassNotFound    = errors.New("class not found")
	ErrClassFull        = errors.New("class is full")
	ErrDuplicateBooking = errors.New("booking already exists for this class and date")
)

type Service interface {
	Create(ctx context.Context, userID string, req CreateBookingRequest) (*Booking, error)
	ListForUser(ctx context.Context, userID string) ([]BookingWithDetails, error)
	ListAll(ctx context.Context) ([]BookingWithDetails, error)
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
	userRepo    user.Repository

	// Optional write-time guards. With both off, overbooking and duplicate
	// bookings succeed and only the read-side spots-left number reflects
	// them.
	enforceCapacity  bool
	rejectDuplicates bool
}

func NewService(
	repo Repository,
	catalogRepo catalog.Repository,
	userRepo user.Repository,
	enforceCapacity bool,
	rejectDuplicates bool,
) Service {
	return &service{
		repo:             repo,
		catalogRepo:      catalogRepo,
		userRepo:         userRepo,
		enforceCapacity:  enforceCapacity,
		rejectDuplicates: rejectDuplicates,
	}
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp, the
// two formats the schedule UI submits. The result is always the calendar
// date at midnight UTC: bookings key on the day, and the stored DATE value
// would never equal a timestamp with a time-of-day component.
func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, err
		}
	}

	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateBookingRequest) (*Booking, error) {
	if req.ClassID <= 0 || strings.TrimSpace(req.Date) == "" {
		return nil, ErrMissingFields
	}

	date, err := parseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return nil, ErrInvalidDate
	}

	class, err := s.catalogRepo.GetClassByID(ctx, req.ClassID)
	if err != nil {
		return nil, ErrClassNotFound
	}

	if s.enforceCapacity {
		booked, err := s.repo.CountForClass(ctx, class.ID)
		if err != nil {
			return nil, err
		}
		if booked >= class.TotalSlots {
			return nil, ErrClassFull
		}
	}

	if s.rejectDuplicates {
		exists, err := s.repo.ExistsForUserClassDate(ctx, userID, class.ID, date)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateBooking
		}
	}

	// Bind the identity before writing the booking. The two writes are not
	// atomic as a pair; a crash in between leaves a synced user with no
	// booking, which a retry repairs.
	if err := s.userRepo.EnsureExists(ctx, userID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, userID, class.ID, date)
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]BookingWithDetails, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]BookingWithDetails, error) {
	return s.repo.ListAll(ctx)
}
