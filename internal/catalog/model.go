package catalog

import "time"

// Weekday is the stored day-of-week enumeration. The Postgres enum declares
// the values Monday-first, so ORDER BY day_of_week yields calendar order.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

var weekdayByLabel = map[string]Weekday{
	"Monday":    Monday,
	"Tuesday":   Tuesday,
	"Wednesday": Wednesday,
	"Thursday":  Thursday,
	"Friday":    Friday,
	"Saturday":  Saturday,
	"Sunday":    Sunday,
}

var labelByWeekday = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// WeekdayFromLabel maps a display label ("Monday".."Sunday", case-sensitive)
// to its stored value.
func WeekdayFromLabel(label string) (Weekday, bool) {
	day, ok := weekdayByLabel[label]
	return day, ok
}

func (w Weekday) Label() string {
	return labelByWeekday[w]
}

type Trainer struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type TrainerWithClassCount struct {
	Trainer
	ClassCount int `db:"class_count" json:"class_count"`
}

type GymClass struct {
	ID          int       `db:"id" json:"id"`
	DayOfWeek   Weekday   `db:"day_of_week" json:"day_of_week"`
	Title       string    `db:"title" json:"title"`
	Category    string    `db:"category" json:"category"`
	Level       string    `db:"level" json:"level"`
	StartTime   string    `db:"start_time" json:"start_time"`
	DurationMin int       `db:"duration_min" json:"duration_min"`
	TotalSlots  int       `db:"total_slots" json:"total_slots"`
	TrainerID   int       `db:"trainer_id" json:"trainer_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type ClassWithAvailability struct {
	GymClass
	TrainerName string `db:"trainer_name" json:"trainer_name"`
	BookedCount int    `db:"booked_count" json:"booked_count"`
	SpotsLeft   int    `db:"-" json:"spots_left"`
}

// SpotsLeft derives the remaining seats for a class. Overbooked classes
// report zero, never a negative number.
func SpotsLeft(totalSlots, bookedCount int) int {
	left := totalSlots - bookedCount
	if left < 0 {
		return 0
	}
	return left
}

type CreateTrainerRequest struct {
	Name string `json:"name"`
}

type CreateClassRequest struct {
	DayLabel    string `json:"dayLabel"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	StartTime   string `json:"startTime"`
	DurationMin int    `json:"durationMin"`
	TotalSlots  int    `json:"totalSlots"`
	TrainerID   int    `json:"trainerId"`
}
