package records

import (
	"fmt"
	"time"

	"github.com/jdcastellanos/granja/internal/domain/models"
)

// PeriodRange returns the inclusive bounds of the calendar period containing
// now, in now's location. Weeks start on Monday.
func PeriodRange(now time.Time, period models.Period) (time.Time, time.Time, error) {
	day := startOfDay(now)

	var start, next time.Time
	switch period {
	case models.PeriodDay:
		start = day
		next = day.AddDate(0, 0, 1)
	case models.PeriodWeek:
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		start = day.AddDate(0, 0, -offset)
		next = start.AddDate(0, 0, 7)
	case models.PeriodMonth:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		next = start.AddDate(0, 1, 0)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown period %q", models.ErrInvalidInput, period)
	}

	return start, next.Add(-time.Nanosecond), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
