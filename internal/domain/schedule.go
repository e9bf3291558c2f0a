package domain

import (
	"fmt"
	"time"
)

// ValidateSchedule проверяет порядок дат и времени события: сначала даты,
// затем время при совпадении дня.
func ValidateSchedule(startDate, startTime, endDate, endTime time.Time) error {
	sd := dateOnly(startDate)
	ed := dateOnly(endDate)

	if ed.Before(sd) {
		return fmt.Errorf("%w: end_date cannot be before start_date", ErrValidation)
	}
	if ed.Equal(sd) && !timeOfDay(endTime).After(timeOfDay(startTime)) {
		return fmt.Errorf("%w: end_time must be after start_time when the event is on the same day", ErrValidation)
	}

	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func timeOfDay(t time.Time) time.Time {
	return time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
