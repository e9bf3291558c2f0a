package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *Event {
	return &Event{
		ID:        "e1",
		Title:     "Taller de Go",
		StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
}

func TestEvent_StatusAt_Boundaries(t *testing.T) {
	e := testEvent()

	cases := []struct {
		name string
		now  time.Time
		want EventStatus
	}{
		{"before start", time.Date(2026, 3, 10, 9, 59, 0, 0, time.UTC), EventStatusUpcoming},
		{"exactly at start", time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), EventStatusOngoing},
		{"mid event", time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC), EventStatusOngoing},
		{"exactly at end", time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), EventStatusOngoing},
		{"just past end", time.Date(2026, 3, 10, 12, 0, 1, 0, time.UTC), EventStatusFinished},
		{"next day", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), EventStatusFinished},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.StatusAt(tc.now))
		})
	}
}

func TestEvent_StartsAt_CombinesDateAndTime(t *testing.T) {
	e := testEvent()

	assert.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), e.StartsAt())
	assert.Equal(t, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), e.EndsAt())
}

func TestValidateSchedule(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)
	at10 := time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC)
	at12 := time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid same day", func(t *testing.T) {
		require.NoError(t, ValidateSchedule(day, at10, day, at12))
	})

	t.Run("valid multi day", func(t *testing.T) {
		// на следующий день время окончания может быть раньше времени начала
		require.NoError(t, ValidateSchedule(day, at12, nextDay, at10))
	})

	t.Run("end date before start date", func(t *testing.T) {
		err := ValidateSchedule(nextDay, at10, day, at12)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("same day end time not after start time", func(t *testing.T) {
		err := ValidateSchedule(day, at12, day, at10)
		assert.ErrorIs(t, err, ErrValidation)

		err = ValidateSchedule(day, at10, day, at10)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestActor_CanManage(t *testing.T) {
	owner := Actor{ID: "u1"}
	other := Actor{ID: "u2"}
	admin := Actor{ID: "u3", IsAdmin: true}

	assert.True(t, owner.CanManage("u1"))
	assert.False(t, other.CanManage("u1"))
	assert.True(t, admin.CanManage("u1"))
}

func TestReminderDueAt(t *testing.T) {
	e := testEvent()

	due := ReminderDueAt(e, 2)
	assert.Equal(t, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), due)

	// неположительное значение откатывается к 24 часам
	due = ReminderDueAt(e, 0)
	assert.Equal(t, time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC), due)
}
