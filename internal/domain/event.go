package domain

import "time"

type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusOngoing  EventStatus = "ongoing"
	EventStatusFinished EventStatus = "finished"
)

// Event хранит дату и время начала/окончания раздельно (start_date/start_time,
// end_date/end_time), как в исходной схеме.
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Place       string     `json:"place"`
	CoverURL    string     `json:"cover_url"`
	StartDate   time.Time  `json:"start_date"`
	StartTime   time.Time  `json:"start_time"`
	EndDate     time.Time  `json:"end_date"`
	EndTime     time.Time  `json:"end_time"`
	Capacity    *int       `json:"capacity"`
	CreatorID   string     `json:"creator_id"`
	Categories  []Category `json:"categories"`
	IsActive    bool       `json:"is_active"`
	DisabledAt  *time.Time `json:"disabled_at,omitempty"`
	DisabledBy  *string    `json:"disabled_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CombineDateTime собирает отдельные date и time-of-day поля в один момент времени.
func CombineDateTime(date, tod time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0,
		time.UTC,
	)
}

func (e *Event) StartsAt() time.Time {
	return CombineDateTime(e.StartDate, e.StartTime)
}

func (e *Event) EndsAt() time.Time {
	return CombineDateTime(e.EndDate, e.EndTime)
}

// StatusAt вычисляет статус события на момент now, ничего не сохраняя:
// finished строго после конца, ongoing при start <= now <= end, иначе upcoming.
func (e *Event) StatusAt(now time.Time) EventStatus {
	if now.After(e.EndsAt()) {
		return EventStatusFinished
	}
	if !now.Before(e.StartsAt()) {
		return EventStatusOngoing
	}
	return EventStatusUpcoming
}

// EventDetails несёт событие с производными полями, вычисляемыми на каждый запрос,
// а не хранимыми.
type EventDetails struct {
	Event             Event       `json:"event"`
	ParticipantsCount int         `json:"participants_count"`
	IsEnrolled        bool        `json:"is_enrolled"`
	Status            EventStatus `json:"status"`
}

type CreateEventInput struct {
	Title       string
	Description string
	Place       string
	CoverURL    string
	StartDate   time.Time
	StartTime   time.Time
	EndDate     time.Time
	EndTime     time.Time
	Capacity    *int
	CategoryIDs []string
}

type EventFilter struct {
	Search         string
	FromDate       *time.Time // start_date >= FromDate
	ToDate         *time.Time // start_date <= ToDate
	EndsFrom       *time.Time // end_date >= EndsFrom, для календаря
	CreatorID      string
	EnrolledUserID string
	OrderAsc       bool
}
