package domain

import "time"

type CategoryStat struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Events       int    `json:"events"`
	Enrollments  int    `json:"enrollments"`
	Attendance   int    `json:"attendance"`
}

type CreatorStat struct {
	CreatorID   string `json:"creator_id"`
	Events      int    `json:"events"`
	Enrollments int    `json:"enrollments"`
	Attendance  int    `json:"attendance"`
}

type EventStat struct {
	Event       Event `json:"event"`
	Enrollments int   `json:"enrollments"`
	Attendance  int   `json:"attendance"`
}

// PopularEvent содержит агрегаты одного события для рейтинга популярности создателя.
type PopularEvent struct {
	Event          Event   `json:"event"`
	Participants   int     `json:"total_participants"`
	Attended       int     `json:"total_attended"`
	AttendanceRate float64 `json:"attendance_rate"`
	AverageRating  float64 `json:"average_rating"`
	RatingsCount   int     `json:"total_ratings"`
}

type CategoryAttendance struct {
	Category       Category `json:"category"`
	Events         int      `json:"total_events"`
	Enrolled       int      `json:"total_enrolled"`
	Attended       int      `json:"total_attended"`
	AttendanceRate float64  `json:"attendance_rate"`
}

type CreatorEventStats struct {
	TotalEvents     int             `json:"total_events"`
	EventsLastMonth int             `json:"events_last_month"`
	RecentEvents    []*EventDetails `json:"events_list_last_month"`
}

type CreatorAttendeeStats struct {
	TotalEnrolled     int `json:"total_enrolled"`
	TotalAttended     int `json:"total_attended"`
	EnrolledLastMonth int `json:"enrolled_last_month"`
	AttendedLastMonth int `json:"attended_last_month"`
}

// AnalyticsWindow задаёт необязательное окно [From, To] по дате начала события.
type AnalyticsWindow struct {
	From *time.Time
	To   *time.Time
}
