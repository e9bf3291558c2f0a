package domain

import "time"

// Enrollment хранит запись пользователя на событие. Флаг Attended выставляется
// чек-ином ровно один раз и никогда не сбрасывается обратно.
type Enrollment struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	Attended   bool      `json:"attended"`
	EnrolledAt time.Time `json:"enrolled_at"`
}
