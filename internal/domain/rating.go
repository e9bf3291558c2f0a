package domain

import "time"

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating хранит одну оценку на пару (пользователь, событие), без переоценивания.
type Rating struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type RatingSummary struct {
	EventID string  `json:"event_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
