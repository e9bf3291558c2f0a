package domain

import "time"

type Comment struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	AuthorID   string     `json:"author_id"`
	Content    string     `json:"content"`
	IsActive   bool       `json:"is_active"`
	DisabledAt *time.Time `json:"disabled_at,omitempty"`
	DisabledBy *string    `json:"disabled_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
