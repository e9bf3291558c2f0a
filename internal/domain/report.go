package domain

import "time"

// CommentReport уникален по паре (comment, reporter): один пользователь может
// пожаловаться на комментарий не более одного раза.
type CommentReport struct {
	ID         string    `json:"id"`
	CommentID  string    `json:"comment_id"`
	ReporterID string    `json:"reporter_id"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

type EventReport struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	ReporterID string    `json:"reporter_id"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReportedComment объединяет комментарий и сгруппированные жалобы для модерации.
type ReportedComment struct {
	Comment        Comment         `json:"comment"`
	ReportCount    int             `json:"report_count"`
	LatestReportAt time.Time       `json:"latest_report_date"`
	Reports        []CommentReport `json:"reports"`
}

type ReportedEvent struct {
	Event          Event         `json:"event"`
	ReportCount    int           `json:"report_count"`
	LatestReportAt time.Time     `json:"latest_report_date"`
	Reports        []EventReport `json:"reports"`
}
