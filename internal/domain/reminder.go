package domain

import "time"

const (
	ReminderKindPre          = "pre"
	DefaultReminderLeadHours = 24
)

// Reminder идемпотентен по тройке (event, user, kind): повторное планирование
// того же напоминания не создаёт дубликат.
type Reminder struct {
	ID           string     `json:"id"`
	EventID      string     `json:"event_id"`
	UserID       string     `json:"user_id"`
	Kind         string     `json:"kind"`
	ScheduledFor time.Time  `json:"scheduled_for"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
}

type NotificationPrefs struct {
	UserID         string `json:"user_id"`
	HoursBefore    int    `json:"hours_before"`
	Enabled        bool   `json:"enabled"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

// ReminderCandidate объединяет запись на предстоящее событие и настройки
// уведомлений участника.
type ReminderCandidate struct {
	Event  Event
	UserID string
	Prefs  NotificationPrefs
}

// ReminderDueAt вычисляет момент напоминания: начало события минус
// предпочитаемое пользователем число часов.
func ReminderDueAt(e *Event, hoursBefore int) time.Time {
	if hoursBefore <= 0 {
		hoursBefore = DefaultReminderLeadHours
	}
	return e.StartsAt().Add(-time.Duration(hoursBefore) * time.Hour)
}

// Recipient описывает адресата внешнего notification sink.
type Recipient struct {
	UserID         string
	TelegramChatID *int64
}
