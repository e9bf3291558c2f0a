package ports

import (
	"context"
	"time"

	"github.com/eventify-app/backend/internal/domain"
)

type ReminderRepo interface {
	// UpcomingCandidates возвращает записи на активные события, которые ещё не начались,
	// вместе с настройками уведомлений участников.
	UpcomingCandidates(ctx context.Context) ([]*domain.ReminderCandidate, error)
	// GetOrCreate возвращает существующее напоминание по (event, user, kind)
	// или создаёт новое.
	GetOrCreate(ctx context.Context, r *domain.Reminder) (*domain.Reminder, error)
	// MarkSent возвращает true, если напоминание уже было отправлено ранее.
	MarkSent(ctx context.Context, id string, at time.Time) (bool, error)
	GetPrefs(ctx context.Context, userID string) (*domain.NotificationPrefs, error)
	UpsertPrefs(ctx context.Context, p *domain.NotificationPrefs) error
}
