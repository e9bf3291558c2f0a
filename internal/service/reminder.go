package service

import (
	"context"
	"fmt"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ReminderService struct {
	reminders ports.ReminderRepo
	notifier  ports.Notifier
	window    time.Duration
	logger    logger.Logger
}

func NewReminderService(
	reminders ports.ReminderRepo,
	notifier ports.Notifier,
	window time.Duration,
	logger logger.Logger,
) *ReminderService {
	return &ReminderService{
		reminders: reminders,
		notifier:  notifier,
		window:    window,
		logger:    logger,
	}
}

// DispatchDue отправляет напоминания, чей срок попал в текущее окно.
// Повторный запуск по тем же записям ничего не досылает. Возвращает число
// отправленных напоминаний.
func (s *ReminderService) DispatchDue(ctx context.Context) (int, error) {
	candidates, err := s.reminders.UpcomingCandidates(ctx)
	if err != nil {
		return 0, fmt.Errorf("list candidates: %w", err)
	}

	now := time.Now().UTC()
	sent := 0

	for _, c := range candidates {
		if !c.Prefs.Enabled {
			continue
		}

		due := domain.ReminderDueAt(&c.Event, c.Prefs.HoursBefore)
		if due.After(now) || now.Sub(due) > s.window {
			continue
		}

		reminder, err := s.reminders.GetOrCreate(ctx, &domain.Reminder{
			ID:           uuid.New().String(),
			EventID:      c.Event.ID,
			UserID:       c.UserID,
			Kind:         domain.ReminderKindPre,
			ScheduledFor: due,
		})
		if err != nil {
			s.logger.Error("schedule reminder",
				logger.String("event_id", c.Event.ID),
				logger.String("user_id", c.UserID),
				logger.Any("error", err),
			)
			continue
		}
		if reminder.SentAt != nil {
			continue
		}

		already, err := s.reminders.MarkSent(ctx, reminder.ID, now)
		if err != nil {
			s.logger.Error("mark reminder sent",
				logger.String("reminder_id", reminder.ID),
				logger.Any("error", err),
			)
			continue
		}
		if already {
			continue
		}

		s.notifier.NotifyEventReminder(ctx, domain.Recipient{
			UserID:         c.UserID,
			TelegramChatID: c.Prefs.TelegramChatID,
		}, &c.Event)
		sent++
	}

	if sent > 0 {
		s.logger.Info("reminders dispatched", logger.Int("count", sent))
	}

	return sent, nil
}

func (s *ReminderService) GetPrefs(ctx context.Context, actor domain.Actor) (*domain.NotificationPrefs, error) {
	return s.reminders.GetPrefs(ctx, actor.ID)
}

func (s *ReminderService) SetPrefs(ctx context.Context, actor domain.Actor, hoursBefore int, enabled bool, telegramChatID *int64) (*domain.NotificationPrefs, error) {
	if hoursBefore <= 0 {
		return nil, fmt.Errorf("%w: hours_before must be positive", domain.ErrValidation)
	}

	prefs := &domain.NotificationPrefs{
		UserID:         actor.ID,
		HoursBefore:    hoursBefore,
		Enabled:        enabled,
		TelegramChatID: telegramChatID,
	}
	if err := s.reminders.UpsertPrefs(ctx, prefs); err != nil {
		return nil, err
	}

	return prefs, nil
}
