package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReminderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReminderRepo(db *dbpg.DB) *ReminderRepository {
	return &ReminderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// UpcomingCandidates возвращает записи на активные события, которые ещё не начались,
// с настройками уведомлений участника (дефолты, если настроек нет).
func (r *ReminderRepository) UpcomingCandidates(ctx context.Context) ([]*domain.ReminderCandidate, error) {
	query := `SELECT ` + eventColumns + `, en.user_id,
			  COALESCE(p.hours_before, $1), COALESCE(p.enabled, TRUE), p.telegram_chat_id
			  FROM enrollments en
			  JOIN events e ON e.id = en.event_id AND e.is_active
			  LEFT JOIN notification_prefs p ON p.user_id = en.user_id
			  WHERE (e.start_date + e.start_time) > now()`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.DefaultReminderLeadHours)
	if err != nil {
		return nil, fmt.Errorf("list reminder candidates: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReminderCandidate
	for rows.Next() {
		var (
			c      domain.ReminderCandidate
			chatID sql.NullInt64
		)
		err = scanEventInto(&c.Event, rows.Scan,
			&c.UserID, &c.Prefs.HoursBefore, &c.Prefs.Enabled, &chatID)
		if err != nil {
			return nil, fmt.Errorf("scan reminder candidate: %w", err)
		}
		c.Prefs.UserID = c.UserID
		if chatID.Valid {
			v := chatID.Int64
			c.Prefs.TelegramChatID = &v
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

// GetOrCreate идемпотентен по (event, user, kind): повторный вызов возвращает
// существующую строку вместе с её sent_at.
func (r *ReminderRepository) GetOrCreate(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	insert := `INSERT INTO event_reminders (id, event_id, user_id, kind, scheduled_for)
			   VALUES ($1, $2, $3, $4, $5)
			   ON CONFLICT (event_id, user_id, kind) DO NOTHING`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, insert,
		rem.ID, rem.EventID, rem.UserID, rem.Kind, rem.ScheduledFor,
	)
	if err != nil {
		return nil, fmt.Errorf("insert reminder: %w", err)
	}

	query := `SELECT id, event_id, user_id, kind, scheduled_for, sent_at
			  FROM event_reminders
			  WHERE event_id = $1 AND user_id = $2 AND kind = $3`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, rem.EventID, rem.UserID, rem.Kind)
	if err != nil {
		return nil, fmt.Errorf("get reminder: %w", err)
	}

	var (
		out    domain.Reminder
		sentAt sql.NullTime
	)
	if err = row.Scan(&out.ID, &out.EventID, &out.UserID, &out.Kind, &out.ScheduledFor, &sentAt); err != nil {
		return nil, fmt.Errorf("scan reminder: %w", err)
	}
	if sentAt.Valid {
		t := sentAt.Time
		out.SentAt = &t
	}

	return &out, nil
}

// MarkSent возвращает true, если напоминание было отправлено кем-то раньше.
func (r *ReminderRepository) MarkSent(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `UPDATE event_reminders SET sent_at = $2 WHERE id = $1 AND sent_at IS NULL`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, at)
	if err != nil {
		return false, fmt.Errorf("mark reminder sent: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark reminder rows affected: %w", err)
	}
	return rows == 0, nil
}

// GetPrefs возвращает дефолтные настройки, если пользователь их не сохранял.
func (r *ReminderRepository) GetPrefs(ctx context.Context, userID string) (*domain.NotificationPrefs, error) {
	query := `SELECT user_id, hours_before, enabled, telegram_chat_id
			  FROM notification_prefs
			  WHERE user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get notification prefs: %w", err)
	}

	var (
		p      domain.NotificationPrefs
		chatID sql.NullInt64
	)
	if err = row.Scan(&p.UserID, &p.HoursBefore, &p.Enabled, &chatID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotificationPrefs{
				UserID:      userID,
				HoursBefore: domain.DefaultReminderLeadHours,
				Enabled:     true,
			}, nil
		}
		return nil, fmt.Errorf("scan notification prefs: %w", err)
	}
	if chatID.Valid {
		v := chatID.Int64
		p.TelegramChatID = &v
	}

	return &p, nil
}

func (r *ReminderRepository) UpsertPrefs(ctx context.Context, p *domain.NotificationPrefs) error {
	query := `INSERT INTO notification_prefs (user_id, hours_before, enabled, telegram_chat_id)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (user_id) DO UPDATE
			  SET hours_before = EXCLUDED.hours_before,
			      enabled = EXCLUDED.enabled,
			      telegram_chat_id = EXCLUDED.telegram_chat_id`

	var chatID any
	if p.TelegramChatID != nil {
		chatID = *p.TelegramChatID
	}
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, p.UserID, p.HoursBefore, p.Enabled, chatID)
	if err != nil {
		return fmt.Errorf("upsert notification prefs: %w", err)
	}

	return nil
}
