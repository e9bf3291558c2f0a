package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func reminderCandidate(userID string, startIn time.Duration, prefs domain.NotificationPrefs) *domain.ReminderCandidate {
	start := time.Now().UTC().Add(startIn)
	return &domain.ReminderCandidate{
		Event: domain.Event{
			ID:        "e1",
			Title:     "Feria de ciencias",
			StartDate: start,
			StartTime: start,
			EndDate:   start,
			EndTime:   start.Add(2 * time.Hour),
			IsActive:  true,
		},
		UserID: userID,
		Prefs:  prefs,
	}
}

func TestReminderService_DispatchDue_SendsAndMarks(t *testing.T) {
	reminderRepo := mocks.NewMockReminderRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewReminderService(reminderRepo, notifier, time.Hour, newTestLogger(t))

	// до начала 23.5 часа, срок (за 24 часа) наступил полчаса назад
	c := reminderCandidate("u1", 23*time.Hour+30*time.Minute, domain.NotificationPrefs{
		UserID: "u1", HoursBefore: 24, Enabled: true,
	})
	reminderRepo.EXPECT().UpcomingCandidates(mock.Anything).
		Return([]*domain.ReminderCandidate{c}, nil)
	reminderRepo.EXPECT().GetOrCreate(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r *domain.Reminder) (*domain.Reminder, error) {
			return r, nil
		})
	reminderRepo.EXPECT().MarkSent(mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	notifier.EXPECT().NotifyEventReminder(mock.Anything, mock.Anything, mock.Anything).Return()

	sent, err := svc.DispatchDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestReminderService_DispatchDue_SkipsNotYetDue(t *testing.T) {
	reminderRepo := mocks.NewMockReminderRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewReminderService(reminderRepo, notifier, time.Hour, newTestLogger(t))

	// до начала 48 часов, срок за 24 часа ещё не наступил
	c := reminderCandidate("u1", 48*time.Hour, domain.NotificationPrefs{
		UserID: "u1", HoursBefore: 24, Enabled: true,
	})
	reminderRepo.EXPECT().UpcomingCandidates(mock.Anything).
		Return([]*domain.ReminderCandidate{c}, nil)

	sent, err := svc.DispatchDue(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestReminderService_DispatchDue_SkipsDisabledPrefs(t *testing.T) {
	reminderRepo := mocks.NewMockReminderRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewReminderService(reminderRepo, notifier, time.Hour, newTestLogger(t))

	c := reminderCandidate("u1", 23*time.Hour+30*time.Minute, domain.NotificationPrefs{
		UserID: "u1", HoursBefore: 24, Enabled: false,
	})
	reminderRepo.EXPECT().UpcomingCandidates(mock.Anything).
		Return([]*domain.ReminderCandidate{c}, nil)

	sent, err := svc.DispatchDue(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestReminderService_DispatchDue_AlreadySentIsNoop(t *testing.T) {
	reminderRepo := mocks.NewMockReminderRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewReminderService(reminderRepo, notifier, time.Hour, newTestLogger(t))

	c := reminderCandidate("u1", 23*time.Hour+30*time.Minute, domain.NotificationPrefs{
		UserID: "u1", HoursBefore: 24, Enabled: true,
	})
	sentAt := time.Now().UTC().Add(-10 * time.Minute)
	reminderRepo.EXPECT().UpcomingCandidates(mock.Anything).
		Return([]*domain.ReminderCandidate{c}, nil)
	reminderRepo.EXPECT().GetOrCreate(mock.Anything, mock.Anything).
		Return(&domain.Reminder{ID: "r1", EventID: "e1", UserID: "u1", SentAt: &sentAt}, nil)

	sent, err := svc.DispatchDue(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestReminderService_DispatchDue_MarkSentRace(t *testing.T) {
	reminderRepo := mocks.NewMockReminderRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewReminderService(reminderRepo, notifier, time.Hour, newTestLogger(t))

	c := reminderCandidate("u1", 23*time.Hour+30*time.Minute, domain.NotificationPrefs{
		UserID: "u1", HoursBefore: 24, Enabled: true,
	})
	reminderRepo.EXPECT().UpcomingCandidates(mock.Anything).
		Return([]*domain.ReminderCandidate{c}, nil)
	reminderRepo.EXPECT().GetOrCreate(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r *domain.Reminder) (*domain.Reminder, error) {
			return r, nil
		})
	// другой инстанс успел отправить первым
	reminderRepo.EXPECT().MarkSent(mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	sent, err := svc.DispatchDue(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestReminderService_DispatchDue_CandidatesError(t *testing.T) {
	reminderRepo := mocks.NewMockReminderRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewReminderService(reminderRepo, notifier, time.Hour, newTestLogger(t))

	reminderRepo.EXPECT().UpcomingCandidates(mock.Anything).
		Return(nil, errors.New("db error"))

	_, err := svc.DispatchDue(context.Background())

	assert.Error(t, err)
}

func TestReminderService_SetPrefs_Validation(t *testing.T) {
	reminderRepo := mocks.NewMockReminderRepo(t)
	svc := NewReminderService(reminderRepo, mocks.NewMockNotifier(t), time.Hour, newTestLogger(t))

	_, err := svc.SetPrefs(context.Background(), domain.Actor{ID: "u1"}, 0, true, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	reminderRepo.EXPECT().UpsertPrefs(mock.Anything, mock.Anything).Return(nil)
	prefs, err := svc.SetPrefs(context.Background(), domain.Actor{ID: "u1"}, 12, true, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, prefs.HoursBefore)
}
