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

func newModerationService(t *testing.T) (*mocks.MockReportRepo, *mocks.MockCommentRepo, *mocks.MockEventRepo, *mocks.MockNotifier, *ModerationService) {
	t.Helper()
	reportRepo := mocks.NewMockReportRepo(t)
	commentRepo := mocks.NewMockCommentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewModerationService(reportRepo, commentRepo, eventRepo, notifier, newTestLogger(t))
	return reportRepo, commentRepo, eventRepo, notifier, svc
}

func TestModerationService_ReportComment_NotifiesAdmins(t *testing.T) {
	reportRepo, commentRepo, _, notifier, svc := newModerationService(t)

	commentRepo.EXPECT().GetByID(mock.Anything, "c1").
		Return(&domain.Comment{ID: "c1", AuthorID: "u9"}, nil)
	reportRepo.EXPECT().CreateCommentReport(mock.Anything, mock.Anything).Return(nil)

	admins := []domain.Recipient{{UserID: "a1"}, {UserID: "a2"}}
	reportRepo.EXPECT().AdminRecipients(mock.Anything).Return(admins, nil)
	notifier.EXPECT().NotifyReportFiled(mock.Anything, admins[0], "comment", "spam").Return()
	notifier.EXPECT().NotifyReportFiled(mock.Anything, admins[1], "comment", "spam").Return()

	report, err := svc.ReportComment(context.Background(), domain.Actor{ID: "u1"}, "c1", "spam")

	require.NoError(t, err)
	assert.Equal(t, "u1", report.ReporterID)
	assert.Equal(t, "spam", report.Reason)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestModerationService_ReportComment_ReasonRequired(t *testing.T) {
	_, _, _, _, svc := newModerationService(t)

	_, err := svc.ReportComment(context.Background(), domain.Actor{ID: "u1"}, "c1", "  ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestModerationService_ReportComment_Duplicate(t *testing.T) {
	reportRepo, commentRepo, _, _, svc := newModerationService(t)

	commentRepo.EXPECT().GetByID(mock.Anything, "c1").
		Return(&domain.Comment{ID: "c1"}, nil)
	reportRepo.EXPECT().CreateCommentReport(mock.Anything, mock.Anything).
		Return(domain.ErrAlreadyReported)

	_, err := svc.ReportComment(context.Background(), domain.Actor{ID: "u1"}, "c1", "spam")

	assert.ErrorIs(t, err, domain.ErrAlreadyReported)
}

func TestModerationService_ReportEvent_NotifyFailureDoesNotSurface(t *testing.T) {
	reportRepo, _, eventRepo, _, svc := newModerationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", IsActive: true}, nil)
	reportRepo.EXPECT().CreateEventReport(mock.Anything, mock.Anything).Return(nil)
	reportRepo.EXPECT().AdminRecipients(mock.Anything).
		Return(nil, errors.New("db down"))

	report, err := svc.ReportEvent(context.Background(), domain.Actor{ID: "u1"}, "e1", "engañoso")

	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestModerationService_ReportedComments_AdminOnly(t *testing.T) {
	reportRepo, _, _, _, svc := newModerationService(t)

	_, err := svc.ReportedComments(context.Background(), domain.Actor{ID: "u1"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	reported := []*domain.ReportedComment{{
		Comment:     domain.Comment{ID: "c1"},
		ReportCount: 3,
	}}
	reportRepo.EXPECT().ReportedComments(mock.Anything).Return(reported, nil)

	res, err := svc.ReportedComments(context.Background(), domain.Actor{ID: "a1", IsAdmin: true})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 3, res[0].ReportCount)
}

func TestModerationService_ReportedEvents_AdminOnly(t *testing.T) {
	reportRepo, _, _, _, svc := newModerationService(t)

	_, err := svc.ReportedEvents(context.Background(), domain.Actor{ID: "u1"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	reportRepo.EXPECT().ReportedEvents(mock.Anything).Return(nil, nil)
	_, err = svc.ReportedEvents(context.Background(), domain.Actor{ID: "a1", IsAdmin: true})
	assert.NoError(t, err)
}

func TestModerationService_DisableComment_AdminOnly(t *testing.T) {
	_, commentRepo, _, _, svc := newModerationService(t)

	err := svc.DisableComment(context.Background(), domain.Actor{ID: "u1"}, "c1")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	commentRepo.EXPECT().Disable(mock.Anything, "c1", "a1", mock.Anything).Return(nil)
	err = svc.DisableComment(context.Background(), domain.Actor{ID: "a1", IsAdmin: true}, "c1")
	assert.NoError(t, err)
}

func TestModerationService_RestoreComment(t *testing.T) {
	_, commentRepo, _, _, svc := newModerationService(t)

	commentRepo.EXPECT().Restore(mock.Anything, "c1").Return(domain.ErrNotDisabled)

	err := svc.RestoreComment(context.Background(), domain.Actor{ID: "a1", IsAdmin: true}, "c1")

	assert.ErrorIs(t, err, domain.ErrNotDisabled)
}
