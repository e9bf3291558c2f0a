package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ModerationService struct {
	reports  ports.ReportRepo
	comments ports.CommentRepo
	events   ports.EventRepo
	notifier ports.Notifier
	logger   logger.Logger
}

func NewModerationService(
	reports ports.ReportRepo,
	comments ports.CommentRepo,
	events ports.EventRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *ModerationService {
	return &ModerationService{
		reports:  reports,
		comments: comments,
		events:   events,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *ModerationService) ReportComment(ctx context.Context, actor domain.Actor, commentID, reason string) (*domain.CommentReport, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}

	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		return nil, fmt.Errorf("check comment: %w", err)
	}

	report := &domain.CommentReport{
		ID:         uuid.New().String(),
		CommentID:  commentID,
		ReporterID: actor.ID,
		Reason:     reason,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.reports.CreateCommentReport(ctx, report); err != nil {
		return nil, err
	}

	// уведомляем администраторов вне цикла запроса
	go s.notifyAdmins(context.WithoutCancel(ctx), "comment", reason)

	return report, nil
}

func (s *ModerationService) ReportEvent(ctx context.Context, actor domain.Actor, eventID, reason string) (*domain.EventReport, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !eventVisibleTo(actor, event) {
		return nil, domain.ErrEventNotFound
	}

	report := &domain.EventReport{
		ID:         uuid.New().String(),
		EventID:    eventID,
		ReporterID: actor.ID,
		Reason:     reason,
		CreatedAt:  time.Now().UTC(),
	}
	if err = s.reports.CreateEventReport(ctx, report); err != nil {
		return nil, err
	}

	go s.notifyAdmins(context.WithoutCancel(ctx), "event", reason)

	return report, nil
}

func (s *ModerationService) ReportedComments(ctx context.Context, actor domain.Actor) ([]*domain.ReportedComment, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrPermissionDenied
	}
	return s.reports.ReportedComments(ctx)
}

func (s *ModerationService) ReportedEvents(ctx context.Context, actor domain.Actor) ([]*domain.ReportedEvent, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrPermissionDenied
	}
	return s.reports.ReportedEvents(ctx)
}

func (s *ModerationService) DisableComment(ctx context.Context, actor domain.Actor, commentID string) error {
	if !actor.IsAdmin {
		return domain.ErrPermissionDenied
	}
	if err := s.comments.Disable(ctx, commentID, actor.ID, time.Now().UTC()); err != nil {
		return err
	}

	s.logger.Info("comment disabled",
		logger.String("comment_id", commentID),
		logger.String("admin_id", actor.ID),
	)

	return nil
}

func (s *ModerationService) RestoreComment(ctx context.Context, actor domain.Actor, commentID string) error {
	if !actor.IsAdmin {
		return domain.ErrPermissionDenied
	}
	if err := s.comments.Restore(ctx, commentID); err != nil {
		return err
	}

	s.logger.Info("comment restored",
		logger.String("comment_id", commentID),
		logger.String("admin_id", actor.ID),
	)

	return nil
}

func (s *ModerationService) notifyAdmins(ctx context.Context, targetKind, reason string) {
	recipients, err := s.reports.AdminRecipients(ctx)
	if err != nil {
		s.logger.Error("list admin recipients", logger.Any("error", err))
		return
	}

	for _, r := range recipients {
		s.notifier.NotifyReportFiled(ctx, r, targetKind, reason)
	}
}
