package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/service/ports"
	"github.com/google/uuid"
)

type CommentService struct {
	comments    ports.CommentRepo
	enrollments ports.EnrollmentRepo
	events      ports.EventRepo
}

func NewCommentService(
	comments ports.CommentRepo,
	enrollments ports.EnrollmentRepo,
	events ports.EventRepo,
) *CommentService {
	return &CommentService{
		comments:    comments,
		enrollments: enrollments,
		events:      events,
	}
}

// Add: комментировать событие могут только отмеченные участники.
func (s *CommentService) Add(ctx context.Context, actor domain.Actor, eventID, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !eventVisibleTo(actor, event) {
		return nil, domain.ErrEventNotFound
	}

	if err = s.requireAttendance(ctx, eventID, actor.ID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		ID:        uuid.New().String(),
		EventID:   eventID,
		AuthorID:  actor.ID,
		Content:   content,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// Update: редактировать комментарий может только его автор.
func (s *CommentService) Update(ctx context.Context, actor domain.Actor, commentID, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != actor.ID {
		return nil, domain.ErrPermissionDenied
	}

	now := time.Now().UTC()
	if err = s.comments.UpdateContent(ctx, commentID, content, now); err != nil {
		return nil, err
	}

	comment.Content = content
	comment.UpdatedAt = now

	return comment, nil
}

// Delete: удалить комментарий может только его автор.
func (s *CommentService) Delete(ctx context.Context, actor domain.Actor, commentID string) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != actor.ID {
		return domain.ErrPermissionDenied
	}

	return s.comments.Delete(ctx, commentID)
}

// ListByEvent возвращает только активные комментарии события.
func (s *CommentService) ListByEvent(ctx context.Context, actor domain.Actor, eventID string) ([]*domain.Comment, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !eventVisibleTo(actor, event) {
		return nil, domain.ErrEventNotFound
	}

	return s.comments.ListActiveByEvent(ctx, eventID)
}

func (s *CommentService) requireAttendance(ctx context.Context, eventID, userID string) error {
	enrollment, err := s.enrollments.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return domain.ErrNotAttended
		}
		return fmt.Errorf("check attendance: %w", err)
	}
	if !enrollment.Attended {
		return domain.ErrNotAttended
	}
	return nil
}
