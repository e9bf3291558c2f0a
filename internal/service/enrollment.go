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

type EnrollmentService struct {
	enrollments ports.EnrollmentRepo
	events      ports.EventRepo
	logger      logger.Logger
}

func NewEnrollmentService(
	enrollments ports.EnrollmentRepo,
	events ports.EventRepo,
	logger logger.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		events:      events,
		logger:      logger,
	}
}

func (s *EnrollmentService) Enroll(ctx context.Context, actor domain.Actor, eventID string) (*domain.Enrollment, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !eventVisibleTo(actor, event) {
		return nil, domain.ErrEventNotFound
	}

	enrollment := &domain.Enrollment{
		ID:         uuid.New().String(),
		EventID:    eventID,
		UserID:     actor.ID,
		Attended:   false,
		EnrolledAt: time.Now().UTC(),
	}
	if err = s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	s.logger.Info("user enrolled",
		logger.String("event_id", eventID),
		logger.String("user_id", actor.ID),
	)

	return enrollment, nil
}

// CheckIn отмечает посещение ровно один раз; повторный чек-ин того же
// участника выполняется как успешный no-op. Возвращает true, если посещение уже было
// отмечено ранее.
func (s *EnrollmentService) CheckIn(ctx context.Context, actor domain.Actor, eventID, participantID string) (bool, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("check event: %w", err)
	}
	if !actor.CanManage(event.CreatorID) {
		return false, domain.ErrPermissionDenied
	}

	already, err := s.enrollments.SetAttended(ctx, eventID, participantID)
	if err != nil {
		return false, err
	}

	if !already {
		s.logger.Info("attendance recorded",
			logger.String("event_id", eventID),
			logger.String("participant_id", participantID),
			logger.String("checked_in_by", actor.ID),
		)
	}

	return already, nil
}

func (s *EnrollmentService) ListParticipants(ctx context.Context, viewer domain.Actor, eventID string) ([]*domain.Enrollment, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !eventVisibleTo(viewer, event) {
		return nil, domain.ErrEventNotFound
	}

	return s.enrollments.ListByEvent(ctx, eventID)
}
