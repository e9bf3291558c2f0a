package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/service/ports"
	"github.com/google/uuid"
)

type RatingService struct {
	ratings     ports.RatingRepo
	enrollments ports.EnrollmentRepo
	events      ports.EventRepo
}

func NewRatingService(
	ratings ports.RatingRepo,
	enrollments ports.EnrollmentRepo,
	events ports.EventRepo,
) *RatingService {
	return &RatingService{
		ratings:     ratings,
		enrollments: enrollments,
		events:      events,
	}
}

// Rate: оценить событие может только посетивший его участник, один раз и
// только после окончания события.
func (s *RatingService) Rate(ctx context.Context, actor domain.Actor, eventID string, score int) (*domain.Rating, error) {
	if score < domain.MinRatingScore || score > domain.MaxRatingScore {
		return nil, fmt.Errorf("%w: score must be between %d and %d",
			domain.ErrValidation, domain.MinRatingScore, domain.MaxRatingScore)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !eventVisibleTo(actor, event) {
		return nil, domain.ErrEventNotFound
	}

	now := time.Now().UTC()
	if event.StatusAt(now) != domain.EventStatusFinished {
		return nil, fmt.Errorf("%w: event has not finished yet", domain.ErrValidation)
	}

	if err = s.requireAttendance(ctx, eventID, actor.ID); err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    actor.ID,
		Score:     score,
		CreatedAt: now,
	}
	if err = s.ratings.Create(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}

func (s *RatingService) Summary(ctx context.Context, eventID string) (*domain.RatingSummary, error) {
	return s.ratings.Summary(ctx, eventID)
}

func (s *RatingService) requireAttendance(ctx context.Context, eventID, userID string) error {
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
