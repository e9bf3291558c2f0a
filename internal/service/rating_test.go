package service

import (
	"context"
	"testing"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func finishedEvent() *domain.Event {
	past := time.Now().UTC().AddDate(0, 0, -2)
	return &domain.Event{
		ID:        "e1",
		CreatorID: "creator",
		StartDate: past,
		StartTime: time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC),
		EndDate:   past,
		EndTime:   time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
}

func upcomingEvent() *domain.Event {
	e := finishedEvent()
	future := time.Now().UTC().AddDate(0, 0, 7)
	e.StartDate = future
	e.EndDate = future
	return e
}

func TestRatingService_Rate_Success(t *testing.T) {
	ratingRepo := mocks.NewMockRatingRepo(t)
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewRatingService(ratingRepo, enrollmentRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(finishedEvent(), nil)
	enrollmentRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").
		Return(&domain.Enrollment{EventID: "e1", UserID: "u1", Attended: true}, nil)
	ratingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	rating, err := svc.Rate(context.Background(), domain.Actor{ID: "u1"}, "e1", 5)

	require.NoError(t, err)
	assert.Equal(t, 5, rating.Score)
	assert.Equal(t, "u1", rating.UserID)
	assert.NotEmpty(t, rating.ID)
}

func TestRatingService_Rate_ScoreOutOfRange(t *testing.T) {
	svc := NewRatingService(mocks.NewMockRatingRepo(t), mocks.NewMockEnrollmentRepo(t), mocks.NewMockEventRepo(t))

	for _, score := range []int{0, -1, 6, 100} {
		_, err := svc.Rate(context.Background(), domain.Actor{ID: "u1"}, "e1", score)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestRatingService_Rate_EventNotFinished(t *testing.T) {
	ratingRepo := mocks.NewMockRatingRepo(t)
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewRatingService(ratingRepo, enrollmentRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)

	_, err := svc.Rate(context.Background(), domain.Actor{ID: "u1"}, "e1", 4)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRatingService_Rate_RequiresAttendance(t *testing.T) {
	ratingRepo := mocks.NewMockRatingRepo(t)
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewRatingService(ratingRepo, enrollmentRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(finishedEvent(), nil).Times(2)

	// записан, но не отмечен
	enrollmentRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").
		Return(&domain.Enrollment{EventID: "e1", UserID: "u1", Attended: false}, nil).Once()
	_, err := svc.Rate(context.Background(), domain.Actor{ID: "u1"}, "e1", 4)
	assert.ErrorIs(t, err, domain.ErrNotAttended)

	// вовсе не записан
	enrollmentRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").
		Return(nil, domain.ErrEnrollmentNotFound).Once()
	_, err = svc.Rate(context.Background(), domain.Actor{ID: "u1"}, "e1", 4)
	assert.ErrorIs(t, err, domain.ErrNotAttended)
}

func TestRatingService_Rate_AlreadyRated(t *testing.T) {
	ratingRepo := mocks.NewMockRatingRepo(t)
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewRatingService(ratingRepo, enrollmentRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(finishedEvent(), nil)
	enrollmentRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").
		Return(&domain.Enrollment{EventID: "e1", UserID: "u1", Attended: true}, nil)
	ratingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyRated)

	_, err := svc.Rate(context.Background(), domain.Actor{ID: "u1"}, "e1", 3)

	assert.ErrorIs(t, err, domain.ErrAlreadyRated)
}

func TestRatingService_Summary(t *testing.T) {
	ratingRepo := mocks.NewMockRatingRepo(t)
	svc := NewRatingService(ratingRepo, mocks.NewMockEnrollmentRepo(t), mocks.NewMockEventRepo(t))

	ratingRepo.EXPECT().Summary(mock.Anything, "e1").
		Return(&domain.RatingSummary{EventID: "e1", Average: 4.5, Count: 2}, nil)

	summary, err := svc.Summary(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 4.5, summary.Average)
	assert.Equal(t, 2, summary.Count)
}
