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

func TestAnalyticsService_TopCategories_OrderAndTieBreak(t *testing.T) {
	analyticsRepo := mocks.NewMockAnalyticsRepo(t)
	svc := NewAnalyticsService(analyticsRepo, mocks.NewMockEventRepo(t))

	// репозиторий отдаёт в естественном порядке категорий
	analyticsRepo.EXPECT().CategoryTotals(mock.Anything, mock.Anything).Return([]*domain.CategoryStat{
		{CategoryID: "arte", Enrollments: 4, Attendance: 1},
		{CategoryID: "cultura", Enrollments: 9, Attendance: 2},
		{CategoryID: "deportes", Enrollments: 4, Attendance: 3},
	}, nil)

	stats, err := svc.TopCategories(context.Background(), domain.AnalyticsWindow{}, "enrollments", 10)

	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, "cultura", stats[0].CategoryID)
	// при равных enrollments сохраняется естественный порядок
	assert.Equal(t, "arte", stats[1].CategoryID)
	assert.Equal(t, "deportes", stats[2].CategoryID)
}

func TestAnalyticsService_TopCategories_UnknownOrder(t *testing.T) {
	svc := NewAnalyticsService(mocks.NewMockAnalyticsRepo(t), mocks.NewMockEventRepo(t))

	_, err := svc.TopCategories(context.Background(), domain.AnalyticsWindow{}, "likes", 10)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAnalyticsService_TopCreators_ByAttendanceWithLimit(t *testing.T) {
	analyticsRepo := mocks.NewMockAnalyticsRepo(t)
	svc := NewAnalyticsService(analyticsRepo, mocks.NewMockEventRepo(t))

	analyticsRepo.EXPECT().CreatorTotals(mock.Anything, mock.Anything).Return([]*domain.CreatorStat{
		{CreatorID: "a", Attendance: 4},
		{CreatorID: "b", Attendance: 5},
		{CreatorID: "c", Attendance: 1},
	}, nil)

	stats, err := svc.TopCreators(context.Background(), domain.AnalyticsWindow{}, "attendance", 2)

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "b", stats[0].CreatorID)
	assert.Equal(t, "a", stats[1].CreatorID)
}

func TestAnalyticsService_TopEvents_TieBreaksByLaterStart(t *testing.T) {
	analyticsRepo := mocks.NewMockAnalyticsRepo(t)
	svc := NewAnalyticsService(analyticsRepo, mocks.NewMockEventRepo(t))

	older := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	analyticsRepo.EXPECT().EventTotals(mock.Anything, mock.Anything).Return([]*domain.EventStat{
		{Event: domain.Event{ID: "old", StartDate: older}, Enrollments: 7},
		{Event: domain.Event{ID: "new", StartDate: newer}, Enrollments: 7},
	}, nil)

	stats, err := svc.TopEvents(context.Background(), domain.AnalyticsWindow{}, "enrollments", 10)

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "new", stats[0].Event.ID)
	assert.Equal(t, "old", stats[1].Event.ID)
}

func TestAnalyticsService_MyPopularEvents_ExcludesZeroParticipants(t *testing.T) {
	analyticsRepo := mocks.NewMockAnalyticsRepo(t)
	svc := NewAnalyticsService(analyticsRepo, mocks.NewMockEventRepo(t))

	analyticsRepo.EXPECT().CreatorEventAggregates(mock.Anything, "u1").Return([]*domain.PopularEvent{
		{Event: domain.Event{ID: "empty"}, Participants: 0},
		{Event: domain.Event{ID: "small"}, Participants: 3, Attended: 1},
		{Event: domain.Event{ID: "big"}, Participants: 10, Attended: 9},
	}, nil)

	popular, err := svc.MyPopularEvents(context.Background(), domain.Actor{ID: "u1"})

	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, "big", popular[0].Event.ID)
	assert.Equal(t, 90.0, popular[0].AttendanceRate)
	assert.Equal(t, "small", popular[1].Event.ID)
	assert.Equal(t, 33.33, popular[1].AttendanceRate)
}

func TestAnalyticsService_MyPopularEvents_RatingBreaksParticipantTie(t *testing.T) {
	analyticsRepo := mocks.NewMockAnalyticsRepo(t)
	svc := NewAnalyticsService(analyticsRepo, mocks.NewMockEventRepo(t))

	analyticsRepo.EXPECT().CreatorEventAggregates(mock.Anything, "u1").Return([]*domain.PopularEvent{
		{Event: domain.Event{ID: "meh"}, Participants: 5, AverageRating: 3.2},
		{Event: domain.Event{ID: "loved"}, Participants: 5, AverageRating: 4.8},
	}, nil)

	popular, err := svc.MyPopularEvents(context.Background(), domain.Actor{ID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, "loved", popular[0].Event.ID)
}

func TestAnalyticsService_AttendeesByCategory_RateZeroWhenNoEnrollments(t *testing.T) {
	analyticsRepo := mocks.NewMockAnalyticsRepo(t)
	svc := NewAnalyticsService(analyticsRepo, mocks.NewMockEventRepo(t))

	analyticsRepo.EXPECT().AttendanceByCategory(mock.Anything, "u1").Return([]*domain.CategoryAttendance{
		{Category: domain.Category{ID: "arte"}, Events: 2, Enrolled: 0, Attended: 0},
		{Category: domain.Category{ID: "social"}, Events: 1, Enrolled: 4, Attended: 3},
	}, nil)

	rows, err := svc.AttendeesByCategory(context.Background(), domain.Actor{ID: "u1"})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0.0, rows[0].AttendanceRate)
	assert.Equal(t, 75.0, rows[1].AttendanceRate)
}

func TestAnalyticsService_MyEventStats(t *testing.T) {
	analyticsRepo := mocks.NewMockAnalyticsRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewAnalyticsService(analyticsRepo, eventRepo)

	eventRepo.EXPECT().CountByCreator(mock.Anything, "u1").Return(12, nil)
	eventRepo.EXPECT().List(mock.Anything, "u1", mock.Anything).
		Return([]*domain.EventDetails{{Event: domain.Event{ID: "recent"}}}, nil)

	stats, err := svc.MyEventStats(context.Background(), domain.Actor{ID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalEvents)
	assert.Equal(t, 1, stats.EventsLastMonth)
	require.Len(t, stats.RecentEvents, 1)
}

func TestAnalyticsService_MyAttendeeStats(t *testing.T) {
	analyticsRepo := mocks.NewMockAnalyticsRepo(t)
	svc := NewAnalyticsService(analyticsRepo, mocks.NewMockEventRepo(t))

	analyticsRepo.EXPECT().CreatorEnrollmentTotals(mock.Anything, "u1", (*time.Time)(nil)).
		Return(40, 25, nil)
	analyticsRepo.EXPECT().CreatorEnrollmentTotals(mock.Anything, "u1", mock.AnythingOfType("*time.Time")).
		Return(8, 6, nil)

	stats, err := svc.MyAttendeeStats(context.Background(), domain.Actor{ID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, 40, stats.TotalEnrolled)
	assert.Equal(t, 25, stats.TotalAttended)
	assert.Equal(t, 8, stats.EnrolledLastMonth)
	assert.Equal(t, 6, stats.AttendedLastMonth)
}
