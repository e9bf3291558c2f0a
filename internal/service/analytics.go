package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/service/ports"
)

const (
	OrderByEnrollments = "enrollments"
	OrderByAttendance  = "attendance"
	OrderByEvents      = "events"

	popularEventsLimit = 5
	recentStatsWindow  = 30 * 24 * time.Hour
)

type AnalyticsService struct {
	analytics ports.AnalyticsRepo
	events    ports.EventRepo
}

func NewAnalyticsService(analytics ports.AnalyticsRepo, events ports.EventRepo) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, events: events}
}

// TopCategories сортирует категории по выбранной метрике; при равенстве
// сохраняется естественный порядок категорий.
func (s *AnalyticsService) TopCategories(ctx context.Context, w domain.AnalyticsWindow, by string, limit int) ([]*domain.CategoryStat, error) {
	if by != OrderByEnrollments && by != OrderByAttendance {
		return nil, fmt.Errorf("%w: unknown order %q", domain.ErrValidation, by)
	}

	stats, err := s.analytics.CategoryTotals(ctx, w)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if by == OrderByAttendance {
			return stats[i].Attendance > stats[j].Attendance
		}
		return stats[i].Enrollments > stats[j].Enrollments
	})

	return clip(stats, limit), nil
}

func (s *AnalyticsService) TopCreators(ctx context.Context, w domain.AnalyticsWindow, by string, limit int) ([]*domain.CreatorStat, error) {
	if by != OrderByEnrollments && by != OrderByAttendance && by != OrderByEvents {
		return nil, fmt.Errorf("%w: unknown order %q", domain.ErrValidation, by)
	}

	stats, err := s.analytics.CreatorTotals(ctx, w)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(stats, func(i, j int) bool {
		switch by {
		case OrderByAttendance:
			return stats[i].Attendance > stats[j].Attendance
		case OrderByEvents:
			return stats[i].Events > stats[j].Events
		default:
			return stats[i].Enrollments > stats[j].Enrollments
		}
	})

	return clip(stats, limit), nil
}

// TopEvents при равной метрике ставит более поздние события выше.
func (s *AnalyticsService) TopEvents(ctx context.Context, w domain.AnalyticsWindow, by string, limit int) ([]*domain.EventStat, error) {
	if by != OrderByEnrollments && by != OrderByAttendance {
		return nil, fmt.Errorf("%w: unknown order %q", domain.ErrValidation, by)
	}

	stats, err := s.analytics.EventTotals(ctx, w)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(stats, func(i, j int) bool {
		vi, vj := stats[i].Enrollments, stats[j].Enrollments
		if by == OrderByAttendance {
			vi, vj = stats[i].Attendance, stats[j].Attendance
		}
		if vi != vj {
			return vi > vj
		}
		return stats[i].Event.StartsAt().After(stats[j].Event.StartsAt())
	})

	return clip(stats, limit), nil
}

// MyPopularEvents отбирает топ-5 событий создателя; события без участников не
// попадают в рейтинг вовсе.
func (s *AnalyticsService) MyPopularEvents(ctx context.Context, actor domain.Actor) ([]*domain.PopularEvent, error) {
	aggregates, err := s.analytics.CreatorEventAggregates(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	popular := make([]*domain.PopularEvent, 0, len(aggregates))
	for _, a := range aggregates {
		if a.Participants == 0 {
			continue
		}
		a.AttendanceRate = ratePercent(a.Attended, a.Participants)
		popular = append(popular, a)
	}

	sort.SliceStable(popular, func(i, j int) bool {
		if popular[i].Participants != popular[j].Participants {
			return popular[i].Participants > popular[j].Participants
		}
		if popular[i].AverageRating != popular[j].AverageRating {
			return popular[i].AverageRating > popular[j].AverageRating
		}
		return popular[i].AttendanceRate > popular[j].AttendanceRate
	})

	return clip(popular, popularEventsLimit), nil
}

func (s *AnalyticsService) AttendeesByCategory(ctx context.Context, actor domain.Actor) ([]*domain.CategoryAttendance, error) {
	rows, err := s.analytics.AttendanceByCategory(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.CategoryAttendance, 0, len(rows))
	for _, r := range rows {
		if r.Events == 0 {
			continue
		}
		r.AttendanceRate = ratePercent(r.Attended, r.Enrolled)
		out = append(out, r)
	}

	return out, nil
}

// MyEventStats считает сводку создателя: всего событий и события за последние 30 дней.
func (s *AnalyticsService) MyEventStats(ctx context.Context, actor domain.Actor) (*domain.CreatorEventStats, error) {
	total, err := s.events.CountByCreator(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	since := time.Now().UTC().Add(-recentStatsWindow)
	recent, err := s.events.List(ctx, actor.ID, domain.EventFilter{
		CreatorID: actor.ID,
		FromDate:  &since,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for _, d := range recent {
		d.Status = d.Event.StatusAt(now)
	}

	return &domain.CreatorEventStats{
		TotalEvents:     total,
		EventsLastMonth: len(recent),
		RecentEvents:    recent,
	}, nil
}

func (s *AnalyticsService) MyAttendeeStats(ctx context.Context, actor domain.Actor) (*domain.CreatorAttendeeStats, error) {
	enrolled, attended, err := s.analytics.CreatorEnrollmentTotals(ctx, actor.ID, nil)
	if err != nil {
		return nil, err
	}

	since := time.Now().UTC().Add(-recentStatsWindow)
	recentEnrolled, recentAttended, err := s.analytics.CreatorEnrollmentTotals(ctx, actor.ID, &since)
	if err != nil {
		return nil, err
	}

	return &domain.CreatorAttendeeStats{
		TotalEnrolled:     enrolled,
		TotalAttended:     attended,
		EnrolledLastMonth: recentEnrolled,
		AttendedLastMonth: recentAttended,
	}, nil
}

// ratePercent считает долю attended от base в процентах с округлением до сотых.
func ratePercent(attended, base int) float64 {
	if base == 0 {
		return 0
	}
	return math.Round(float64(attended)/float64(base)*10000) / 100
}

func clip[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
