package ports

import (
	"context"
	"time"

	"github.com/eventify-app/backend/internal/domain"
)

// AnalyticsRepo возвращает неотсортированные агрегаты; порядок и лимиты
// применяет сервис.
type AnalyticsRepo interface {
	CategoryTotals(ctx context.Context, w domain.AnalyticsWindow) ([]*domain.CategoryStat, error)
	CreatorTotals(ctx context.Context, w domain.AnalyticsWindow) ([]*domain.CreatorStat, error)
	EventTotals(ctx context.Context, w domain.AnalyticsWindow) ([]*domain.EventStat, error)
	CreatorEventAggregates(ctx context.Context, creatorID string) ([]*domain.PopularEvent, error)
	AttendanceByCategory(ctx context.Context, creatorID string) ([]*domain.CategoryAttendance, error)
	CreatorEnrollmentTotals(ctx context.Context, creatorID string, since *time.Time) (enrolled, attended int, err error)
}
