package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// AnalyticsRepository читает агрегаты поверх events + enrollments + ratings.
// Подзапросы не атомарны между собой: выдача информационная, не транзакционная.
type AnalyticsRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAnalyticsRepo(db *dbpg.DB) *AnalyticsRepository {
	return &AnalyticsRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func windowConds(w domain.AnalyticsWindow, args *[]any) string {
	conds := ""
	if w.From != nil {
		*args = append(*args, *w.From)
		conds += fmt.Sprintf(" AND e.start_date >= $%d", len(*args))
	}
	if w.To != nil {
		*args = append(*args, *w.To)
		conds += fmt.Sprintf(" AND e.start_date <= $%d", len(*args))
	}
	return conds
}

// CategoryTotals возвращает строки в естественном порядке id категории;
// порядок по метрике накладывает сервис.
func (r *AnalyticsRepository) CategoryTotals(ctx context.Context, w domain.AnalyticsWindow) ([]*domain.CategoryStat, error) {
	var args []any
	query := `SELECT c.id, c.name,
			  COUNT(DISTINCT e.id) AS events,
			  COUNT(en.id) AS enrollments,
			  COUNT(en.id) FILTER (WHERE en.attended) AS attendance
			  FROM categories c
			  JOIN event_categories ec ON ec.category_id = c.id
			  JOIN events e ON e.id = ec.event_id AND e.is_active` + windowConds(w, &args) + `
			  JOIN enrollments en ON en.event_id = e.id
			  GROUP BY c.id, c.name
			  ORDER BY c.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}
	defer rows.Close()

	var res []*domain.CategoryStat
	for rows.Next() {
		var s domain.CategoryStat
		if err = rows.Scan(&s.CategoryID, &s.CategoryName, &s.Events, &s.Enrollments, &s.Attendance); err != nil {
			return nil, fmt.Errorf("scan category stat: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *AnalyticsRepository) CreatorTotals(ctx context.Context, w domain.AnalyticsWindow) ([]*domain.CreatorStat, error) {
	var args []any
	query := `SELECT e.creator_id,
			  COUNT(DISTINCT e.id) AS events,
			  COUNT(en.id) AS enrollments,
			  COUNT(en.id) FILTER (WHERE en.attended) AS attendance
			  FROM events e
			  JOIN enrollments en ON en.event_id = e.id
			  WHERE e.is_active` + windowConds(w, &args) + `
			  GROUP BY e.creator_id
			  ORDER BY e.creator_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("creator totals: %w", err)
	}
	defer rows.Close()

	var res []*domain.CreatorStat
	for rows.Next() {
		var s domain.CreatorStat
		if err = rows.Scan(&s.CreatorID, &s.Events, &s.Enrollments, &s.Attendance); err != nil {
			return nil, fmt.Errorf("scan creator stat: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *AnalyticsRepository) EventTotals(ctx context.Context, w domain.AnalyticsWindow) ([]*domain.EventStat, error) {
	var args []any
	query := `SELECT ` + eventColumns + `,
			  (SELECT COUNT(*) FROM enrollments en WHERE en.event_id = e.id) AS enrollments,
			  (SELECT COUNT(*) FROM enrollments en WHERE en.event_id = e.id AND en.attended) AS attendance
			  FROM events e
			  WHERE e.is_active` + windowConds(w, &args)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("event totals: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventStat
	var evs []*domain.Event
	for rows.Next() {
		var s domain.EventStat
		if err = scanEventInto(&s.Event, rows.Scan, &s.Enrollments, &s.Attendance); err != nil {
			return nil, fmt.Errorf("scan event stat: %w", err)
		}
		res = append(res, &s)
		evs = append(evs, &s.Event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachEventCategories(ctx, r.db, r.strategy, evs); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *AnalyticsRepository) CreatorEventAggregates(ctx context.Context, creatorID string) ([]*domain.PopularEvent, error) {
	query := `SELECT ` + eventColumns + `,
			  (SELECT COUNT(*) FROM enrollments en WHERE en.event_id = e.id) AS participants,
			  (SELECT COUNT(*) FROM enrollments en WHERE en.event_id = e.id AND en.attended) AS attended,
			  (SELECT COALESCE(AVG(score), 0) FROM ratings rt WHERE rt.event_id = e.id) AS average_rating,
			  (SELECT COUNT(*) FROM ratings rt WHERE rt.event_id = e.id) AS ratings_count
			  FROM events e
			  WHERE e.creator_id = $1 AND e.is_active`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("creator event aggregates: %w", err)
	}
	defer rows.Close()

	var res []*domain.PopularEvent
	var evs []*domain.Event
	for rows.Next() {
		var p domain.PopularEvent
		err = scanEventInto(&p.Event, rows.Scan,
			&p.Participants, &p.Attended, &p.AverageRating, &p.RatingsCount)
		if err != nil {
			return nil, fmt.Errorf("scan popular event: %w", err)
		}
		res = append(res, &p)
		evs = append(evs, &p.Event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachEventCategories(ctx, r.db, r.strategy, evs); err != nil {
		return nil, err
	}

	return res, nil
}

// AttendanceByCategory возвращает только категории, в которых у создателя
// есть хотя бы одно событие; пустые категории не добиваются нулями.
func (r *AnalyticsRepository) AttendanceByCategory(ctx context.Context, creatorID string) ([]*domain.CategoryAttendance, error) {
	query := `SELECT c.id, c.name,
			  COUNT(DISTINCT e.id) AS events,
			  COUNT(en.id) AS enrolled,
			  COUNT(en.id) FILTER (WHERE en.attended) AS attended
			  FROM categories c
			  JOIN event_categories ec ON ec.category_id = c.id
			  JOIN events e ON e.id = ec.event_id AND e.creator_id = $1 AND e.is_active
			  LEFT JOIN enrollments en ON en.event_id = e.id
			  GROUP BY c.id, c.name
			  ORDER BY c.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("attendance by category: %w", err)
	}
	defer rows.Close()

	var res []*domain.CategoryAttendance
	for rows.Next() {
		var s domain.CategoryAttendance
		if err = rows.Scan(&s.Category.ID, &s.Category.Name, &s.Events, &s.Enrolled, &s.Attended); err != nil {
			return nil, fmt.Errorf("scan category attendance: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *AnalyticsRepository) CreatorEnrollmentTotals(ctx context.Context, creatorID string, since *time.Time) (int, int, error) {
	args := []any{creatorID}
	cond := ""
	if since != nil {
		args = append(args, *since)
		cond = fmt.Sprintf(" AND e.start_date >= $%d", len(args))
	}

	query := `SELECT COUNT(en.id), COUNT(en.id) FILTER (WHERE en.attended)
			  FROM enrollments en
			  JOIN events e ON e.id = en.event_id
			  WHERE e.creator_id = $1 AND e.is_active` + cond

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return 0, 0, fmt.Errorf("creator enrollment totals: %w", err)
	}

	var enrolled, attended int
	if err = row.Scan(&enrolled, &attended); err != nil {
		return 0, 0, fmt.Errorf("scan enrollment totals: %w", err)
	}

	return enrolled, attended, nil
}
