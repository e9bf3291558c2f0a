package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `e.id, e.title, e.description, e.place, e.cover_url,
		e.start_date, to_char(e.start_time, 'HH24:MI:SS'),
		e.end_date, to_char(e.end_time, 'HH24:MI:SS'),
		e.capacity, e.creator_id, e.is_active, e.disabled_at, e.disabled_by,
		e.created_at, e.updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO events
			  (id, title, description, place, cover_url, start_date, start_time,
			   end_date, end_time, capacity, creator_id, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE, $12, $12)`
	now := time.Now().UTC()
	_, err = tx.ExecContext(
		ctx, query,
		e.ID, e.Title, e.Description, e.Place, e.CoverURL,
		e.StartDate, e.StartTime.Format("15:04:05"),
		e.EndDate, e.EndTime.Format("15:04:05"),
		nullableInt(e.Capacity), e.CreatorID, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	if err = insertCategoryLinks(ctx, tx, e.ID, e.Categories); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE events
			  SET title = $2, description = $3, place = $4, cover_url = $5,
			      start_date = $6, start_time = $7, end_date = $8, end_time = $9,
			      capacity = $10, updated_at = now()
			  WHERE id = $1`
	res, err := tx.ExecContext(
		ctx, query,
		e.ID, e.Title, e.Description, e.Place, e.CoverURL,
		e.StartDate, e.StartTime.Format("15:04:05"),
		e.EndDate, e.EndTime.Format("15:04:05"),
		nullableInt(e.Capacity),
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM event_categories WHERE event_id = $1`, e.ID); err != nil {
		return fmt.Errorf("clear category links: %w", err)
	}
	if err = insertCategoryLinks(ctx, tx, e.ID, e.Categories); err != nil {
		return err
	}

	return tx.Commit()
}

func insertCategoryLinks(ctx context.Context, tx *sql.Tx, eventID string, categories []domain.Category) error {
	for _, c := range categories {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO event_categories (event_id, category_id) VALUES ($1, $2)`,
			eventID, c.ID,
		)
		if err != nil {
			return fmt.Errorf("insert category link: %w", err)
		}
	}
	return nil
}

// GetByID возвращает событие в любом состоянии жизненного цикла; видимость
// для вызывающего решает сервис.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	if err = r.attachCategories(ctx, []*domain.Event{e}); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *EventRepository) GetDetails(ctx context.Context, id, viewerID string) (*domain.EventDetails, error) {
	query := `SELECT ` + eventColumns + `,
			  (SELECT COUNT(*) FROM enrollments en WHERE en.event_id = e.id) AS participants_count,
			  EXISTS(SELECT 1 FROM enrollments x WHERE x.event_id = e.id AND x.user_id = $2) AS is_enrolled
			  FROM events e
			  WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, viewerID)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	var d domain.EventDetails
	if err = scanEventInto(&d.Event, row.Scan, &d.ParticipantsCount, &d.IsEnrolled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}

	if err = r.attachCategories(ctx, []*domain.Event{&d.Event}); err != nil {
		return nil, err
	}

	return &d, nil
}

// List возвращает только активные события; participants_count и is_enrolled
// вычисляются на каждый запрос.
func (r *EventRepository) List(ctx context.Context, viewerID string, f domain.EventFilter) ([]*domain.EventDetails, error) {
	conds := []string{"e.is_active"}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	enrolled := "FALSE"
	if viewerID != "" {
		enrolled = fmt.Sprintf(
			"EXISTS(SELECT 1 FROM enrollments x WHERE x.event_id = e.id AND x.user_id = %s)",
			arg(viewerID),
		)
	}

	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(e.title ILIKE %s OR e.place ILIKE %s OR e.description ILIKE %s)", p, p, p,
		))
	}
	if f.FromDate != nil {
		conds = append(conds, "e.start_date >= "+arg(*f.FromDate))
	}
	if f.ToDate != nil {
		conds = append(conds, "e.start_date <= "+arg(*f.ToDate))
	}
	if f.EndsFrom != nil {
		conds = append(conds, "e.end_date >= "+arg(*f.EndsFrom))
	}
	if f.CreatorID != "" {
		conds = append(conds, "e.creator_id = "+arg(f.CreatorID))
	}
	if f.EnrolledUserID != "" {
		conds = append(conds, fmt.Sprintf(
			"EXISTS(SELECT 1 FROM enrollments m WHERE m.event_id = e.id AND m.user_id = %s)",
			arg(f.EnrolledUserID),
		))
	}

	order := "e.start_date DESC, e.start_time DESC"
	if f.OrderAsc {
		order = "e.start_date ASC, e.start_time ASC"
	}

	query := `SELECT ` + eventColumns + `,
			  (SELECT COUNT(*) FROM enrollments en WHERE en.event_id = e.id) AS participants_count,
			  ` + enrolled + ` AS is_enrolled
			  FROM events e
			  WHERE ` + strings.Join(conds, " AND ") + `
			  ORDER BY ` + order

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventDetails
	var evs []*domain.Event
	for rows.Next() {
		var d domain.EventDetails
		if err = scanEventInto(&d.Event, rows.Scan, &d.ParticipantsCount, &d.IsEnrolled); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &d)
		evs = append(evs, &d.Event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = r.attachCategories(ctx, evs); err != nil {
		return nil, err
	}

	return res, nil
}

// Disable переводит active -> disabled; повторный вызов даёт конфликт, не no-op.
func (r *EventRepository) Disable(ctx context.Context, id, by string, at time.Time) error {
	query := `UPDATE events
			  SET is_active = FALSE, disabled_at = $2, disabled_by = $3, updated_at = now()
			  WHERE id = $1 AND is_active`
	return r.toggleLifecycle(ctx, id, query, domain.ErrAlreadyDisabled, at, by)
}

func (r *EventRepository) Restore(ctx context.Context, id string) error {
	query := `UPDATE events
			  SET is_active = TRUE, disabled_at = NULL, disabled_by = NULL, updated_at = now()
			  WHERE id = $1 AND NOT is_active`
	return r.toggleLifecycle(ctx, id, query, domain.ErrNotDisabled)
}

func (r *EventRepository) toggleLifecycle(ctx context.Context, id, query string, conflict error, extra ...any) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, append([]any{id}, extra...)...)
	if err != nil {
		return fmt.Errorf("toggle event lifecycle: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("toggle event rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
			`SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id)
		if err != nil {
			return fmt.Errorf("check event exists: %w", err)
		}
		if err = row.Scan(&exists); err != nil {
			return fmt.Errorf("scan event exists: %w", err)
		}
		if !exists {
			return domain.ErrEventNotFound
		}
		return conflict
	}
	return nil
}

func (r *EventRepository) CountByCreator(ctx context.Context, creatorID string) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT COUNT(*) FROM events WHERE creator_id = $1 AND is_active`, creatorID)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan events count: %w", err)
	}
	return n, nil
}

func (r *EventRepository) attachCategories(ctx context.Context, events []*domain.Event) error {
	return attachEventCategories(ctx, r.db, r.strategy, events)
}

func attachEventCategories(ctx context.Context, db *dbpg.DB, strategy retry.Strategy, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]string, 0, len(events))
	byID := make(map[string]*domain.Event, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
		byID[e.ID] = e
	}

	query := `SELECT ec.event_id, c.id, c.name
			  FROM event_categories ec
			  JOIN categories c ON c.id = ec.category_id
			  WHERE ec.event_id = ANY($1)
			  ORDER BY c.id`
	rows, err := db.QueryWithRetry(ctx, strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list event categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eventID string
		var c domain.Category
		if err = rows.Scan(&eventID, &c.ID, &c.Name); err != nil {
			return fmt.Errorf("scan event category: %w", err)
		}
		if e, ok := byID[eventID]; ok {
			e.Categories = append(e.Categories, c)
		}
	}

	return rows.Err()
}

type scanFunc func(dest ...any) error

func scanEvent(scan scanFunc) (*domain.Event, error) {
	var e domain.Event
	if err := scanEventInto(&e, scan); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEventInto(e *domain.Event, scan scanFunc, extra ...any) error {
	var (
		startTime, endTime string
		capacity           sql.NullInt64
		disabledAt         sql.NullTime
		disabledBy         sql.NullString
	)

	dest := []any{
		&e.ID, &e.Title, &e.Description, &e.Place, &e.CoverURL,
		&e.StartDate, &startTime, &e.EndDate, &endTime,
		&capacity, &e.CreatorID, &e.IsActive, &disabledAt, &disabledBy,
		&e.CreatedAt, &e.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := scan(dest...); err != nil {
		return err
	}

	var err error
	if e.StartTime, err = parseTimeOfDay(startTime); err != nil {
		return err
	}
	if e.EndTime, err = parseTimeOfDay(endTime); err != nil {
		return err
	}
	if capacity.Valid {
		v := int(capacity.Int64)
		e.Capacity = &v
	}
	if disabledAt.Valid {
		t := disabledAt.Time
		e.DisabledAt = &t
	}
	if disabledBy.Valid {
		s := disabledBy.String
		e.DisabledBy = &s
	}

	return nil
}

func parseTimeOfDay(s string) (time.Time, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return t, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
