package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReportRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReportRepo(db *dbpg.DB) *ReportRepository {
	return &ReportRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReportRepository) CreateCommentReport(ctx context.Context, rep *domain.CommentReport) error {
	query := `INSERT INTO comment_reports (id, comment_id, reporter_id, reason, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rep.ID, rep.CommentID, rep.ReporterID, rep.Reason, rep.CreatedAt,
	)
	return mapReportInsertErr(err, "insert comment report")
}

func (r *ReportRepository) CreateEventReport(ctx context.Context, rep *domain.EventReport) error {
	query := `INSERT INTO event_reports (id, event_id, reporter_id, reason, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rep.ID, rep.EventID, rep.ReporterID, rep.Reason, rep.CreatedAt,
	)
	return mapReportInsertErr(err, "insert event report")
}

func mapReportInsertErr(err error, op string) error {
	if err == nil {
		return nil
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrAlreadyReported
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ReportedComments группирует жалобы по комментарию и сортирует по дате
// последней жалобы, свежие первыми.
func (r *ReportRepository) ReportedComments(ctx context.Context) ([]*domain.ReportedComment, error) {
	query := `SELECT ` + commentColumns + `,
			  COUNT(rp.id) AS report_count,
			  MAX(rp.created_at) AS latest_report_date
			  FROM comments c
			  JOIN comment_reports rp ON rp.comment_id = c.id
			  GROUP BY c.id
			  ORDER BY latest_report_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list reported comments: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReportedComment
	var ids []string
	for rows.Next() {
		var (
			c          domain.Comment
			disabledAt sql.NullTime
			disabledBy sql.NullString
			item       domain.ReportedComment
		)
		err = rows.Scan(
			&c.ID, &c.EventID, &c.AuthorID, &c.Content, &c.IsActive,
			&disabledAt, &disabledBy, &c.CreatedAt, &c.UpdatedAt,
			&item.ReportCount, &item.LatestReportAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reported comment: %w", err)
		}
		if disabledAt.Valid {
			t := disabledAt.Time
			c.DisabledAt = &t
		}
		if disabledBy.Valid {
			s := disabledBy.String
			c.DisabledBy = &s
		}
		item.Comment = c
		res = append(res, &item)
		ids = append(ids, c.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return res, nil
	}

	reports, err := r.commentReportsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, item := range res {
		item.Reports = reports[item.Comment.ID]
	}

	return res, nil
}

func (r *ReportRepository) commentReportsFor(ctx context.Context, commentIDs []string) (map[string][]domain.CommentReport, error) {
	query := `SELECT id, comment_id, reporter_id, reason, created_at
			  FROM comment_reports
			  WHERE comment_id = ANY($1)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(commentIDs))
	if err != nil {
		return nil, fmt.Errorf("list comment reports: %w", err)
	}
	defer rows.Close()

	res := make(map[string][]domain.CommentReport)
	for rows.Next() {
		var rep domain.CommentReport
		if err = rows.Scan(&rep.ID, &rep.CommentID, &rep.ReporterID, &rep.Reason, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment report: %w", err)
		}
		res[rep.CommentID] = append(res[rep.CommentID], rep)
	}

	return res, rows.Err()
}

func (r *ReportRepository) ReportedEvents(ctx context.Context) ([]*domain.ReportedEvent, error) {
	query := `SELECT ` + eventColumns + `,
			  COUNT(rp.id) AS report_count,
			  MAX(rp.created_at) AS latest_report_date
			  FROM events e
			  JOIN event_reports rp ON rp.event_id = e.id
			  GROUP BY e.id
			  ORDER BY latest_report_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list reported events: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReportedEvent
	var ids []string
	for rows.Next() {
		var item domain.ReportedEvent
		if err = scanEventInto(&item.Event, rows.Scan, &item.ReportCount, &item.LatestReportAt); err != nil {
			return nil, fmt.Errorf("scan reported event: %w", err)
		}
		res = append(res, &item)
		ids = append(ids, item.Event.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return res, nil
	}

	reports, err := r.eventReportsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, item := range res {
		item.Reports = reports[item.Event.ID]
	}

	return res, nil
}

func (r *ReportRepository) eventReportsFor(ctx context.Context, eventIDs []string) (map[string][]domain.EventReport, error) {
	query := `SELECT id, event_id, reporter_id, reason, created_at
			  FROM event_reports
			  WHERE event_id = ANY($1)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(eventIDs))
	if err != nil {
		return nil, fmt.Errorf("list event reports: %w", err)
	}
	defer rows.Close()

	res := make(map[string][]domain.EventReport)
	for rows.Next() {
		var rep domain.EventReport
		if err = rows.Scan(&rep.ID, &rep.EventID, &rep.ReporterID, &rep.Reason, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event report: %w", err)
		}
		res[rep.EventID] = append(res[rep.EventID], rep)
	}

	return res, rows.Err()
}

func (r *ReportRepository) AdminRecipients(ctx context.Context) ([]domain.Recipient, error) {
	query := `SELECT a.user_id, p.telegram_chat_id
			  FROM administrators a
			  LEFT JOIN notification_prefs p ON p.user_id = a.user_id
			  ORDER BY a.user_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list admin recipients: %w", err)
	}
	defer rows.Close()

	var res []domain.Recipient
	for rows.Next() {
		var (
			rec    domain.Recipient
			chatID sql.NullInt64
		)
		if err = rows.Scan(&rec.UserID, &chatID); err != nil {
			return nil, fmt.Errorf("scan admin recipient: %w", err)
		}
		if chatID.Valid {
			v := chatID.Int64
			rec.TelegramChatID = &v
		}
		res = append(res, rec)
	}

	return res, rows.Err()
}
