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

type EnrollmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEnrollmentRepo(db *dbpg.DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create делает проверку вместимости и вставку в одной транзакции.
// FOR UPDATE на строке события сериализует конкурентные записи на одно событие,
// поэтому зафиксированное число записей никогда не превышает capacity.
func (r *EnrollmentRepository) Create(ctx context.Context, en *domain.Enrollment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity sql.NullInt64
	capQuery := `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, capQuery, en.EventID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get event capacity: %w", err)
	}

	if capacity.Valid {
		var enrolled int
		countQuery := `SELECT COUNT(*) FROM enrollments WHERE event_id = $1`
		if err = tx.QueryRowContext(ctx, countQuery, en.EventID).Scan(&enrolled); err != nil {
			return fmt.Errorf("count enrollments: %w", err)
		}
		if int64(enrolled) >= capacity.Int64 {
			return domain.ErrCapacityExceeded
		}
	}

	query := `INSERT INTO enrollments (id, event_id, user_id, attended, enrolled_at)
			  VALUES ($1, $2, $3, FALSE, $4)`
	_, err = tx.ExecContext(ctx, query, en.ID, en.EventID, en.UserID, en.EnrolledAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyEnrolled
		}
		return fmt.Errorf("insert enrollment: %w", err)
	}

	return tx.Commit()
}

func (r *EnrollmentRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Enrollment, error) {
	query := `SELECT id, event_id, user_id, attended, enrolled_at
			  FROM enrollments
			  WHERE event_id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}

	var en domain.Enrollment
	if err = row.Scan(&en.ID, &en.EventID, &en.UserID, &en.Attended, &en.EnrolledAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("scan enrollment: %w", err)
	}

	return &en, nil
}

// SetAttended блокирует строку записи, поэтому из двух конкурентных чек-инов
// переход false -> true выполняет ровно один, второй видит уже
// выставленный флаг и завершается как no-op.
func (r *EnrollmentRepository) SetAttended(ctx context.Context, eventID, userID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var attended bool
	lockQuery := `SELECT attended FROM enrollments
				  WHERE event_id = $1 AND user_id = $2
				  FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, eventID, userID).Scan(&attended); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrEnrollmentNotFound
		}
		return false, fmt.Errorf("lock enrollment: %w", err)
	}

	if attended {
		return true, tx.Commit()
	}

	query := `UPDATE enrollments SET attended = TRUE
			  WHERE event_id = $1 AND user_id = $2`
	if _, err = tx.ExecContext(ctx, query, eventID, userID); err != nil {
		return false, fmt.Errorf("set attended: %w", err)
	}

	return false, tx.Commit()
}

// ListByEvent упорядочен по идентификатору участника для стабильной выдачи.
func (r *EnrollmentRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Enrollment, error) {
	query := `SELECT id, event_id, user_id, attended, enrolled_at
			  FROM enrollments
			  WHERE event_id = $1
			  ORDER BY user_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Enrollment
	for rows.Next() {
		var en domain.Enrollment
		if err = rows.Scan(&en.ID, &en.EventID, &en.UserID, &en.Attended, &en.EnrolledAt); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		res = append(res, &en)
	}

	return res, rows.Err()
}
