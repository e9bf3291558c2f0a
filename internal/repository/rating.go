package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RatingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRatingRepo(db *dbpg.DB) *RatingRepository {
	return &RatingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	query := `INSERT INTO ratings (id, event_id, user_id, score, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rating.ID, rating.EventID, rating.UserID, rating.Score, rating.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRated
		}
		return fmt.Errorf("insert rating: %w", err)
	}

	return nil
}

func (r *RatingRepository) Summary(ctx context.Context, eventID string) (*domain.RatingSummary, error) {
	query := `SELECT COALESCE(AVG(score), 0), COUNT(*)
			  FROM ratings
			  WHERE event_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("rating summary: %w", err)
	}

	s := domain.RatingSummary{EventID: eventID}
	if err = row.Scan(&s.Average, &s.Count); err != nil {
		return nil, fmt.Errorf("scan rating summary: %w", err)
	}

	return &s, nil
}
