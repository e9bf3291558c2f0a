package ports

import (
	"context"

	"github.com/eventify-app/backend/internal/domain"
)

type EnrollmentRepo interface {
	// Create атомарно проверяет вместимость события и вставляет запись.
	Create(ctx context.Context, en *domain.Enrollment) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Enrollment, error)
	// SetAttended сериализует конкурентные чек-ины блокировкой строки;
	// возвращает true, если посещение уже было отмечено ранее.
	SetAttended(ctx context.Context, eventID, userID string) (bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Enrollment, error)
}
