package ports

import (
	"context"

	"github.com/eventify-app/backend/internal/domain"
)

type ReportRepo interface {
	CreateCommentReport(ctx context.Context, r *domain.CommentReport) error
	CreateEventReport(ctx context.Context, r *domain.EventReport) error
	ReportedComments(ctx context.Context) ([]*domain.ReportedComment, error)
	ReportedEvents(ctx context.Context) ([]*domain.ReportedEvent, error)
	// AdminRecipients возвращает адресатов для рассылки о новой жалобе.
	AdminRecipients(ctx context.Context) ([]domain.Recipient, error)
}
