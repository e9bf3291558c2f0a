package ports

import (
	"context"

	"github.com/eventify-app/backend/internal/domain"
)

// Notifier описывает внешний notification sink. Доставка best-effort: ошибки
// самого sink никогда не поднимаются в вызвавшую операцию.
type Notifier interface {
	NotifyReportFiled(ctx context.Context, to domain.Recipient, targetKind, reason string)
	NotifyEventReminder(ctx context.Context, to domain.Recipient, event *domain.Event)
}
