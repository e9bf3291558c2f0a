package service

import "github.com/eventify-app/backend/internal/domain"

// eventVisibleTo: отключённые события не видны никому, кроме владельца и
// администратора; для остальных это NotFound, а не Forbidden.
func eventVisibleTo(viewer domain.Actor, e *domain.Event) bool {
	return e.IsActive || viewer.CanManage(e.CreatorID)
}
