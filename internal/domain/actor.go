package domain

// Actor несёт идентичность вызывающего, приходит от внешнего identity provider.
// Ядро само не выпускает и не проверяет учётные данные.
type Actor struct {
	ID      string
	IsAdmin bool
}

// CanManage отвечает, может ли actor управлять объектом с данным владельцем:
// роли ограничены замкнутым набором участник/создатель/администратор.
func (a Actor) CanManage(ownerID string) bool {
	return a.IsAdmin || a.ID == ownerID
}
