package domain

// Category хранит плоский справочник: заполняется миграцией и не меняется
// обычными пользователями.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
