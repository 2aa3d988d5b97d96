package model

import "time"

// Service — услуга, предлагаемая пользователем.
// Хранится в таблице services.
type Service struct {
	// ID — идентификатор услуги
	ID int64 `json:"id"`
	// UserID — идентификатор владельца. Единственный источник истины
	// для проверки прав на изменение и удаление.
	UserID int64 `json:"user_id"`
	// UserName — снимок отображаемого имени владельца на момент создания.
	// Не отслеживает изменения профиля и не участвует в авторизации.
	UserName string `json:"user_name"`
	// Title — название услуги
	Title string `json:"title"`
	// Description — описание услуги
	Description string `json:"description"`
	// Hours — стоимость в часах
	Hours float64 `json:"hours"`
	// CreatedAt — время создания
	CreatedAt time.Time `json:"created_at"`
}
