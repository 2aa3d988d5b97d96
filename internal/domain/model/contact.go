package model

import "time"

// ContactMessage — сообщение обратной связи. Append-only:
// путей обновления и удаления нет.
type ContactMessage struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
