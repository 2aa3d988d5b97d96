package model

import "time"

// LearningResource — учебный материал с прикреплённым файлом.
// Хранится в таблице learning_resources. Пока существует запись,
// файл FilePath обязан существовать в хранилище загрузок.
type LearningResource struct {
	// ID — идентификатор материала
	ID int64 `json:"id"`
	// UserID — идентификатор владельца
	UserID int64 `json:"user_id"`
	// Title — название материала
	Title string `json:"title"`
	// Description — описание
	Description string `json:"description"`
	// FileType — тип файла (pdf, video, ...), задаётся клиентом
	FileType string `json:"file_type"`
	// FilePath — имя файла в хранилище загрузок (слабая ссылка на asset)
	FilePath string `json:"file_path"`
	// CreatedAt — время создания
	CreatedAt time.Time `json:"created_at"`

	// OwnerName — имя владельца из JOIN с users.
	// Заполняется только в листинге /resources.
	OwnerName string `json:"name,omitempty"`
}
