package repository

import (
	"context"
	"fmt"

	"github.com/SnehaKumari118/timebank-backend/internal/domain/model"
)

// ContactMessageRepository — доступ к таблице contact_messages.
// Только вставка: сообщения не изменяются и не удаляются.
type ContactMessageRepository interface {
	Create(ctx context.Context, m *model.ContactMessage) error
}

// contactMessageRepo — реализация ContactMessageRepository.
type contactMessageRepo struct {
	db DBTX
}

// NewContactMessageRepository создаёт репозиторий сообщений обратной связи.
func NewContactMessageRepository(db DBTX) ContactMessageRepository {
	return &contactMessageRepo{db: db}
}

func (r *contactMessageRepo) Create(ctx context.Context, m *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (user_id, name, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, m.UserID, m.Name, m.Phone, m.Subject, m.Message).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка сохранения сообщения: %w", err)
	}
	return nil
}
