package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SnehaKumari118/timebank-backend/internal/domain/model"
	"github.com/SnehaKumari118/timebank-backend/internal/repository"
)

// ContactService — приём сообщений обратной связи.
// Проверка владения не нужна: запись создаётся от имени отправителя
// и никогда не изменяется.
type ContactService struct {
	messages repository.ContactMessageRepository
	logger   *slog.Logger
}

// NewContactService создаёт сервис обратной связи.
func NewContactService(messages repository.ContactMessageRepository, logger *slog.Logger) *ContactService {
	return &ContactService{
		messages: messages,
		logger:   logger.With(slog.String("component", "contact_service")),
	}
}

// Submit сохраняет сообщение. Все поля обязательны.
func (s *ContactService) Submit(ctx context.Context, senderID int64, name, phone, subject, message string) error {
	if name == "" || phone == "" || subject == "" || message == "" {
		return fmt.Errorf("%w: все поля обязательны", ErrValidation)
	}

	m := &model.ContactMessage{
		UserID:  senderID,
		Name:    name,
		Phone:   phone,
		Subject: subject,
		Message: message,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return err
	}

	s.logger.Info("Сообщение сохранено",
		slog.Int64("message_id", m.ID),
		slog.Int64("user_id", senderID),
	)
	return nil
}
