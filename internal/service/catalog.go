package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SnehaKumari118/timebank-backend/internal/domain/model"
	"github.com/SnehaKumari118/timebank-backend/internal/domain/ownership"
	"github.com/SnehaKumari118/timebank-backend/internal/repository"
)

// CatalogService — каталог услуг.
// Все мутации выполняются по схеме load → ownership.Verify → mutate.
type CatalogService struct {
	services repository.ServiceRepository
	logger   *slog.Logger
}

// NewCatalogService создаёт сервис каталога услуг.
func NewCatalogService(services repository.ServiceRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		services: services,
		logger:   logger.With(slog.String("component", "catalog_service")),
	}
}

// Create публикует услугу от имени ownerID.
// ownerName — снимок отображаемого имени, передаётся клиентом и
// не сверяется с таблицей users.
func (s *CatalogService) Create(ctx context.Context, ownerID int64, ownerName, title, description string, hours float64) (*model.Service, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: название обязательно", ErrValidation)
	}
	if hours <= 0 {
		return nil, fmt.Errorf("%w: количество часов должно быть положительным", ErrValidation)
	}

	svc := &model.Service{
		UserID:      ownerID,
		UserName:    ownerName,
		Title:       title,
		Description: description,
		Hours:       hours,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.logger.Info("Услуга создана",
		slog.Int64("service_id", svc.ID),
		slog.Int64("user_id", ownerID),
	)
	return svc, nil
}

// ListAll возвращает все услуги, новые первыми.
func (s *CatalogService) ListAll(ctx context.Context) ([]*model.Service, error) {
	return s.services.ListAll(ctx)
}

// ListByOwner возвращает услуги владельца, новые первыми.
func (s *CatalogService) ListByOwner(ctx context.Context, ownerID int64) ([]*model.Service, error) {
	return s.services.ListByOwner(ctx, ownerID)
}

// Update изменяет услугу id от имени actingID.
// repository.ErrNotFound — услуги нет; ownership.ErrDenied — услуга
// существует, но принадлежит другому пользователю. Ни в одном из
// случаев строка не изменяется.
func (s *CatalogService) Update(ctx context.Context, id, actingID int64, title, description string, hours float64) error {
	if title == "" {
		return fmt.Errorf("%w: название обязательно", ErrValidation)
	}
	if hours <= 0 {
		return fmt.Errorf("%w: количество часов должно быть положительным", ErrValidation)
	}

	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownership.Verify(svc.UserID, actingID); err != nil {
		s.logger.Warn("Отказ в изменении чужой услуги",
			slog.Int64("service_id", id),
			slog.Int64("owner_id", svc.UserID),
			slog.Int64("acting_id", actingID),
		)
		return err
	}

	svc.Title = title
	svc.Description = description
	svc.Hours = hours
	return s.services.Update(ctx, svc)
}

// Delete удаляет услугу id от имени actingID. Файлы не затрагиваются —
// услуги не ссылаются на хранилище загрузок.
func (s *CatalogService) Delete(ctx context.Context, id, actingID int64) error {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownership.Verify(svc.UserID, actingID); err != nil {
		s.logger.Warn("Отказ в удалении чужой услуги",
			slog.Int64("service_id", id),
			slog.Int64("owner_id", svc.UserID),
			slog.Int64("acting_id", actingID),
		)
		return err
	}

	if err := s.services.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Услуга удалена",
		slog.Int64("service_id", id),
		slog.Int64("user_id", actingID),
	)
	return nil
}
