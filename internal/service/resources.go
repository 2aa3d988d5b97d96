package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SnehaKumari118/timebank-backend/internal/domain/model"
	"github.com/SnehaKumari118/timebank-backend/internal/domain/ownership"
	"github.com/SnehaKumari118/timebank-backend/internal/repository"
	"github.com/SnehaKumari118/timebank-backend/internal/storage/filestore"
)

// ResourceService — учебные материалы: записи БД плюс файлы в хранилище.
// Инвариант: пока существует строка learning_resources, файл file_path
// существует на диске. Порядок составного удаления фиксированный:
// подтверждение владения → удаление строки → удаление файла.
type ResourceService struct {
	resources repository.LearningResourceRepository
	store     *filestore.FileStore
	logger    *slog.Logger
}

// NewResourceService создаёт сервис учебных материалов.
func NewResourceService(
	resources repository.LearningResourceRepository,
	store *filestore.FileStore,
	logger *slog.Logger,
) *ResourceService {
	return &ResourceService{
		resources: resources,
		store:     store,
		logger:    logger.With(slog.String("component", "resource_service")),
	}
}

// Create загружает материал: сначала файл, затем запись БД.
// file == nil — ValidationError, ничего не сохраняется.
// Если вставка строки не удалась, только что сохранённый файл удаляется:
// в БД не должно остаться ссылки на несохранённый файл, а на диске —
// файла без строки.
func (s *ResourceService) Create(
	ctx context.Context,
	ownerID int64,
	title, description, fileType string,
	file io.Reader,
	fileName string,
) (*model.LearningResource, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: файл обязателен", ErrValidation)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: название обязательно", ErrValidation)
	}

	saved, err := s.store.Save(file, fileName)
	if err != nil {
		return nil, fmt.Errorf("ошибка сохранения файла материала: %w", err)
	}

	lr := &model.LearningResource{
		UserID:      ownerID,
		Title:       title,
		Description: description,
		FileType:    fileType,
		FilePath:    saved.StoredName,
	}
	if err := s.resources.Create(ctx, lr); err != nil {
		if delErr := s.store.Delete(saved.StoredName); delErr != nil {
			s.logger.Warn("Не удалось удалить файл после ошибки вставки",
				slog.String("file", saved.StoredName),
				slog.String("error", delErr.Error()),
			)
		}
		return nil, err
	}

	s.logger.Info("Материал загружен",
		slog.Int64("resource_id", lr.ID),
		slog.Int64("user_id", ownerID),
		slog.String("file", saved.StoredName),
		slog.Int64("size", saved.Size),
	)
	return lr, nil
}

// ListAll возвращает все материалы с именами владельцев, новые первыми.
func (s *ResourceService) ListAll(ctx context.Context) ([]*model.LearningResource, error) {
	return s.resources.ListAll(ctx)
}

// ListByOwner возвращает материалы владельца, новые первыми.
func (s *ResourceService) ListByOwner(ctx context.Context, ownerID int64) ([]*model.LearningResource, error) {
	return s.resources.ListByOwner(ctx, ownerID)
}

// Update изменяет метаданные материала (файл не затрагивается).
func (s *ResourceService) Update(ctx context.Context, id, actingID int64, title, description string) error {
	if title == "" {
		return fmt.Errorf("%w: название обязательно", ErrValidation)
	}

	lr, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownership.Verify(lr.UserID, actingID); err != nil {
		s.logger.Warn("Отказ в изменении чужого материала",
			slog.Int64("resource_id", id),
			slog.Int64("owner_id", lr.UserID),
			slog.Int64("acting_id", actingID),
		)
		return err
	}

	lr.Title = title
	lr.Description = description
	return s.resources.Update(ctx, lr)
}

// Delete выполняет составное удаление материала.
// Порядок: SELECT (владение + file_path) → удаление строки → удаление файла.
// Файл удаляется только после успешного удаления строки; неудача удаления
// файла (в том числе «файл уже отсутствует») логируется и не отменяет
// уже зафиксированное удаление строки — источник истины это БД.
func (s *ResourceService) Delete(ctx context.Context, id, actingID int64) error {
	lr, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownership.Verify(lr.UserID, actingID); err != nil {
		s.logger.Warn("Отказ в удалении чужого материала",
			slog.Int64("resource_id", id),
			slog.Int64("owner_id", lr.UserID),
			slog.Int64("acting_id", actingID),
		)
		return err
	}

	if err := s.resources.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.store.Delete(lr.FilePath); err != nil {
		s.logger.Warn("Строка удалена, но файл удалить не удалось",
			slog.Int64("resource_id", id),
			slog.String("file", lr.FilePath),
			slog.String("error", err.Error()),
		)
	}

	s.logger.Info("Материал удалён",
		slog.Int64("resource_id", id),
		slog.Int64("user_id", actingID),
		slog.String("file", lr.FilePath),
	)
	return nil
}
