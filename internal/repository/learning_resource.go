package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SnehaKumari118/timebank-backend/internal/domain/model"
)

// LearningResourceRepository — доступ к таблице learning_resources.
type LearningResourceRepository interface {
	// Create создаёт запись материала. Файл к этому моменту уже сохранён
	// в хранилище — запись без файла недопустима.
	Create(ctx context.Context, lr *model.LearningResource) error
	// GetByID возвращает материал по id.
	GetByID(ctx context.Context, id int64) (*model.LearningResource, error)
	// ListAll возвращает все материалы с именем владельца (INNER JOIN users),
	// новые первыми.
	ListAll(ctx context.Context) ([]*model.LearningResource, error)
	// ListByOwner возвращает материалы владельца, новые первыми.
	ListByOwner(ctx context.Context, ownerID int64) ([]*model.LearningResource, error)
	// Update обновляет только метаданные (title, description).
	Update(ctx context.Context, lr *model.LearningResource) error
	// Delete удаляет запись материала. Удаление файла — забота сервисного
	// слоя и выполняется только после успеха этого вызова.
	Delete(ctx context.Context, id int64) error
}

// learningResourceRepo — реализация LearningResourceRepository.
type learningResourceRepo struct {
	db DBTX
}

// NewLearningResourceRepository создаёт репозиторий учебных материалов.
func NewLearningResourceRepository(db DBTX) LearningResourceRepository {
	return &learningResourceRepo{db: db}
}

const resourceColumns = `id, user_id, title, description, file_type, file_path, created_at`

func scanResource(row pgx.Row) (*model.LearningResource, error) {
	lr := &model.LearningResource{}
	err := row.Scan(&lr.ID, &lr.UserID, &lr.Title, &lr.Description,
		&lr.FileType, &lr.FilePath, &lr.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования материала: %w", err)
	}
	return lr, nil
}

func (r *learningResourceRepo) Create(ctx context.Context, lr *model.LearningResource) error {
	query := `
		INSERT INTO learning_resources (user_id, title, description, file_type, file_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		lr.UserID, lr.Title, lr.Description, lr.FileType, lr.FilePath,
	).Scan(&lr.ID, &lr.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка создания материала: %w", err)
	}
	return nil
}

func (r *learningResourceRepo) GetByID(ctx context.Context, id int64) (*model.LearningResource, error) {
	query := fmt.Sprintf(`SELECT %s FROM learning_resources WHERE id = $1`, resourceColumns)
	return scanResource(r.db.QueryRow(ctx, query, id))
}

func (r *learningResourceRepo) ListAll(ctx context.Context) ([]*model.LearningResource, error) {
	// INNER JOIN отсекает материалы несуществующих владельцев;
	// пользователи не удаляются, так что на практике это все строки.
	query := `
		SELECT lr.id, lr.user_id, lr.title, lr.description, lr.file_type,
			lr.file_path, lr.created_at, u.name
		FROM learning_resources lr
		JOIN users u ON lr.user_id = u.id
		ORDER BY lr.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка материалов: %w", err)
	}
	defer rows.Close()

	result := []*model.LearningResource{}
	for rows.Next() {
		lr := &model.LearningResource{}
		if err := rows.Scan(&lr.ID, &lr.UserID, &lr.Title, &lr.Description,
			&lr.FileType, &lr.FilePath, &lr.CreatedAt, &lr.OwnerName); err != nil {
			return nil, fmt.Errorf("ошибка сканирования материала: %w", err)
		}
		result = append(result, lr)
	}
	return result, rows.Err()
}

func (r *learningResourceRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*model.LearningResource, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM learning_resources WHERE user_id = $1 ORDER BY created_at DESC`,
		resourceColumns)

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка материалов: %w", err)
	}
	defer rows.Close()

	result := []*model.LearningResource{}
	for rows.Next() {
		lr, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, lr)
	}
	return result, rows.Err()
}

func (r *learningResourceRepo) Update(ctx context.Context, lr *model.LearningResource) error {
	query := `
		UPDATE learning_resources
		SET title = $2, description = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, lr.ID, lr.Title, lr.Description)
	if err != nil {
		return fmt.Errorf("ошибка обновления материала: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *learningResourceRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM learning_resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления материала: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
