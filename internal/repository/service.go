package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SnehaKumari118/timebank-backend/internal/domain/model"
)

// ServiceRepository — доступ к таблице services.
type ServiceRepository interface {
	// Create создаёт услугу.
	Create(ctx context.Context, s *model.Service) error
	// GetByID возвращает услугу по id.
	GetByID(ctx context.Context, id int64) (*model.Service, error)
	// ListAll возвращает все услуги, новые первыми.
	ListAll(ctx context.Context) ([]*model.Service, error)
	// ListByOwner возвращает услуги владельца, новые первыми.
	ListByOwner(ctx context.Context, ownerID int64) ([]*model.Service, error)
	// Update обновляет title, description, hours услуги.
	Update(ctx context.Context, s *model.Service) error
	// Delete удаляет услугу.
	Delete(ctx context.Context, id int64) error
}

// serviceRepo — реализация ServiceRepository.
type serviceRepo struct {
	db DBTX
}

// NewServiceRepository создаёт репозиторий услуг.
func NewServiceRepository(db DBTX) ServiceRepository {
	return &serviceRepo{db: db}
}

const serviceColumns = `id, user_id, user_name, title, description, hours, created_at`

func scanService(row pgx.Row) (*model.Service, error) {
	s := &model.Service{}
	err := row.Scan(&s.ID, &s.UserID, &s.UserName, &s.Title, &s.Description, &s.Hours, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования услуги: %w", err)
	}
	return s, nil
}

func (r *serviceRepo) Create(ctx context.Context, s *model.Service) error {
	query := `
		INSERT INTO services (user_id, user_name, title, description, hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, s.UserID, s.UserName, s.Title, s.Description, s.Hours).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка создания услуги: %w", err)
	}
	return nil
}

func (r *serviceRepo) GetByID(ctx context.Context, id int64) (*model.Service, error) {
	query := fmt.Sprintf(`SELECT %s FROM services WHERE id = $1`, serviceColumns)
	return scanService(r.db.QueryRow(ctx, query, id))
}

func (r *serviceRepo) ListAll(ctx context.Context) ([]*model.Service, error) {
	query := fmt.Sprintf(`SELECT %s FROM services ORDER BY id DESC`, serviceColumns)
	return r.list(ctx, query)
}

func (r *serviceRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*model.Service, error) {
	query := fmt.Sprintf(`SELECT %s FROM services WHERE user_id = $1 ORDER BY id DESC`, serviceColumns)
	return r.list(ctx, query, ownerID)
}

func (r *serviceRepo) list(ctx context.Context, query string, args ...any) ([]*model.Service, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка услуг: %w", err)
	}
	defer rows.Close()

	result := []*model.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *serviceRepo) Update(ctx context.Context, s *model.Service) error {
	query := `
		UPDATE services
		SET title = $2, description = $3, hours = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, s.ID, s.Title, s.Description, s.Hours)
	if err != nil {
		return fmt.Errorf("ошибка обновления услуги: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *serviceRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления услуги: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
