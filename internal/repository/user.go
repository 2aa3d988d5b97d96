package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SnehaKumari118/timebank-backend/internal/domain/model"
)

// UserRepository — доступ к таблице users.
type UserRepository interface {
	// Create создаёт пользователя. ErrConflict при занятом email.
	Create(ctx context.Context, u *model.User) error
	// GetByID возвращает пользователя по id.
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetByEmail возвращает пользователя по email (регистрозависимо, как хранится).
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Update обновляет профильные поля пользователя.
	// При newProfilePic == nil ссылка на аватар не меняется.
	Update(ctx context.Context, u *model.User, newProfilePic *string) error
}

// userRepo — реализация UserRepository.
type userRepo struct {
	db DBTX
}

// NewUserRepository создаёт репозиторий пользователей.
func NewUserRepository(db DBTX) UserRepository {
	return &userRepo{db: db}
}

// userColumns — общий список колонок для сканирования пользователя.
const userColumns = `id, name, email, password_hash, bio, skills_offered,
	skills_needed, location, experience_level, profile_pic, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Bio, &u.SkillsOffered,
		&u.SkillsNeeded, &u.Location, &u.ExperienceLevel, &u.ProfilePic, &u.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования пользователя: %w", err)
	}
	return u, nil
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, u.Name, u.Email, u.PasswordHash).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email уже зарегистрирован", ErrConflict)
		}
		return fmt.Errorf("ошибка создания пользователя: %w", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) Update(ctx context.Context, u *model.User, newProfilePic *string) error {
	// Ссылка на аватар обновляется только при загрузке нового файла —
	// два варианта запроса, как и два набора аргументов.
	if newProfilePic != nil {
		query := `
			UPDATE users
			SET name = $2, email = $3, bio = $4, skills_offered = $5,
				skills_needed = $6, location = $7, experience_level = $8,
				profile_pic = $9
			WHERE id = $1`

		tag, err := r.db.Exec(ctx, query,
			u.ID, u.Name, u.Email, u.Bio, u.SkillsOffered,
			u.SkillsNeeded, u.Location, u.ExperienceLevel, *newProfilePic,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: email уже зарегистрирован", ErrConflict)
			}
			return fmt.Errorf("ошибка обновления профиля: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	}

	query := `
		UPDATE users
		SET name = $2, email = $3, bio = $4, skills_offered = $5,
			skills_needed = $6, location = $7, experience_level = $8
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.Bio, u.SkillsOffered,
		u.SkillsNeeded, u.Location, u.ExperienceLevel,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email уже зарегистрирован", ErrConflict)
		}
		return fmt.Errorf("ошибка обновления профиля: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
