package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/SnehaKumari118/timebank-backend/internal/auth"
	"github.com/SnehaKumari118/timebank-backend/internal/domain/model"
	"github.com/SnehaKumari118/timebank-backend/internal/domain/ownership"
	"github.com/SnehaKumari118/timebank-backend/internal/repository"
	"github.com/SnehaKumari118/timebank-backend/internal/storage/filestore"
)

// minPasswordLen — минимальная длина пароля при регистрации.
const minPasswordLen = 6

// emailRe — форма local@domain.tld, без пробелов и вложенных @.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IdentityService — регистрация, аутентификация и профиль пользователя.
type IdentityService struct {
	users     repository.UserRepository
	store     *filestore.FileStore
	jwtSecret []byte
	jwtTTL    time.Duration
	logger    *slog.Logger
}

// NewIdentityService создаёт сервис учётных записей.
func NewIdentityService(
	users repository.UserRepository,
	store *filestore.FileStore,
	jwtSecret []byte,
	jwtTTL time.Duration,
	logger *slog.Logger,
) *IdentityService {
	return &IdentityService{
		users:     users,
		store:     store,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
		logger:    logger.With(slog.String("component", "identity_service")),
	}
}

// Register создаёт нового пользователя.
// Пароль хранится только как bcrypt-хэш.
func (s *IdentityService) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return fmt.Errorf("%w: все поля обязательны", ErrValidation)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: некорректный формат email", ErrValidation)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: пароль должен быть не короче %d символов", ErrValidation, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка хэширования пароля: %w", err)
	}

	u := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return err
	}

	s.logger.Info("Пользователь зарегистрирован",
		slog.Int64("user_id", u.ID),
		slog.String("email", u.Email),
	)
	return nil
}

// Login проверяет учётные данные и выпускает токен сессии.
// Отсутствующий email и неверный пароль дают одинаковый результат.
// Хэш пароля наружу не возвращается.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email и пароль обязательны", ErrValidation)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(u.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Пользователь аутентифицирован", slog.Int64("user_id", u.ID))
	return u, token, nil
}

// GetProfile возвращает профиль пользователя или repository.ErrNotFound.
func (s *IdentityService) GetProfile(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// ProfileUpdate — изменяемые поля профиля.
type ProfileUpdate struct {
	Name            string
	Email           string
	Bio             string
	SkillsOffered   string
	SkillsNeeded    string
	Location        string
	ExperienceLevel string
}

// UpdateProfile обновляет профиль пользователя id.
// actingID — идентичность из токена сессии; профиль чужого пользователя
// изменить нельзя (та же проверка владения, что для услуг и материалов).
// image != nil — загружен новый аватар: файл сохраняется до обновления
// строки, прежний файл удаляется best-effort после успеха.
func (s *IdentityService) UpdateProfile(
	ctx context.Context,
	actingID, id int64,
	upd ProfileUpdate,
	image io.Reader,
	imageName string,
) error {
	if err := ownership.Verify(id, actingID); err != nil {
		return err
	}
	if upd.Name == "" || upd.Email == "" {
		return fmt.Errorf("%w: имя и email обязательны", ErrValidation)
	}
	if !emailRe.MatchString(upd.Email) {
		return fmt.Errorf("%w: некорректный формат email", ErrValidation)
	}

	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Новый аватар сохраняется до записи в БД: строка не должна
	// ссылаться на несохранённый файл.
	var newPic *string
	if image != nil {
		saved, err := s.store.Save(image, imageName)
		if err != nil {
			return fmt.Errorf("ошибка сохранения аватара: %w", err)
		}
		newPic = &saved.StoredName
	}

	u := &model.User{
		ID:              id,
		Name:            upd.Name,
		Email:           upd.Email,
		Bio:             upd.Bio,
		SkillsOffered:   upd.SkillsOffered,
		SkillsNeeded:    upd.SkillsNeeded,
		Location:        upd.Location,
		ExperienceLevel: upd.ExperienceLevel,
	}
	if err := s.users.Update(ctx, u, newPic); err != nil {
		// Строка не обновлена — только что сохранённый файл осиротел, убираем
		if newPic != nil {
			if delErr := s.store.Delete(*newPic); delErr != nil {
				s.logger.Warn("Не удалось удалить несвязанный аватар",
					slog.String("file", *newPic),
					slog.String("error", delErr.Error()),
				)
			}
		}
		return err
	}

	// Прежний аватар больше не упоминается ни одной строкой — удаляем.
	// Ошибка удаления не отменяет уже применённое обновление профиля.
	if newPic != nil && current.ProfilePic != nil && *current.ProfilePic != *newPic {
		if err := s.store.Delete(*current.ProfilePic); err != nil {
			s.logger.Warn("Не удалось удалить прежний аватар",
				slog.String("file", *current.ProfilePic),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.Info("Профиль обновлён", slog.Int64("user_id", id),
		slog.Bool("image_replaced", newPic != nil))
	return nil
}
