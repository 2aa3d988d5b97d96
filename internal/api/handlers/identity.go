// identity.go — HTTP handlers учётных записей: регистрация,
// вход, просмотр и обновление профиля.
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/SnehaKumari118/timebank-backend/internal/api/errors"
	"github.com/SnehaKumari118/timebank-backend/internal/api/middleware"
	"github.com/SnehaKumari118/timebank-backend/internal/domain/model"
	"github.com/SnehaKumari118/timebank-backend/internal/service"
)

// IdentityHandler — обработчик endpoints учётных записей.
type IdentityHandler struct {
	identity *service.IdentityService
	logger   *slog.Logger
}

// NewIdentityHandler создаёт обработчик учётных записей.
func NewIdentityHandler(identity *service.IdentityService, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		identity: identity,
		logger:   logger.With(slog.String("handler", "identity")),
	}
}

// registerRequest — тело POST /register.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register обрабатывает POST /register.
func (h *IdentityHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	if err := h.identity.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		mapError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated)
}

// loginRequest — тело POST /login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse — ответ успешного входа. Хэш пароля не сериализуется.
type loginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    *model.User `json:"user"`
}

// Login обрабатывает POST /login.
func (h *IdentityHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	user, token, err := h.identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		mapError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		User:    user,
	})
}

// GetUser обрабатывает GET /user/{id}.
// Отсутствующий пользователь — 200 с телом null (формат сохранён
// для совместимости с клиентом).
func (h *IdentityHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		apierrors.ValidationError(w, "Некорректный id пользователя")
		return
	}

	user, err := h.identity.GetProfile(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		mapError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile обрабатывает POST /update-profile.
// Multipart form: id и поля профиля, опциональный файл profile_pic.
// Действующая идентичность берётся из токена; id в форме — целевой
// профиль, изменить чужой профиль нельзя.
func (h *IdentityHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Ошибка парсинга multipart: %s", err.Error()))
		return
	}

	id, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
	if err != nil || id <= 0 {
		apierrors.ValidationError(w, "Некорректный id пользователя")
		return
	}

	upd := service.ProfileUpdate{
		Name:            r.FormValue("name"),
		Email:           r.FormValue("email"),
		Bio:             r.FormValue("bio"),
		SkillsOffered:   r.FormValue("skills_offered"),
		SkillsNeeded:    r.FormValue("skills_needed"),
		Location:        r.FormValue("location"),
		ExperienceLevel: r.FormValue("experience_level"),
	}

	var image io.Reader
	var imageName string
	file, header, err := r.FormFile("profile_pic")
	if err == nil {
		defer file.Close()
		image = file
		imageName = header.Filename
	} else if err != http.ErrMissingFile {
		apierrors.ValidationError(w, "Некорректный файл аватара")
		return
	}

	actingID := middleware.UserIDFromContext(r.Context())
	if err := h.identity.UpdateProfile(r.Context(), actingID, id, upd, image, imageName); err != nil {
		mapError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK)
}

// parseIDParam извлекает числовой URL-параметр chi.
func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("некорректный параметр %s", name)
	}
	return id, nil
}
