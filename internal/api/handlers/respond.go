// respond.go — общие помощники handlers: сериализация ответов
// и маппинг ошибок нижних слоёв в HTTP-статусы и коды API.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apierrors "github.com/SnehaKumari118/timebank-backend/internal/api/errors"
	"github.com/SnehaKumari118/timebank-backend/internal/domain/ownership"
	"github.com/SnehaKumari118/timebank-backend/internal/repository"
	"github.com/SnehaKumari118/timebank-backend/internal/service"
)

// writeJSON сериализует ответ с указанным статус-кодом.
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// successResponse — стандартное тело успешной мутации.
type successResponse struct {
	Success bool `json:"success"`
}

// writeSuccess отвечает {"success":true} с указанным статус-кодом.
func writeSuccess(w http.ResponseWriter, statusCode int) {
	writeJSON(w, statusCode, successResponse{Success: true})
}

// isNotFound сообщает, что нижний слой не нашёл запись.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

// mapError транслирует ошибку сервисного слоя в HTTP-ответ.
// Правила фиксированные:
//
//	ErrValidation         → 400 VALIDATION_ERROR
//	ErrInvalidCredentials → 401 UNAUTHORIZED
//	ownership.ErrDenied   → 403 FORBIDDEN (запись есть, владелец другой)
//	repository.ErrNotFound → 404 NOT_FOUND (записи нет)
//	repository.ErrConflict → 409 CONFLICT
//	остальное             → 500 INTERNAL_ERROR, детали только в логах
func mapError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		apierrors.ValidationError(w, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		apierrors.Unauthorized(w, "Неверный email или пароль")
	case errors.Is(err, ownership.ErrDenied):
		apierrors.Forbidden(w, "Запись принадлежит другому пользователю")
	case errors.Is(err, repository.ErrNotFound):
		apierrors.NotFound(w, "Запись не найдена")
	case errors.Is(err, repository.ErrConflict):
		apierrors.Conflict(w, "Запись с таким значением уже существует")
	default:
		logger.Error("Внутренняя ошибка обработки запроса",
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(w, "Внутренняя ошибка сервера")
	}
}
