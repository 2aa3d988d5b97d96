// contact.go — HTTP handler сообщений обратной связи.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	apierrors "github.com/SnehaKumari118/timebank-backend/internal/api/errors"
	"github.com/SnehaKumari118/timebank-backend/internal/api/middleware"
	"github.com/SnehaKumari118/timebank-backend/internal/service"
)

// ContactHandler — обработчик обратной связи.
type ContactHandler struct {
	contact *service.ContactService
	logger  *slog.Logger
}

// NewContactHandler создаёт обработчик обратной связи.
func NewContactHandler(contact *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contact: contact,
		logger:  logger.With(slog.String("handler", "contact")),
	}
}

// contactRequest — тело POST /contact.
type contactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit обрабатывает POST /contact. Отправитель — из токена.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	actingID := middleware.UserIDFromContext(r.Context())
	if err := h.contact.Submit(r.Context(), actingID, req.Name, req.Phone, req.Subject, req.Message); err != nil {
		mapError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated)
}
