// services.go — HTTP handlers каталога услуг: создание, листинги,
// изменение и удаление с проверкой владения.
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

// ServicesHandler — обработчик endpoints услуг.
type ServicesHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewServicesHandler создаёт обработчик услуг.
func NewServicesHandler(catalog *service.CatalogService, logger *slog.Logger) *ServicesHandler {
	return &ServicesHandler{
		catalog: catalog,
		logger:  logger.With(slog.String("handler", "services")),
	}
}

// serviceRequest — тело POST /service и PUT /service/{id}.
// user_id и user_name — данные payload (снимок имени владельца);
// владельцем становится аутентифицированный пользователь из токена.
type serviceRequest struct {
	UserName    string  `json:"user_name"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
}

// Create обрабатывает POST /service.
func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	actingID := middleware.UserIDFromContext(r.Context())
	if _, err := h.catalog.Create(r.Context(), actingID, req.UserName, req.Title, req.Description, req.Hours); err != nil {
		mapError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated)
}

// ListAll обрабатывает GET /services. Новые услуги первыми.
func (h *ServicesHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.ListAll(r.Context())
	if err != nil {
		mapError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// ListByOwner обрабатывает GET /my-services/{userId}.
func (h *ServicesHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseIDParam(r, "userId")
	if err != nil {
		apierrors.ValidationError(w, "Некорректный id пользователя")
		return
	}

	services, err := h.catalog.ListByOwner(r.Context(), ownerID)
	if err != nil {
		mapError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// Update обрабатывает PUT /service/{id}.
// 404 — услуги нет, 403 — услуга принадлежит другому пользователю.
func (h *ServicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		apierrors.ValidationError(w, "Некорректный id услуги")
		return
	}

	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	actingID := middleware.UserIDFromContext(r.Context())
	if err := h.catalog.Update(r.Context(), id, actingID, req.Title, req.Description, req.Hours); err != nil {
		mapError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK)
}

// Delete обрабатывает DELETE /service/{id}.
func (h *ServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		apierrors.ValidationError(w, "Некорректный id услуги")
		return
	}

	actingID := middleware.UserIDFromContext(r.Context())
	if err := h.catalog.Delete(r.Context(), id, actingID); err != nil {
		mapError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK)
}
