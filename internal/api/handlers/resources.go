// resources.go — HTTP handlers учебных материалов: загрузка файла
// с метаданными, листинги, изменение метаданных, составное удаление.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	apierrors "github.com/SnehaKumari118/timebank-backend/internal/api/errors"
	"github.com/SnehaKumari118/timebank-backend/internal/api/middleware"
	"github.com/SnehaKumari118/timebank-backend/internal/service"
)

// ResourcesHandler — обработчик endpoints учебных материалов.
type ResourcesHandler struct {
	resources     *service.ResourceService
	maxUploadSize int64
	logger        *slog.Logger
}

// NewResourcesHandler создаёт обработчик материалов.
// maxUploadSize — лимит тела запроса загрузки в байтах.
func NewResourcesHandler(resources *service.ResourceService, maxUploadSize int64, logger *slog.Logger) *ResourcesHandler {
	return &ResourcesHandler{
		resources:     resources,
		maxUploadSize: maxUploadSize,
		logger:        logger.With(slog.String("handler", "resources")),
	}
}

// Upload обрабатывает POST /upload-resource.
// Multipart form: title, description, file_type и файл resource.
// Запрос без файла отклоняется, ничего не сохраняется.
func (h *ResourcesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			apierrors.FileTooLarge(w, fmt.Sprintf("Файл превышает лимит %d байт", h.maxUploadSize))
			return
		}
		apierrors.ValidationError(w, fmt.Sprintf("Ошибка парсинга multipart: %s", err.Error()))
		return
	}

	file, header, err := r.FormFile("resource")
	if err != nil {
		apierrors.ValidationError(w, "Файл материала обязателен")
		return
	}
	defer file.Close()

	actingID := middleware.UserIDFromContext(r.Context())
	_, err = h.resources.Create(
		r.Context(),
		actingID,
		r.FormValue("title"),
		r.FormValue("description"),
		r.FormValue("file_type"),
		file,
		header.Filename,
	)
	if err != nil {
		mapError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated)
}

// ListAll обрабатывает GET /resources.
// Материалы с именами владельцев, новые первыми.
func (h *ResourcesHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resources.ListAll(r.Context())
	if err != nil {
		mapError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resources)
}

// ListByOwner обрабатывает GET /my-resources/{userId}.
func (h *ResourcesHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseIDParam(r, "userId")
	if err != nil {
		apierrors.ValidationError(w, "Некорректный id пользователя")
		return
	}

	resources, err := h.resources.ListByOwner(r.Context(), ownerID)
	if err != nil {
		mapError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resources)
}

// updateResourceRequest — тело PUT /update-resource/{id}.
type updateResourceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Update обрабатывает PUT /update-resource/{id}. Метаданные без файла.
func (h *ResourcesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		apierrors.ValidationError(w, "Некорректный id материала")
		return
	}

	var req updateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	actingID := middleware.UserIDFromContext(r.Context())
	if err := h.resources.Update(r.Context(), id, actingID, req.Title, req.Description); err != nil {
		mapError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK)
}

// Delete обрабатывает DELETE /delete-resource/{id}/{userId}.
// userId в пути сохранён для совместимости клиента, но действующая
// идентичность берётся только из токена.
func (h *ResourcesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		apierrors.ValidationError(w, "Некорректный id материала")
		return
	}

	actingID := middleware.UserIDFromContext(r.Context())
	if err := h.resources.Delete(r.Context(), id, actingID); err != nil {
		mapError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK)
}
