// describe.go — HTTP handler генерации описания услуги по названию.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	apierrors "github.com/SnehaKumari118/timebank-backend/internal/api/errors"
	"github.com/SnehaKumari118/timebank-backend/internal/service"
)

// DescribeHandler — обработчик генерации описаний.
type DescribeHandler struct {
	logger *slog.Logger
}

// NewDescribeHandler создаёт обработчик генерации описаний.
func NewDescribeHandler(logger *slog.Logger) *DescribeHandler {
	return &DescribeHandler{
		logger: logger.With(slog.String("handler", "describe")),
	}
}

// describeRequest — тело POST /generate-description.
type describeRequest struct {
	Title string `json:"title"`
}

// describeResponse — ответ с сгенерированным описанием.
type describeResponse struct {
	Success     bool   `json:"success"`
	Description string `json:"description"`
}

// Generate обрабатывает POST /generate-description.
// Возвращает одну из фиксированных заготовок с подставленным названием.
func (h *DescribeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req describeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	description, err := service.GenerateDescription(req.Title)
	if err != nil {
		mapError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, describeResponse{
		Success:     true,
		Description: description,
	})
}
