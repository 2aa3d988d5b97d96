// health.go — служебные endpoints.
// GET / — liveness (текст), GET /health/ready — readiness probe (PostgreSQL),
// GET /metrics — Prometheus метрики.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SnehaKumari118/timebank-backend/internal/config"
)

// ReadinessChecker — интерфейс проверки готовности зависимости.
type ReadinessChecker interface {
	// CheckReady возвращает статус ("ok", "fail") и сообщение.
	CheckReady() (status, message string)
}

// HealthHandler — обработчик служебных endpoints.
type HealthHandler struct {
	pgChecker   ReadinessChecker
	promHandler http.Handler
}

// NewHealthHandler создаёт обработчик служебных endpoints.
// pgChecker — проверка PostgreSQL (может быть nil — readiness вернёт "fail").
func NewHealthHandler(pgChecker ReadinessChecker) *HealthHandler {
	return &HealthHandler{
		pgChecker:   pgChecker,
		promHandler: promhttp.Handler(),
	}
}

// Root — liveness. Текстовый ответ, формат сохранён для клиента.
func (h *HealthHandler) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("TimeBank API is running"))
}

// healthCheckResult — результат проверки одной зависимости.
type healthCheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// healthReadyResponse — ответ readiness probe.
type healthReadyResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Service   string `json:"service"`
	Checks    struct {
		PostgreSQL healthCheckResult `json:"postgresql"`
	} `json:"checks"`
}

const statusFail = "fail"

// HealthReady — readiness probe. Проверяет PostgreSQL.
// Возвращает 200 (ok) или 503 (fail).
func (h *HealthHandler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	resp := healthReadyResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   config.Version,
		Service:   "timebank-backend",
	}

	if h.pgChecker != nil {
		pgStatus, pgMsg := h.pgChecker.CheckReady()
		resp.Checks.PostgreSQL = healthCheckResult{Status: pgStatus, Message: pgMsg}
	} else {
		resp.Checks.PostgreSQL = healthCheckResult{Status: statusFail, Message: "не инициализирован"}
	}

	resp.Status = resp.Checks.PostgreSQL.Status

	w.Header().Set("Content-Type", "application/json")
	if resp.Status == statusFail {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// GetMetrics — Prometheus метрики.
func (h *HealthHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.promHandler.ServeHTTP(w, r)
}
