// logging.go — access-лог HTTP API через slog: одна запись на запрос
// после обработки. Для аутентифицированных запросов в запись попадает
// id пользователя, от имени которого выполнялась операция.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// statusWriter перехватывает статус-код и объём записанного тела.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func wrapWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	sw.bytes += int64(n)
	return n, err
}

// Unwrap открывает оригинальный ResponseWriter для http.ResponseController.
func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}

// levelForStatus выбирает уровень записи по классу статус-кода:
// 5xx — ERROR, 4xx — WARN, остальные — INFO.
func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// RequestLogger возвращает middleware access-лога. Перед обработкой
// в контекст помещается holder для ID пользователя: auth middleware
// ниже по цепочке заполнит его при валидном токене, и user_id
// появится в записи. Анонимные запросы логируются без user_id.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapWriter(w)
			ctx := context.WithValue(r.Context(), contextKeyUserID, new(int64))

			next.ServeHTTP(sw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.Int64("bytes", sw.bytes),
				slog.String("remote_addr", r.RemoteAddr),
			}
			if id := UserIDFromContext(ctx); id != 0 {
				attrs = append(attrs, slog.Int64("user_id", id))
			}

			logger.LogAttrs(ctx, levelForStatus(sw.status), "HTTP запрос обработан", attrs...)
		})
	}
}
