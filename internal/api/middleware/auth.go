// auth.go — JWT middleware для аутентификации запросов.
// Извлекает Bearer token, валидирует подпись (HS256) и помещает
// ID пользователя в контекст запроса для downstream handlers.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	apierrors "github.com/SnehaKumari118/timebank-backend/internal/api/errors"
	"github.com/SnehaKumari118/timebank-backend/internal/auth"
)

// contextKey — тип для ключей контекста (избегаем коллизий).
type contextKey string

// contextKeyUserID — ID аутентифицированного пользователя в контексте запроса.
// Значение хранится как *int64: RequestLogger размещает holder до
// аутентификации, а auth middleware заполняет его после валидации токена,
// чтобы id попал в итоговую запись лога.
const contextKeyUserID contextKey = "user_id"

// withUserID записывает ID пользователя в контекст. Если выше по цепочке
// уже размещён holder, id пишется в него, иначе создаётся новый.
func withUserID(ctx context.Context, id int64) context.Context {
	if p, ok := ctx.Value(contextKeyUserID).(*int64); ok {
		*p = id
		return ctx
	}
	holder := id
	return context.WithValue(ctx, contextKeyUserID, &holder)
}

// JWTAuth — middleware для JWT-аутентификации c симметричным ключом.
type JWTAuth struct {
	secret []byte
	logger *slog.Logger
}

// NewJWTAuth создаёт JWT middleware.
// secret — общий ключ подписи токенов (HS256).
func NewJWTAuth(secret []byte, logger *slog.Logger) *JWTAuth {
	return &JWTAuth{
		secret: secret,
		logger: logger.With(slog.String("component", "jwt_auth")),
	}
}

// Middleware возвращает HTTP middleware для JWT-аутентификации.
// Извлекает Bearer token, валидирует подпись и помещает ID пользователя
// в контекст. Запросы без валидного токена отклоняются с 401.
func (j *JWTAuth) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apierrors.Unauthorized(w, "Отсутствует заголовок Authorization")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				apierrors.Unauthorized(w, "Неверный формат Authorization: ожидается Bearer <token>")
				return
			}

			tokenString := parts[1]
			if tokenString == "" {
				apierrors.Unauthorized(w, "Пустой Bearer token")
				return
			}

			userID, err := auth.ParseToken(tokenString, j.secret)
			if err != nil {
				j.logger.Debug("JWT валидация не пройдена",
					slog.String("error", err.Error()),
					slog.String("remote_addr", r.RemoteAddr),
				)
				apierrors.Unauthorized(w, "Невалидный или просроченный токен")
				return
			}

			next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
		})
	}
}

// UserIDFromContext извлекает ID аутентифицированного пользователя из контекста.
// Возвращает 0, если пользователь не аутентифицирован.
func UserIDFromContext(ctx context.Context) int64 {
	if p, ok := ctx.Value(contextKeyUserID).(*int64); ok {
		return *p
	}
	return 0
}
