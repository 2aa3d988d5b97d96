// Пакет auth — выпуск и проверка JWT-токенов сессий.
// Токены подписываются HS256 секретом приложения; subject — id пользователя.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken — токен не прошёл проверку подписи или срока действия.
var ErrInvalidToken = errors.New("недействительный токен")

// Claims — утверждения токена сессии: стандартные плюс id пользователя.
type Claims struct {
	jwt.RegisteredClaims
	// UserID — идентификатор аутентифицированного пользователя.
	// Действующая идентичность для всех проверок владения.
	UserID int64 `json:"uid"`
}

// GenerateToken выпускает подписанный токен сессии для пользователя.
func GenerateToken(userID int64, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return signed, nil
}

// ParseToken проверяет подпись и срок действия токена,
// возвращает id пользователя из claims.
func ParseToken(tokenString string, secret []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
