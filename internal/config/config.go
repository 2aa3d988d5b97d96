// Пакет config — загрузка и валидация конфигурации TimeBank backend
// из переменных окружения.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Версия приложения, задаётся при сборке через -ldflags.
var Version = "dev"

// Config содержит все параметры конфигурации TimeBank backend.
type Config struct {
	// --- Сервер ---

	// Порт HTTP-сервера
	Port int
	// Уровень логирования (debug, info, warn, error)
	LogLevel slog.Level
	// Формат логов (json, text)
	LogFormat string
	// Разрешённые CORS origins (SPA dev-серверы)
	CORSOrigins []string
	// Таймаут чтения запроса (учитывает загрузку крупных файлов)
	HTTPReadTimeout time.Duration
	// Таймаут записи ответа
	HTTPWriteTimeout time.Duration
	// Таймаут простоя keep-alive соединений
	HTTPIdleTimeout time.Duration

	// --- PostgreSQL ---

	// Хост PostgreSQL
	DBHost string
	// Порт PostgreSQL
	DBPort int
	// Имя базы данных
	DBName string
	// Имя пользователя PostgreSQL
	DBUser string
	// Пароль пользователя PostgreSQL
	DBPassword string
	// Режим SSL: disable, require, verify-ca, verify-full
	DBSSLMode string
	// Максимальный размер пула подключений
	DBMaxConns int32

	// --- Хранилище файлов ---

	// Директория для загруженных файлов (создаётся при старте)
	UploadDir string
	// Максимальный размер загружаемого файла в байтах
	MaxUploadSize int64

	// --- Сессии ---

	// Секрет подписи JWT-токенов сессий
	JWTSecret string
	// Срок действия access-токена
	JWTTTL time.Duration

	// --- Graceful shutdown ---

	// Таймаут graceful shutdown HTTP-сервера
	ShutdownTimeout time.Duration
}

// Load загружает конфигурацию из переменных окружения, валидирует
// обязательные поля и возвращает Config или ошибку.
func Load() (*Config, error) {
	cfg := &Config{}
	var err error

	// --- Сервер ---

	// TB_PORT — порт HTTP-сервера (по умолчанию 8080)
	cfg.Port, err = getEnvInt("TB_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("TB_PORT: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("TB_PORT: значение %d вне допустимого диапазона 1-65535", cfg.Port)
	}

	// TB_LOG_LEVEL — уровень логирования (по умолчанию info)
	cfg.LogLevel, err = parseLogLevel(getEnvDefault("TB_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("TB_LOG_LEVEL: %w", err)
	}

	// TB_LOG_FORMAT — формат логов (по умолчанию json)
	cfg.LogFormat = getEnvDefault("TB_LOG_FORMAT", "json")
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("TB_LOG_FORMAT: недопустимое значение %q, допустимые: json, text", cfg.LogFormat)
	}

	// TB_CORS_ORIGINS — разрешённые origins через запятую
	// (по умолчанию локальные Vite/CRA dev-серверы)
	cfg.CORSOrigins = parseCSV(getEnvDefault("TB_CORS_ORIGINS",
		"http://localhost:5173,http://localhost:3000"))

	// TB_HTTP_READ_TIMEOUT — таймаут чтения запроса (по умолчанию 60s,
	// с запасом на загрузку крупных файлов)
	cfg.HTTPReadTimeout, err = getEnvDuration("TB_HTTP_READ_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("TB_HTTP_READ_TIMEOUT: %w", err)
	}

	// TB_HTTP_WRITE_TIMEOUT — таймаут записи ответа (по умолчанию 60s)
	cfg.HTTPWriteTimeout, err = getEnvDuration("TB_HTTP_WRITE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("TB_HTTP_WRITE_TIMEOUT: %w", err)
	}

	// TB_HTTP_IDLE_TIMEOUT — таймаут keep-alive (по умолчанию 120s)
	cfg.HTTPIdleTimeout, err = getEnvDuration("TB_HTTP_IDLE_TIMEOUT", 120*time.Second)
	if err != nil {
		return nil, fmt.Errorf("TB_HTTP_IDLE_TIMEOUT: %w", err)
	}

	// --- PostgreSQL ---

	// TB_DB_HOST — обязательный
	cfg.DBHost, err = getEnvRequired("TB_DB_HOST")
	if err != nil {
		return nil, err
	}

	// TB_DB_PORT — порт PostgreSQL (по умолчанию 5432)
	cfg.DBPort, err = getEnvInt("TB_DB_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("TB_DB_PORT: %w", err)
	}

	// TB_DB_NAME — обязательный
	cfg.DBName, err = getEnvRequired("TB_DB_NAME")
	if err != nil {
		return nil, err
	}

	// TB_DB_USER — обязательный
	cfg.DBUser, err = getEnvRequired("TB_DB_USER")
	if err != nil {
		return nil, err
	}

	// TB_DB_PASSWORD — обязательный
	cfg.DBPassword, err = getEnvRequired("TB_DB_PASSWORD")
	if err != nil {
		return nil, err
	}

	// TB_DB_SSL_MODE — режим SSL (по умолчанию disable)
	cfg.DBSSLMode = getEnvDefault("TB_DB_SSL_MODE", "disable")
	validSSLModes := map[string]bool{
		"disable": true, "require": true, "verify-ca": true, "verify-full": true,
	}
	if !validSSLModes[cfg.DBSSLMode] {
		return nil, fmt.Errorf("TB_DB_SSL_MODE: недопустимое значение %q, допустимые: disable, require, verify-ca, verify-full", cfg.DBSSLMode)
	}

	// TB_DB_MAX_CONNS — максимальный размер пула подключений (по умолчанию 10)
	maxConns, err := getEnvInt("TB_DB_MAX_CONNS", 10)
	if err != nil {
		return nil, fmt.Errorf("TB_DB_MAX_CONNS: %w", err)
	}
	if maxConns < 1 {
		return nil, fmt.Errorf("TB_DB_MAX_CONNS: значение должно быть не меньше 1, получено %d", maxConns)
	}
	cfg.DBMaxConns = int32(maxConns)

	// --- Хранилище файлов ---

	// TB_UPLOAD_DIR — директория загрузок (по умолчанию uploads)
	cfg.UploadDir = getEnvDefault("TB_UPLOAD_DIR", "uploads")

	// TB_MAX_UPLOAD_SIZE — лимит размера файла (по умолчанию 50 MB)
	maxUpload, err := getEnvInt("TB_MAX_UPLOAD_SIZE", 50<<20)
	if err != nil {
		return nil, fmt.Errorf("TB_MAX_UPLOAD_SIZE: %w", err)
	}
	if maxUpload < 1 {
		return nil, fmt.Errorf("TB_MAX_UPLOAD_SIZE: значение должно быть положительным")
	}
	cfg.MaxUploadSize = int64(maxUpload)

	// --- Сессии ---

	// TB_JWT_SECRET — обязательный
	cfg.JWTSecret, err = getEnvRequired("TB_JWT_SECRET")
	if err != nil {
		return nil, err
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("TB_JWT_SECRET: длина секрета должна быть не менее 32 символов")
	}

	// TB_JWT_TTL — срок действия токена (по умолчанию 24h)
	cfg.JWTTTL, err = getEnvDuration("TB_JWT_TTL", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("TB_JWT_TTL: %w", err)
	}

	// --- Graceful shutdown ---

	// TB_SHUTDOWN_TIMEOUT — таймаут graceful shutdown (по умолчанию 5s)
	cfg.ShutdownTimeout, err = getEnvDuration("TB_SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("TB_SHUTDOWN_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// DatabaseDSN возвращает строку подключения к PostgreSQL.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPassword, c.DBSSLMode,
	)
}

// SetupLogger настраивает глобальный slog-логгер на основе конфигурации.
func SetupLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// --- Вспомогательные функции ---

// getEnvRequired возвращает значение переменной окружения или ошибку, если она не задана.
func getEnvRequired(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s: обязательная переменная окружения не задана", key)
	}
	return val, nil
}

// getEnvDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvInt возвращает целочисленное значение переменной окружения или значение по умолчанию.
func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("некорректное целое число: %q", val)
	}
	return n, nil
}

// getEnvDuration возвращает time.Duration из переменной окружения или значение по умолчанию.
func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("некорректная длительность: %q (используйте формат Go: 30s, 1h, 15m)", val)
	}
	return d, nil
}

// parseLogLevel преобразует строку уровня логирования в slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("недопустимый уровень %q, допустимые: debug, info, warn, error", level)
	}
}

// parseCSV разбирает строку, разделённую запятыми, на срез строк.
// Пробелы вокруг элементов убираются, пустые элементы игнорируются.
func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
