// Пакет database отвечает за слой PostgreSQL: пул подключений с лимитом
// из конфигурации, накат схемы из вшитых миграций и readiness-проверку.
package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SnehaKumari118/timebank-backend/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Таймауты операций с базой вне контекста запроса.
const (
	connectPingTimeout = 5 * time.Second
	readyPingTimeout   = 3 * time.Second
)

// Connect открывает пул pgxpool и проверяет базу через ping.
// Размер пула ограничен cfg.DBMaxConns: это верхняя граница
// одновременных сессий БД на весь сервис.
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("некорректный DSN PostgreSQL: %w", err)
	}
	poolCfg.MaxConns = cfg.DBMaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул подключений: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectPingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("PostgreSQL недоступен: %w", err)
	}

	logger.Info("Пул подключений PostgreSQL готов",
		slog.String("host", cfg.DBHost),
		slog.Int("port", cfg.DBPort),
		slog.String("database", cfg.DBName),
		slog.Int("max_conns", int(cfg.DBMaxConns)),
	)

	return pool, nil
}

// Migrate приводит схему базы к последней версии. Миграции вшиты
// в бинарник, поэтому накат выполняется на каждом старте: повторный
// запуск на актуальной схеме ничего не меняет.
func Migrate(cfg *config.Config, logger *slog.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("источник миграций: %w", err)
	}

	// Учётные данные экранируются: пароль может содержать
	// символы со спецзначением в URL.
	dbURL := fmt.Sprintf(
		"pgx5://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.DBUser), url.QueryEscape(cfg.DBPassword),
		cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode,
	)

	m, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return fmt.Errorf("инициализация миграций: %w", err)
	}
	defer m.Close()

	switch err := m.Up(); {
	case err == nil:
		version, dirty, vErr := m.Version()
		if vErr != nil {
			return fmt.Errorf("чтение версии схемы: %w", vErr)
		}
		logger.Info("Схема базы обновлена",
			slog.Uint64("version", uint64(version)),
			slog.Bool("dirty", dirty),
		)
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("Схема базы актуальна, новых миграций нет")
	default:
		return fmt.Errorf("применение миграций: %w", err)
	}

	return nil
}

// ReadinessChecker сообщает состояние PostgreSQL для health endpoint.
type ReadinessChecker struct {
	pool *pgxpool.Pool
}

// NewReadinessChecker создаёт проверку готовности поверх пула.
func NewReadinessChecker(pool *pgxpool.Pool) *ReadinessChecker {
	return &ReadinessChecker{pool: pool}
}

// CheckReady выполняет ping с собственным таймаутом и возвращает
// статус ("ok" или "fail") с пояснением.
func (c *ReadinessChecker) CheckReady() (status string, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), readyPingTimeout)
	defer cancel()

	if err := c.pool.Ping(ctx); err != nil {
		return "fail", fmt.Sprintf("PostgreSQL недоступен: %v", err)
	}
	return "ok", "подключение активно"
}
