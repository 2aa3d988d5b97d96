// Точка входа TimeBank backend — REST API биржи обмена навыками.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SnehaKumari118/timebank-backend/internal/api/handlers"
	"github.com/SnehaKumari118/timebank-backend/internal/api/middleware"
	"github.com/SnehaKumari118/timebank-backend/internal/config"
	"github.com/SnehaKumari118/timebank-backend/internal/database"
	"github.com/SnehaKumari118/timebank-backend/internal/repository"
	"github.com/SnehaKumari118/timebank-backend/internal/server"
	"github.com/SnehaKumari118/timebank-backend/internal/service"
	"github.com/SnehaKumari118/timebank-backend/internal/storage/filestore"
)

func main() {
	// Загрузка конфигурации из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка конфигурации: %v\n", err)
		os.Exit(1)
	}

	// Настройка логгера
	logger := config.SetupLogger(cfg)
	logger.Info("TimeBank backend запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
	)

	// --- Инициализация компонентов ---

	// 1. Миграции схемы БД
	if err := database.Migrate(cfg, logger); err != nil {
		logger.Error("Ошибка применения миграций", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 2. Пул подключений PostgreSQL
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error("Ошибка подключения к PostgreSQL", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// 3. Хранилище загруженных файлов
	store, err := filestore.New(cfg.UploadDir)
	if err != nil {
		logger.Error("Ошибка инициализации хранилища файлов", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Хранилище файлов готово", slog.String("dir", store.DataDir()))

	// 4. Репозитории
	users := repository.NewUserRepository(pool)
	services := repository.NewServiceRepository(pool)
	resources := repository.NewLearningResourceRepository(pool)
	messages := repository.NewContactMessageRepository(pool)

	// 5. Сервисы
	jwtSecret := []byte(cfg.JWTSecret)
	identitySvc := service.NewIdentityService(users, store, jwtSecret, cfg.JWTTTL, logger)
	catalogSvc := service.NewCatalogService(services, logger)
	resourceSvc := service.NewResourceService(resources, store, logger)
	contactSvc := service.NewContactService(messages, logger)

	// 6. Handlers и middleware
	h := server.Handlers{
		Identity:  handlers.NewIdentityHandler(identitySvc, logger),
		Services:  handlers.NewServicesHandler(catalogSvc, logger),
		Resources: handlers.NewResourcesHandler(resourceSvc, cfg.MaxUploadSize, logger),
		Contact:   handlers.NewContactHandler(contactSvc, logger),
		Describe:  handlers.NewDescribeHandler(logger),
		Health:    handlers.NewHealthHandler(database.NewReadinessChecker(pool)),
	}
	jwtAuth := middleware.NewJWTAuth(jwtSecret, logger)

	// 7. HTTP-сервер (блокирующий вызов с graceful shutdown)
	srv := server.New(cfg, logger, h, jwtAuth)
	if err := srv.Run(); err != nil {
		logger.Error("Ошибка сервера", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("TimeBank backend остановлен")
}
