// Пакет server — HTTP-сервер TimeBank с маршрутизацией chi
// и graceful shutdown. Без TLS — termination на reverse proxy.
package server

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/SnehaKumari118/timebank-backend/internal/api/handlers"
	"github.com/SnehaKumari118/timebank-backend/internal/api/middleware"
	"github.com/SnehaKumari118/timebank-backend/internal/config"
)

// uploadsFS — файловая система для раздачи загрузок без листинга
// директорий: обращение к директории отвечает 404, имена хранящихся
// файлов не перечисляются.
type uploadsFS struct {
	root http.FileSystem
}

func (u uploadsFS) Open(name string) (http.File, error) {
	f, err := u.root.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}

	return f, nil
}

// Handlers — доменные обработчики, собираемые в маршрутизатор.
type Handlers struct {
	Identity  *handlers.IdentityHandler
	Services  *handlers.ServicesHandler
	Resources *handlers.ResourcesHandler
	Contact   *handlers.ContactHandler
	Describe  *handlers.DescribeHandler
	Health    *handlers.HealthHandler
}

// Server — HTTP-сервер TimeBank.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        *config.Config
}

// New создаёт HTTP-сервер с настроенными routes и middleware.
// Мутирующие маршруты (кроме /register и /login) требуют JWT;
// чтение каталогов и раздача загрузок открыты.
func New(cfg *config.Config, logger *slog.Logger, h Handlers, jwtAuth *middleware.JWTAuth) *Server {
	router := chi.NewRouter()

	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// --- Служебные endpoints ---
	router.Get("/", h.Health.Root)
	router.Get("/health/ready", h.Health.HealthReady)
	router.Get("/metrics", h.Health.GetMetrics)

	// --- Открытые маршруты ---
	router.Post("/register", h.Identity.Register)
	router.Post("/login", h.Identity.Login)
	router.Get("/user/{id}", h.Identity.GetUser)
	router.Get("/services", h.Services.ListAll)
	router.Get("/my-services/{userId}", h.Services.ListByOwner)
	router.Get("/resources", h.Resources.ListAll)
	router.Get("/my-resources/{userId}", h.Resources.ListByOwner)
	router.Post("/generate-description", h.Describe.Generate)

	// Раздача загруженных файлов по сгенерированным именам.
	// Листинг директории закрыт: наружу уходят только отдельные файлы.
	router.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(uploadsFS{root: http.Dir(cfg.UploadDir)})))

	// --- Маршруты, требующие аутентификации ---
	router.Group(func(r chi.Router) {
		r.Use(jwtAuth.Middleware())

		r.Post("/update-profile", h.Identity.UpdateProfile)
		r.Post("/service", h.Services.Create)
		r.Put("/service/{id}", h.Services.Update)
		r.Delete("/service/{id}", h.Services.Delete)
		r.Post("/upload-resource", h.Resources.Upload)
		r.Put("/update-resource/{id}", h.Resources.Update)
		r.Delete("/delete-resource/{id}/{userId}", h.Resources.Delete)
		r.Post("/contact", h.Contact.Submit)
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
		cfg:        cfg,
	}
}

// Run запускает сервер и ожидает сигнала завершения (SIGINT, SIGTERM).
// При получении сигнала выполняется graceful shutdown.
func (s *Server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP-сервер запущен",
			slog.String("addr", s.httpServer.Addr),
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		s.logger.Info("Получен сигнал завершения", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка HTTP-сервера: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Выполняется graceful shutdown...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при graceful shutdown: %w", err)
	}

	s.logger.Info("HTTP-сервер остановлен")
	return nil
}
