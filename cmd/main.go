package main

import (
	"bufio"
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/cors"

	"dotdo/internal/ai"
	"dotdo/internal/auth"
	"dotdo/internal/cache"
	"dotdo/internal/chatbot"
	"dotdo/internal/config"
	"dotdo/internal/controller"
	"dotdo/internal/database"
	"dotdo/internal/events"
	"dotdo/internal/repository"
	"dotdo/internal/routes"
	"dotdo/pkg/logger"
)

func main() {
	loadEnvFile(".env")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error(ctx, "Configuration error", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "Database not available; exiting", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Schema migration failed", "error", err)
		os.Exit(1)
	}

	listCache := cache.New(ctx, cfg)

	events.EnsureTopic(ctx, cfg)
	publisher := events.NewPublisher(ctx, cfg)
	defer publisher.Close()
	go events.RunConsumer(ctx, cfg)

	todos := repository.NewTodoStore(db)
	memos := repository.NewMemoStore(db)
	users := repository.NewUserStore(db)

	bot := chatbot.NewService(todos, memos, ai.New(cfg), publisher)

	router := routes.Router(routes.Deps{
		Auth:      auth.NewHandler(users, cfg.JWTSecret, cfg.TokenTTL),
		Todos:     controller.NewTodoController(todos, listCache, publisher),
		Memos:     controller.NewMemoController(memos, listCache, publisher),
		Chat:      controller.NewChatController(bot),
		Health:    controller.NewHealthController(db, listCache),
		JWTSecret: cfg.JWTSecret,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	go func() {
		logger.Info(ctx, "HTTP server listening", "port", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "Server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Server shutdown error", "error", err)
	}
	logger.Info(ctx, "Server stopped")
}

// loadEnvFile reads a .env file and sets env vars (only if not already set).
func loadEnvFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.Index(line, "=")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])
		if strings.HasPrefix(val, `"`) && strings.HasSuffix(val, `"`) {
			val = strings.Trim(val, `"`)
		} else if strings.HasPrefix(val, "'") && strings.HasSuffix(val, "'") {
			val = strings.Trim(val, "'")
		}
		if key != "" && os.Getenv(key) == "" {
			_ = os.Setenv(key, val)
		}
	}
}
