package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"omnichat/client/internal/api"
	"omnichat/client/internal/backend"
	"omnichat/client/internal/config"
	"omnichat/client/internal/database"
	"omnichat/client/internal/license"
	"omnichat/client/internal/rag"
	"omnichat/client/internal/repository"
	"omnichat/client/internal/service"
	"omnichat/client/internal/store"
)

const (
	licenseTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
	refreshRetry    = 3 * time.Second
)

// App holds the wired components of the client.
type App struct {
	Config   *config.Config
	DB       *sql.DB
	Server   *http.Server
	Chat     *service.ChatService
	Gate     *license.Gate
	listener *backend.EventListener
}

// NewApp opens the local database, restores the license state and wires the
// engine, the backend client and the control API.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)

	repo := repository.NewSQLiteRepository(db)

	gate := license.NewGate(repo,
		license.NewLemonSqueezyClient(cfg.LicenseAPIURL, cfg.LicenseProductID, licenseTimeout),
		license.Config{InstanceName: cfg.InstanceName, GracePeriodDays: cfg.GracePeriodDays})
	if err := gate.Load(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load license state: %w", err)
	}

	st, err := store.New(cfg.MessageCacheSize)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	be := backend.NewHTTPBackend(cfg.BackendURL, cfg.RequestTimeout)
	hub := backend.NewHub()

	models := service.NewModelService()
	settingsService := service.NewSettingsService(repo, models)
	chatService := service.NewChatService(st, be, hub, gate, rag.NewBuilder(be, cfg.RAGTopK), settingsService, models)

	router := api.NewRouter(
		api.NewChatHandler(chatService),
		api.NewModelHandler(settingsService),
		api.NewLicenseHandler(gate),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for the state stream
		IdleTimeout:       120 * time.Second,
	}

	return &App{
		Config:   cfg,
		DB:       db,
		Server:   server,
		Chat:     chatService,
		Gate:     gate,
		listener: backend.NewEventListener(cfg.BackendEventsURL, hub),
	}, nil
}

// Start begins listening for backend events and loads the conversation list.
// Both stop when ctx is cancelled.
func (a *App) Start(ctx context.Context) {
	go a.listener.Run(ctx)
	go loadConversations(ctx, a.Chat)
}

// Close releases the in-flight session and the database.
func (a *App) Close() error {
	a.Chat.Cancel()
	a.Chat.Wait()
	return a.DB.Close()
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not configured yet, so this goes through the default logger.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	app.Start(ctx)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", app.Server.Addr)
		serverErr <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}
	return 0
}

// loadConversations retries the initial list load until the backend answers.
func loadConversations(ctx context.Context, chat *service.ChatService) {
	for {
		err := chat.RefreshConversations(ctx)
		if err == nil {
			slog.Info("Conversations loaded", "count", len(chat.State().Conversations))
			return
		}
		slog.Debug("Backend not ready yet, retrying", "retry_in", refreshRetry, "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(refreshRetry):
		}
	}
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
