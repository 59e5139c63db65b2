package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/brackets"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/config"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/db"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/handlers"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/repositories"
	api "github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/routes"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/services"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/storage"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Хранилище аватаров (Cloudflare R2)
	uploader, err := storage.NewR2Uploader(storage.R2Config{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("R2 uploader initialized")

	// WebSocket Hub
	wsHub := brackets.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket hub started")

	ids := models.NewUUIDGenerator()

	// Репозитории
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	eventRepo := repositories.NewPostgresEventRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	slotRepo := repositories.NewPostgresTimeSlotRepository(dbConn)
	logger.Info("repositories initialized")

	// Сервисы
	authService := services.NewAuthService(userRepo, ids)
	eventService := services.NewEventService(eventRepo, playerRepo, tournamentRepo, slotRepo, ids)
	playerService := services.NewPlayerService(playerRepo, eventRepo, uploader, ids)
	tournamentService := services.NewTournamentService(dbConn, tournamentRepo, eventRepo, ids)
	matchService := services.NewMatchService(dbConn, tournamentRepo, wsHub, ids)
	bracketService := services.NewBracketService(dbConn, tournamentRepo, wsHub, ids)
	slotService := services.NewSlotService(dbConn, slotRepo, tournamentRepo, eventRepo, wsHub, ids)
	logger.Info("services initialized")

	// HTTP-обработчики
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	eventHandler := handlers.NewEventHandler(eventService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	matchHandler := handlers.NewMatchHandler(matchService)
	bracketHandler := handlers.NewBracketHandler(bracketService)
	slotHandler := handlers.NewSlotHandler(slotService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub)
	logger.Info("HTTP handlers initialized")

	// Маршрутизация
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.JWTSecretKey,
		cfg.AllowedOrigins,
		authHandler,
		eventHandler,
		playerHandler,
		tournamentHandler,
		matchHandler,
		bracketHandler,
		slotHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
