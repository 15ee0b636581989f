package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/config"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/handler"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/logger"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/repository"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/router"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/service"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/session"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting MedQuiz Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Initialize Stores ─────────────────────────────────────────────
	// Everything lives in process memory; there is no external database.
	quizRepo := repository.NewQuizRepository()
	statsStore := repository.NewUserStatsStore()

	// ─── Initialize Session Manager ────────────────────────────────────
	manager := session.NewManager(log)

	// ─── Initialize Services ──────────────────────────────────────────
	authService, err := service.NewAuthService(cfg, statsStore)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize auth service")
	}
	quizService := service.NewQuizService(quizRepo, statsStore, log)
	sessionService := service.NewSessionService(manager, quizRepo, statsStore, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Quiz:    handler.NewQuizHandler(quizService, log),
		Session: handler.NewSessionHandler(sessionService, log),
		WS:      handler.NewWSHandler(sessionService, log, cfg.AllowedOrigins),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop live session countdowns so no timer goroutine lingers.
	manager.Shutdown()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
