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

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/clients"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/config"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/handlers"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/routes"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/session"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/storage"
	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.String("api", cfg.APIBaseURL),
		slog.Int("port", cfg.ServerPort))

	// Restore the persisted session, if any.
	sessions := session.NewStore(cfg.SessionFile, clockwork.NewRealClock())
	if err := sessions.Load(); err != nil {
		logger.Warn("failed to restore session, starting logged out", slog.Any("error", err))
	} else if u := sessions.User(); u != nil {
		logger.Info("session restored", slog.Int("user_id", u.ID), slog.String("role", u.Role))
	}

	// Resource clients share one base client; a 401 observed anywhere clears
	// the session.
	base := clients.NewBaseClient(cfg.APIBaseURL, sessions, logger)
	authClient := clients.NewAuthClient(base)
	tournamentClient := clients.NewTournamentClient(base)
	teamClient := clients.NewTeamClient(base)
	matchClient := clients.NewMatchClient(base)
	playerClient := clients.NewPlayerClient(base)
	eventClient := clients.NewEventClient(base)
	userClient := clients.NewUserClient(base)
	logger.Info("resource clients initialized")

	// Crest uploads are optional; without R2 credentials the team form simply
	// hides the file field.
	var crestUploader storage.Uploader
	if cfg.CrestUploadEnabled() {
		crestUploader, err = storage.NewR2Uploader(storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("crest uploader initialized")
	}

	render, err := handlers.NewRenderer(sessions, logger)
	if err != nil {
		logger.Error("failed to parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	authHandler := handlers.NewAuthHandler(authClient, sessions, render, logger)
	homeHandler := handlers.NewHomeHandler(tournamentClient, render)
	tournamentHandler := handlers.NewTournamentHandler(tournamentClient, matchClient, sessions, render, logger)
	teamHandler := handlers.NewTeamHandler(teamClient, tournamentClient, playerClient, crestUploader, render, logger)
	matchHandler := handlers.NewMatchHandler(matchClient, tournamentClient, teamClient, eventClient, render, logger)
	playerHandler := handlers.NewPlayerHandler(playerClient, teamClient, render, logger)
	eventHandler := handlers.NewEventHandler(eventClient, matchClient, playerClient, render, logger)
	userHandler := handlers.NewUserHandler(userClient, render, logger)
	logger.Info("screen handlers initialized")

	router := chi.NewRouter()
	routes.SetupRoutes(
		router,
		logger,
		sessions,
		authHandler,
		homeHandler,
		tournamentHandler,
		teamHandler,
		matchHandler,
		playerHandler,
		eventHandler,
		userHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting console", slog.String("address", server.Addr))
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
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
	}
	logger.Info("application exited")
}
