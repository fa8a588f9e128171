package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/vocab-api/internal/api"
	"github.com/phrazzld/vocab-api/internal/config"
	"github.com/phrazzld/vocab-api/internal/domain/schedule"
	"github.com/phrazzld/vocab-api/internal/platform/logger"
	"github.com/phrazzld/vocab-api/internal/platform/postgres"
	"github.com/phrazzld/vocab-api/internal/service/learning"
	"github.com/phrazzld/vocab-api/internal/session"
)

// application bundles the initialized components of the server process.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	router http.Handler
}

// initializeApp loads configuration and wires up all application components:
// logging, the optional database, the scheduling policy, the learning
// service, and the HTTP router.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("database_configured", cfg.Database.URL != ""))

	app := &application{
		config: cfg,
		logger: log,
	}

	ctx := context.Background()

	// Without a database the service falls back to the built-in starter
	// deck and reviews are not persisted.
	var (
		wordRepo learning.WordRepository
		recorder learning.ReviewRecorder
	)
	if cfg.Database.URL != "" {
		db, err := openDatabase(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.db = db

		if err := runMigrations(db, log); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		wordStore := postgres.NewPostgresWordStore(db, log)
		reviewStore := postgres.NewPostgresReviewStore(db, log)

		if err := seedStarterWords(ctx, db, wordStore, log); err != nil {
			return nil, fmt.Errorf("failed to seed starter words: %w", err)
		}

		wordRepo = learning.NewWordRepositoryAdapter(wordStore)
		recorder = learning.NewReviewRecorderAdapter(reviewStore)
	} else {
		log.Info("no database configured, serving the built-in starter deck")
	}

	sched, err := schedule.NewServiceWithParams(schedule.NewParams(schedule.ParamsConfig{
		CorrectIntervalDays:   cfg.Schedule.CorrectIntervalDays,
		IncorrectIntervalDays: cfg.Schedule.IncorrectIntervalDays,
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule service: %w", err)
	}

	svc := learning.NewService(wordRepo, recorder, sched, log)

	deck, err := svc.BuildDeck(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build initial deck: %w", err)
	}
	log.Info("session deck ready", slog.Int("deck_size", deck.Len()))

	handler := api.NewSessionHandler(svc, session.NewManager(), deck, log)
	app.router = newRouter(handler, app.db)

	return app, nil
}
