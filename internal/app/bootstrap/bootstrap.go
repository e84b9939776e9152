package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	documentservice "festboard/contexts/festival/document-service"
	documentpostgres "festboard/contexts/festival/document-service/adapters/postgres"
	documentworkers "festboard/contexts/festival/document-service/application/workers"
	documentports "festboard/contexts/festival/document-service/ports"
	leaderboardservice "festboard/contexts/festival/leaderboard-service"
	"festboard/contexts/festival/leaderboard-service/adapters/collate"
	leaderboardpostgres "festboard/contexts/festival/leaderboard-service/adapters/postgres"
	leaderboardworkers "festboard/contexts/festival/leaderboard-service/application/workers"
	moderationservice "festboard/contexts/festival/moderation-service"
	posterservice "festboard/contexts/festival/poster-service"
	posterports "festboard/contexts/festival/poster-service/ports"
	"festboard/internal/platform/config"
	"festboard/internal/platform/db"
	"festboard/internal/platform/httpserver"
	"festboard/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	bus          *messaging.Kafka
	outboxRelay  documentworkers.OutboxRelay
	projector    leaderboardworkers.Projector
	topic        string
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	bus, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	var pg *db.Postgres
	var document documentservice.Module
	deps := documentservice.Dependencies{
		Clock:           documentpostgres.SystemClock{},
		IDGenerator:     documentpostgres.UUIDGenerator{},
		StorageKey:      cfg.DocumentStorageKey,
		Topic:           cfg.DocumentTopic,
		EnforceRevision: cfg.EnableRevisionCheck,
		Logger:          logger,
	}

	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		repo := documentpostgres.NewRepository(pg.DB, cfg.DocumentStorageKey, logger)
		if err := repo.Migrate(); err != nil {
			return nil, err
		}
		deps.Repository = repo
		deps.Outbox = repo
		document = documentservice.NewModule(deps)
	} else {
		// No DSN means a single-process deployment; events skip the
		// outbox and go straight onto the in-process bus.
		deps.Publisher = bus
		document = documentservice.NewInMemoryModule(deps)
		logger.Info("running with in-memory document store",
			"event", "bootstrap_memory_store",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}

	moderation := moderationservice.NewModule(moderationservice.Dependencies{
		Docs:   document.Service,
		Logger: logger,
	})

	leaderboard := leaderboardservice.NewModule(leaderboardservice.Dependencies{
		Docs:         document.Service,
		Collator:     collate.NewForLocale(cfg.CollationLocale),
		MatchTeamIDs: cfg.EnableTeamIDMatching,
		Logger:       logger,
	})

	// Local watch keeps the read model hot without a bus round trip.
	document.Service.Watch(func(_ documentports.Snapshot) {
		if err := leaderboard.Service.Refresh(context.Background()); err != nil {
			logger.Error("leaderboard refresh failed",
				"event", "bootstrap_leaderboard_refresh_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"error", err.Error(),
			)
		}
	})

	poster := posterservice.NewModule(posterservice.Dependencies{
		Docs: document.Service,
		Branding: posterports.Branding{
			FestTitle:    cfg.PosterFestTitle,
			FestSubtitle: cfg.PosterFestSubtitle,
			FooterLine1:  cfg.PosterFooterLine1,
			FooterLine2:  cfg.PosterFooterLine2,
		},
		Logger: logger,
	})

	server := httpserver.New(
		document,
		moderation,
		leaderboard,
		poster,
		cfg.AdminToken,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	repo := documentpostgres.NewRepository(pg.DB, cfg.DocumentStorageKey, logger)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	standings := leaderboardpostgres.NewRepository(pg.DB)
	if err := standings.Migrate(); err != nil {
		return nil, err
	}

	return &WorkerApp{
		postgres: pg,
		bus:      bus,
		outboxRelay: documentworkers.OutboxRelay{
			Outbox:    repo,
			Publisher: bus,
			Clock:     documentpostgres.SystemClock{},
			Topic:     cfg.DocumentTopic,
			BatchSize: 100,
			Logger:    logger,
		},
		projector: leaderboardworkers.Projector{
			Docs:         repo,
			Standings:    standings,
			MatchTeamIDs: cfg.EnableTeamIDMatching,
			Logger:       logger,
		},
		topic:        cfg.DocumentTopic,
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if err := w.projector.Run(ctx, w.bus, w.topic, "festival-standings-cg"); err != nil {
		return err
	}

	// Project once at startup so the standings table reflects the
	// current document even before the first event arrives.
	if err := w.projector.RunOnce(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
