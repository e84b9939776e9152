package workers

import (
	"context"
	"log/slog"

	"festboard/contexts/festival/leaderboard-service/application"
	"festboard/contexts/festival/leaderboard-service/ports"
)

// Projector materializes the leaderboards into a queryable store. The
// worker process runs it once per document event; each run replaces the
// previous projection wholesale.
type Projector struct {
	Docs         ports.DocumentSource
	Standings    ports.StandingsWriter
	MatchTeamIDs bool
	Logger       *slog.Logger
}

func (p Projector) RunOnce(ctx context.Context) error {
	logger := p.logger()

	snapshot, err := p.Docs.Load(ctx)
	if err != nil {
		logger.Error("load document failed",
			"event", "standings_projection_load_failed",
			"module", "festival/leaderboard-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	boards := application.ComputeLeaderboards(snapshot.Document, p.MatchTeamIDs)
	if err := p.Standings.ReplaceStandings(ctx, snapshot.Revision, boards); err != nil {
		logger.Error("replace standings failed",
			"event", "standings_projection_write_failed",
			"module", "festival/leaderboard-service",
			"layer", "worker",
			"revision", snapshot.Revision,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("standings projected",
		"event", "standings_projected",
		"module", "festival/leaderboard-service",
		"layer", "worker",
		"revision", snapshot.Revision,
		"team_count", len(boards.Overall),
	)
	return nil
}

// Run subscribes the projector to document events and blocks until the
// subscriber returns.
func (p Projector) Run(ctx context.Context, subscriber ports.EventSubscriber, topic, consumerGroup string) error {
	return subscriber.Subscribe(ctx, topic, consumerGroup, func(ctx context.Context, _ ports.EventEnvelope) error {
		return p.RunOnce(ctx)
	})
}

func (p Projector) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
