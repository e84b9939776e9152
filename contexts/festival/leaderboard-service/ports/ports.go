package ports

import (
	"context"

	eventsv1 "festboard/contracts/gen/events/v1"
	festivalv1 "festboard/contracts/gen/festival/v1"
)

type (
	Document    = festivalv1.Document
	Snapshot    = festivalv1.Snapshot
	Category    = festivalv1.Category
	Team        = festivalv1.Team
	Competition = festivalv1.Competition
	Result      = festivalv1.Result
)

// DocumentSource is the read side of the shared festival document.
type DocumentSource interface {
	Load(ctx context.Context) (Snapshot, error)
}

// NameCollator orders display names. The production adapter is
// locale-aware; a nil collator falls back to byte order.
type NameCollator interface {
	Less(a, b string) bool
}

// Standing is one leaderboard row. Team is the team display name.
type Standing struct {
	Team  string
	Score int
}

// Leaderboards is the full computed ranking set. ByCategory is keyed by
// category name, matching how the public view labels its sections.
type Leaderboards struct {
	Overall    []Standing
	ByCategory map[string][]Standing
}

// StandingsWriter persists a computed ranking set as a queryable
// projection, replacing whatever the previous document revision produced.
type StandingsWriter interface {
	ReplaceStandings(ctx context.Context, revision int64, boards Leaderboards) error
}

type EventEnvelope = eventsv1.Envelope

type EventSubscriber interface {
	Subscribe(
		ctx context.Context,
		topic string,
		consumerGroup string,
		handler func(context.Context, EventEnvelope) error,
	) error
}
