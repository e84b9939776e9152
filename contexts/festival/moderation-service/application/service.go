package application

import (
	"context"
	"log/slog"

	"festboard/contexts/festival/moderation-service/ports"
)

// Service implements the admin mutations. Every operation follows the same
// cycle: load the current snapshot, mutate the document in memory, replace
// the whole document. There are no partial updates.
type Service struct {
	Docs        ports.DocumentStore
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) mutate(
	ctx context.Context,
	fn func(doc *ports.Document) error,
) (ports.Snapshot, error) {
	snapshot, err := s.Docs.Load(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}

	doc := snapshot.Document
	if err := fn(&doc); err != nil {
		return ports.Snapshot{}, err
	}

	return s.Docs.Replace(ctx, doc, snapshot.Revision)
}

func (s Service) logMutation(event string, attrs ...any) {
	base := []any{
		"event", event,
		"module", "festival/moderation-service",
		"layer", "application",
	}
	resolveLogger(s.Logger).Info(event, append(base, attrs...)...)
}
