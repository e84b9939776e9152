package application

import (
	"context"
	"log/slog"
	"sync"

	domainerrors "festboard/contexts/festival/leaderboard-service/domain/errors"
	"festboard/contexts/festival/leaderboard-service/ports"
)

// EventTypeDocumentReplaced mirrors the event emitted by the document
// store whenever the festival document changes.
const EventTypeDocumentReplaced = "festival.document.replaced"

// Service serves the public read model. It keeps one cached document
// snapshot plus the leaderboards computed from it, refreshed whenever a
// document event arrives. Reads never mutate the document.
type Service struct {
	Docs         ports.DocumentSource
	Collator     ports.NameCollator
	MatchTeamIDs bool
	Logger       *slog.Logger

	mu     sync.RWMutex
	cached ports.Snapshot
	boards ports.Leaderboards
	loaded bool
}

// Refresh reloads the document and recomputes every leaderboard from
// scratch. There is no incremental patching.
func (s *Service) Refresh(ctx context.Context) error {
	snapshot, err := s.Docs.Load(ctx)
	if err != nil {
		return err
	}

	boards := ComputeLeaderboards(snapshot.Document, s.MatchTeamIDs)

	s.mu.Lock()
	s.cached = snapshot
	s.boards = boards
	s.loaded = true
	s.mu.Unlock()

	resolveLogger(s.Logger).Info("leaderboards recomputed",
		"event", "leaderboards_recomputed",
		"module", "festival/leaderboard-service",
		"layer", "application",
		"revision", snapshot.Revision,
		"team_count", len(boards.Overall),
	)
	return nil
}

// HandleDocumentEvent is the bus subscription entry point.
func (s *Service) HandleDocumentEvent(ctx context.Context, _ ports.EventEnvelope) error {
	return s.Refresh(ctx)
}

func (s *Service) Categories(ctx context.Context) ([]ports.Category, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return EligibleCategories(snapshot.Document, s.Collator), nil
}

func (s *Service) Competitions(ctx context.Context, categoryID string) ([]ports.Competition, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !categoryExists(snapshot.Document, categoryID) {
		return nil, domainerrors.ErrCategoryNotFound
	}
	return EligibleCompetitions(snapshot.Document, categoryID, s.Collator), nil
}

func (s *Service) Results(ctx context.Context, competitionID string) (ports.Competition, []ports.Result, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return ports.Competition{}, nil, err
	}
	return PublishedResults(snapshot.Document, competitionID)
}

// Leaderboards returns a copy of the cached ranking set.
func (s *Service) Leaderboards(ctx context.Context) (ports.Leaderboards, error) {
	if _, err := s.snapshot(ctx); err != nil {
		return ports.Leaderboards{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLeaderboards(s.boards), nil
}

func (s *Service) snapshot(ctx context.Context) (ports.Snapshot, error) {
	s.mu.RLock()
	if s.loaded {
		snapshot := s.cached
		s.mu.RUnlock()
		return snapshot, nil
	}
	s.mu.RUnlock()

	if err := s.Refresh(ctx); err != nil {
		return ports.Snapshot{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached, nil
}

func categoryExists(doc ports.Document, categoryID string) bool {
	for _, category := range doc.Categories {
		if category.ID == categoryID {
			return true
		}
	}
	return false
}

func cloneLeaderboards(boards ports.Leaderboards) ports.Leaderboards {
	clone := ports.Leaderboards{
		Overall:    append([]ports.Standing(nil), boards.Overall...),
		ByCategory: make(map[string][]ports.Standing, len(boards.ByCategory)),
	}
	for name, bucket := range boards.ByCategory {
		clone.ByCategory[name] = append([]ports.Standing(nil), bucket...)
	}
	return clone
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
