package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"festboard/contexts/festival/document-service/ports"
)

const EventTypeDocumentReplaced = "festival.document.replaced"

type replacedPayload struct {
	StorageKey   string `json:"storage_key"`
	Revision     int64  `json:"revision"`
	Categories   int    `json:"categories"`
	Teams        int    `json:"teams"`
	Competitions int    `json:"competitions"`
}

// Service fronts the shared document store. Every remote change is fanned
// out to local watchers and onto the event bus, mirroring the realtime-store
// subscription the clients rely on.
type Service struct {
	Repo            ports.Repository
	Outbox          ports.OutboxWriter
	Publisher       ports.EventPublisher
	Clock           ports.Clock
	IDGenerator     ports.IDGenerator
	StorageKey      string
	Topic           string
	EnforceRevision bool
	Logger          *slog.Logger

	mu       sync.Mutex
	watchers map[int]func(ports.Snapshot)
	nextID   int
}

func (s *Service) Load(ctx context.Context) (ports.Snapshot, error) {
	snapshot, err := s.Repo.Load(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}
	snapshot.Document = snapshot.Document.Normalize()
	return snapshot, nil
}

// Replace overwrites the whole document. With the revision check disabled
// the last writer wins and expectedRevision is ignored.
func (s *Service) Replace(ctx context.Context, doc ports.Document, expectedRevision int64) (ports.Snapshot, error) {
	if !s.EnforceRevision {
		expectedRevision = -1
	}

	snapshot, err := s.Repo.Replace(ctx, doc.Normalize(), expectedRevision)
	if err != nil {
		return ports.Snapshot{}, err
	}

	if err := s.announce(ctx, snapshot); err != nil {
		return ports.Snapshot{}, err
	}
	s.notify(snapshot)

	ResolveLogger(s.Logger).Info("document replaced",
		"event", "document_replaced",
		"module", "festival/document-service",
		"layer", "application",
		"storage_key", s.StorageKey,
		"revision", snapshot.Revision,
		"competitions", len(snapshot.Document.Competitions),
	)
	return snapshot, nil
}

// Watch registers fn for every subsequent replace. The returned cancel
// function removes the registration.
func (s *Service) Watch(fn func(ports.Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watchers == nil {
		s.watchers = make(map[int]func(ports.Snapshot))
	}
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers, id)
	}
}

func (s *Service) announce(ctx context.Context, snapshot ports.Snapshot) error {
	if s.Outbox == nil && s.Publisher == nil {
		return nil
	}

	eventID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return err
	}
	data, err := json.Marshal(replacedPayload{
		StorageKey:   s.StorageKey,
		Revision:     snapshot.Revision,
		Categories:   len(snapshot.Document.Categories),
		Teams:        len(snapshot.Document.Teams),
		Competitions: len(snapshot.Document.Competitions),
	})
	if err != nil {
		return err
	}
	envelope := ports.EventEnvelope{
		EventID:          eventID,
		EventType:        EventTypeDocumentReplaced,
		OccurredAt:       s.Clock.Now().UTC(),
		SourceService:    "festboard",
		SchemaVersion:    1,
		PartitionKeyPath: "storage_key",
		PartitionKey:     s.StorageKey,
		Data:             data,
	}

	if s.Outbox != nil {
		return s.Outbox.AppendOutbox(ctx, envelope)
	}
	return s.Publisher.Publish(ctx, s.Topic, envelope)
}

func (s *Service) notify(snapshot ports.Snapshot) {
	s.mu.Lock()
	fns := make([]func(ports.Snapshot), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ports.Snapshot{
			Document:  snapshot.Document.Clone(),
			Revision:  snapshot.Revision,
			UpdatedAt: snapshot.UpdatedAt,
		})
	}
}
