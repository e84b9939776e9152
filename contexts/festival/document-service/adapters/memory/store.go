package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	domainerrors "festboard/contexts/festival/document-service/domain/errors"
	"festboard/contexts/festival/document-service/ports"
)

// Store keeps the singleton document in process memory. It also carries an
// in-memory outbox so worker paths can be exercised without postgres.
type Store struct {
	mu sync.RWMutex

	snapshot ports.Snapshot
	outbox   []outboxEntry
}

type outboxEntry struct {
	message   ports.OutboxMessage
	published bool
}

func NewStore() *Store {
	return &Store{
		snapshot: ports.Snapshot{
			Document: ports.Document{}.Normalize(),
			Revision: 0,
		},
	}
}

func (s *Store) Load(ctx context.Context) (ports.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSnapshot(s.snapshot), nil
}

func (s *Store) Replace(ctx context.Context, doc ports.Document, expectedRevision int64) (ports.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expectedRevision >= 0 && expectedRevision != s.snapshot.Revision {
		return ports.Snapshot{}, domainerrors.ErrRevisionConflict
	}

	s.snapshot = ports.Snapshot{
		Document:  doc.Normalize().Clone(),
		Revision:  s.snapshot.Revision + 1,
		UpdatedAt: time.Now().UTC(),
	}
	return cloneSnapshot(s.snapshot), nil
}

func (s *Store) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbox = append(s.outbox, outboxEntry{
		message: ports.OutboxMessage{
			OutboxID:     envelope.EventID,
			EventType:    envelope.EventType,
			PartitionKey: envelope.PartitionKey,
			Payload:      payload,
			CreatedAt:    envelope.OccurredAt,
		},
	})
	return nil
}

func (s *Store) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := make([]ports.OutboxMessage, 0, limit)
	for _, entry := range s.outbox {
		if entry.published {
			continue
		}
		pending = append(pending, entry.message)
		if limit > 0 && len(pending) >= limit {
			break
		}
	}
	return pending, nil
}

func (s *Store) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.outbox {
		if s.outbox[i].message.OutboxID == outboxID {
			s.outbox[i].published = true
			return nil
		}
	}
	return nil
}

func cloneSnapshot(snapshot ports.Snapshot) ports.Snapshot {
	return ports.Snapshot{
		Document:  snapshot.Document.Clone(),
		Revision:  snapshot.Revision,
		UpdatedAt: snapshot.UpdatedAt,
	}
}

var (
	_ ports.Repository       = (*Store)(nil)
	_ ports.OutboxWriter     = (*Store)(nil)
	_ ports.OutboxRepository = (*Store)(nil)
)
