package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	festivalv1 "festboard/contracts/gen/festival/v1"
	domainerrors "festboard/contexts/festival/document-service/domain/errors"
	"festboard/contexts/festival/document-service/ports"
)

func TestReplaceIncrementsRevision(t *testing.T) {
	store := NewStore()

	doc := festivalv1.Document{Teams: []festivalv1.Team{{ID: "t1", Name: "Red"}}}
	first, err := store.Replace(context.Background(), doc, -1)
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	second, err := store.Replace(context.Background(), doc, -1)
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if first.Revision != 1 || second.Revision != 2 {
		t.Fatalf("revisions = %d, %d; want 1, 2", first.Revision, second.Revision)
	}
}

func TestReplaceRevisionConflict(t *testing.T) {
	store := NewStore()

	if _, err := store.Replace(context.Background(), festivalv1.Document{}, 0); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	_, err := store.Replace(context.Background(), festivalv1.Document{}, 0)
	if !errors.Is(err, domainerrors.ErrRevisionConflict) {
		t.Fatalf("expected ErrRevisionConflict, got %v", err)
	}
}

func TestLoadReturnsClone(t *testing.T) {
	store := NewStore()
	doc := festivalv1.Document{Teams: []festivalv1.Team{{ID: "t1", Name: "Red"}}}
	if _, err := store.Replace(context.Background(), doc, -1); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	snapshot, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	snapshot.Document.Teams[0].Name = "Blue"

	again, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if again.Document.Teams[0].Name != "Red" {
		t.Fatal("mutating a loaded snapshot leaked into the store")
	}
}

func TestOutboxPendingAndPublished(t *testing.T) {
	store := NewStore()
	envelope := ports.EventEnvelope{
		EventID:    "evt-1",
		EventType:  "festival.document.replaced",
		OccurredAt: time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC),
	}
	if err := store.AppendOutbox(context.Background(), envelope); err != nil {
		t.Fatalf("append outbox failed: %v", err)
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 || pending[0].OutboxID != "evt-1" {
		t.Fatalf("unexpected pending set: %+v", pending)
	}

	if err := store.MarkOutboxPublished(context.Background(), "evt-1", time.Now()); err != nil {
		t.Fatalf("mark published failed: %v", err)
	}
	pending, err = store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected empty pending set, got %+v", pending)
	}
}
