package application

import (
	"context"
	"errors"
	"testing"
	"time"

	festivalv1 "festboard/contracts/gen/festival/v1"
	"festboard/contexts/festival/document-service/adapters/memory"
	domainerrors "festboard/contexts/festival/document-service/domain/errors"
	"festboard/contexts/festival/document-service/ports"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

type sequenceIDGen struct {
	ids  []string
	next int
}

func (g *sequenceIDGen) NewID(_ context.Context) (string, error) {
	if g.next >= len(g.ids) {
		return "", errors.New("id generator exhausted")
	}
	id := g.ids[g.next]
	g.next++
	return id, nil
}

type capturingPublisher struct {
	topic  string
	events []ports.EventEnvelope
}

func (p *capturingPublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	p.topic = topic
	p.events = append(p.events, event)
	return nil
}

func newTestService(store *memory.Store, publisher ports.EventPublisher) *Service {
	return &Service{
		Repo:        store,
		Publisher:   publisher,
		Clock:       fixedClock{now: time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)},
		IDGenerator: &sequenceIDGen{ids: []string{"evt-1", "evt-2", "evt-3"}},
		StorageKey:  "artsFestData",
		Topic:       "festival.document.replaced",
	}
}

func sampleDocument() festivalv1.Document {
	return festivalv1.Document{
		Categories: []festivalv1.Category{{ID: "c1", Name: "Arts"}},
		Teams:      []festivalv1.Team{{ID: "t1", Name: "Red"}},
		Competitions: []festivalv1.Competition{{
			ID:          "k1",
			CategoryID:  "c1",
			Name:        "Quiz",
			IsPublished: true,
			Results:     []festivalv1.Result{{Place: "1st", Name: "Asha", Team: "Red"}},
		}},
	}
}

func TestReplacePublishesEventAndNotifiesWatchers(t *testing.T) {
	store := memory.NewStore()
	publisher := &capturingPublisher{}
	service := newTestService(store, publisher)

	var seen []int64
	cancel := service.Watch(func(snapshot ports.Snapshot) {
		seen = append(seen, snapshot.Revision)
	})
	defer cancel()

	snapshot, err := service.Replace(context.Background(), sampleDocument(), -1)
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if snapshot.Revision != 1 {
		t.Fatalf("expected revision 1, got %d", snapshot.Revision)
	}

	if len(publisher.events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.events))
	}
	if publisher.topic != "festival.document.replaced" {
		t.Fatalf("unexpected topic %q", publisher.topic)
	}
	if publisher.events[0].EventType != EventTypeDocumentReplaced {
		t.Fatalf("unexpected event type %q", publisher.events[0].EventType)
	}
	if len(seen) != 1 || seen[0] != 1 {
		t.Fatalf("watcher revisions = %v, want [1]", seen)
	}
}

func TestWatchCancelStopsNotifications(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store, &capturingPublisher{})

	calls := 0
	cancel := service.Watch(func(ports.Snapshot) { calls++ })

	if _, err := service.Replace(context.Background(), sampleDocument(), -1); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	cancel()
	if _, err := service.Replace(context.Background(), sampleDocument(), -1); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected 1 watcher call after cancel, got %d", calls)
	}
}

func TestReplaceIgnoresRevisionWhenCheckDisabled(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store, &capturingPublisher{})

	if _, err := service.Replace(context.Background(), sampleDocument(), -1); err != nil {
		t.Fatalf("seed replace failed: %v", err)
	}
	// Stale expected revision, but the check is off: last writer wins.
	if _, err := service.Replace(context.Background(), sampleDocument(), 0); err != nil {
		t.Fatalf("expected stale write to win, got %v", err)
	}
}

func TestReplaceEnforcesRevisionWhenEnabled(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store, &capturingPublisher{})
	service.EnforceRevision = true

	if _, err := service.Replace(context.Background(), sampleDocument(), 0); err != nil {
		t.Fatalf("first replace failed: %v", err)
	}
	_, err := service.Replace(context.Background(), sampleDocument(), 0)
	if !errors.Is(err, domainerrors.ErrRevisionConflict) {
		t.Fatalf("expected revision conflict, got %v", err)
	}
}

func TestLoadNormalizesMissingArrays(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store, &capturingPublisher{})

	snapshot, err := service.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if snapshot.Document.Categories == nil || snapshot.Document.Teams == nil || snapshot.Document.Competitions == nil {
		t.Fatal("expected empty slices, got nil sub-arrays")
	}
	if snapshot.Revision != 0 {
		t.Fatalf("expected revision 0 for pristine store, got %d", snapshot.Revision)
	}
}
