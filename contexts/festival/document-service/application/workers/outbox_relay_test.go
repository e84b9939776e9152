package workers

import (
	"context"
	"testing"
	"time"

	"festboard/contexts/festival/document-service/adapters/memory"
	"festboard/contexts/festival/document-service/ports"
)

type capturingPublisher struct {
	events []ports.EventEnvelope
}

func (p *capturingPublisher) Publish(_ context.Context, _ string, event ports.EventEnvelope) error {
	p.events = append(p.events, event)
	return nil
}

func TestOutboxRelayPublishesPending(t *testing.T) {
	store := memory.NewStore()
	for _, id := range []string{"evt-1", "evt-2"} {
		err := store.AppendOutbox(context.Background(), ports.EventEnvelope{
			EventID:    id,
			EventType:  "festival.document.replaced",
			OccurredAt: time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("append outbox failed: %v", err)
		}
	}

	publisher := &capturingPublisher{}
	relay := OutboxRelay{
		Outbox:    store,
		Publisher: publisher,
		Topic:     "festival.document.replaced",
		BatchSize: 10,
	}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}
	if len(publisher.events) != 2 {
		t.Fatalf("expected 2 published events, got %d", len(publisher.events))
	}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("second relay run failed: %v", err)
	}
	if len(publisher.events) != 2 {
		t.Fatalf("relay republished already published rows, total %d", len(publisher.events))
	}
}
