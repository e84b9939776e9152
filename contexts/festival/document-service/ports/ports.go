package ports

import (
	"context"
	"time"

	eventsv1 "festboard/contracts/gen/events/v1"
	festivalv1 "festboard/contracts/gen/festival/v1"
)

type (
	Document = festivalv1.Document
	Snapshot = festivalv1.Snapshot
)

// Repository stores the singleton festival document under a fixed storage
// key. Replace overwrites the whole document; expectedRevision < 0 skips the
// optimistic check (last-writer-wins, the default operating mode).
type Repository interface {
	Load(ctx context.Context) (Snapshot, error)
	Replace(ctx context.Context, doc Document, expectedRevision int64) (Snapshot, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = eventsv1.Envelope

type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type EventSubscriber interface {
	Subscribe(
		ctx context.Context,
		topic string,
		consumerGroup string,
		handler func(context.Context, EventEnvelope) error,
	) error
}
