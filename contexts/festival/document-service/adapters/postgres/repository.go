package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	domainerrors "festboard/contexts/festival/document-service/domain/errors"
	"festboard/contexts/festival/document-service/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

type documentRow struct {
	StorageKey string    `gorm:"column:storage_key;primaryKey"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
	Revision   int64     `gorm:"column:revision"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (documentRow) TableName() string { return "festival_documents" }

type outboxRow struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload;type:jsonb"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxRow) TableName() string { return "festival_outbox" }

// Repository persists the whole document as one jsonb row per storage key.
// Replace is a read-modify-write under a row lock; the revision column only
// rejects writers when the caller passes a non-negative expected revision.
type Repository struct {
	db         *gorm.DB
	storageKey string
	logger     *slog.Logger
}

func NewRepository(db *gorm.DB, storageKey string, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:         db,
		storageKey: storageKey,
		logger:     logger,
	}
}

// Migrate creates the document and outbox tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&documentRow{}, &outboxRow{})
}

func (r *Repository) Load(ctx context.Context) (ports.Snapshot, error) {
	var row documentRow
	err := r.db.WithContext(ctx).
		Where("storage_key = ?", r.storageKey).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Snapshot{Document: ports.Document{}.Normalize()}, nil
		}
		return ports.Snapshot{}, err
	}
	return rowToSnapshot(row)
}

func (r *Repository) Replace(ctx context.Context, doc ports.Document, expectedRevision int64) (ports.Snapshot, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return ports.Snapshot{}, err
	}

	var saved documentRow
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current documentRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("storage_key = ?", r.storageKey).
			First(&current).
			Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			current = documentRow{StorageKey: r.storageKey, Revision: 0}
		case err != nil:
			return err
		}

		if expectedRevision >= 0 && expectedRevision != current.Revision {
			return domainerrors.ErrRevisionConflict
		}

		saved = documentRow{
			StorageKey: r.storageKey,
			Payload:    payload,
			Revision:   current.Revision + 1,
			UpdatedAt:  time.Now().UTC(),
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			UpdateAll: true,
		}).Create(&saved).Error
	})
	if err != nil {
		return ports.Snapshot{}, err
	}
	return rowToSnapshot(saved)
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxRow{
		OutboxID:     envelope.EventID,
		EventType:    envelope.EventType,
		PartitionKey: envelope.PartitionKey,
		Payload:      payload,
		Status:       outboxStatusPending,
		CreatedAt:    envelope.OccurredAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	tx := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []outboxRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      row.Payload,
			CreatedAt:    row.CreatedAt,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&outboxRow{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		}).Error
}

func rowToSnapshot(row documentRow) (ports.Snapshot, error) {
	var doc ports.Document
	if len(row.Payload) > 0 {
		if err := json.Unmarshal(row.Payload, &doc); err != nil {
			return ports.Snapshot{}, err
		}
	}
	return ports.Snapshot{
		Document:  doc.Normalize(),
		Revision:  row.Revision,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

var (
	_ ports.Repository       = (*Repository)(nil)
	_ ports.OutboxWriter     = (*Repository)(nil)
	_ ports.OutboxRepository = (*Repository)(nil)
)
