package ports

import (
	"context"

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

// DocumentStore is the moderation view of the shared store: read the whole
// document, write the whole document back. expectedRevision is forwarded
// verbatim; whether it gates the write is the store's decision.
type DocumentStore interface {
	Load(ctx context.Context) (Snapshot, error)
	Replace(ctx context.Context, doc Document, expectedRevision int64) (Snapshot, error)
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ResultRow is one podium entry as submitted by the admin form. Team holds
// the team NAME; the join-by-name linkage is the documented contract.
type ResultRow struct {
	Place string
	Name  string
	Class string
	Team  string
}
