package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator creates the opaque unique tokens used for entity and event IDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
