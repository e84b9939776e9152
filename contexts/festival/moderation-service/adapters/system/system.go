package system

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Clock struct{}

func (Clock) Now() time.Time { return time.Now() }

// UUIDGenerator creates the opaque unique tokens assigned to categories,
// teams and competitions at creation time.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
