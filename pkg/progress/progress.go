// Package progress persists saved roadmap snapshots so that a user can pick
// up where they left off.
//
// A snapshot ([roadmap.Progress]) holds the role and skill list and the time
// it was saved. Single-user front-ends keep one snapshot under
// [roadmap.DefaultProgressID]; the HTTP server stores one per client-chosen
// or generated id.
//
// Backends:
//   - [FileStore]: one JSON file per id, for the CLI and TUI
//   - [RedisStore]: shared storage for server deployments
//   - [MongoStore]: durable storage in a MongoDB collection
//   - [MemoryStore]: process-local, for tests and ephemeral servers
package progress

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/careermap/pkg/errors"
	"github.com/matzehuels/careermap/pkg/roadmap"
)

// Store persists progress snapshots keyed by id.
type Store interface {
	// Load returns the snapshot for id, or nil and no error when none is
	// saved.
	Load(ctx context.Context, id string) (*roadmap.Progress, error)

	// Save stores p under p.ID, replacing any previous snapshot.
	Save(ctx context.Context, p roadmap.Progress) error

	// Delete removes the snapshot for id. Deleting a missing id is not an
	// error.
	Delete(ctx context.Context, id string) error

	Close() error
}

// NewID returns a fresh random snapshot id.
func NewID() string { return uuid.NewString() }

// Prepare fills in defaults and validates p before it is saved: a blank ID
// becomes DefaultProgressID, a zero timestamp becomes now, and the role is
// trimmed and must be non-empty.
func Prepare(p roadmap.Progress, now time.Time) (roadmap.Progress, error) {
	if p.ID == "" {
		p.ID = roadmap.DefaultProgressID
	}
	if err := errors.ValidateID(p.ID); err != nil {
		return p, err
	}
	p.Role = strings.TrimSpace(p.Role)
	if err := errors.ValidateRole(p.Role); err != nil {
		return p, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = now.UTC()
	}
	return p, nil
}
