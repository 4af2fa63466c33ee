// Package snapshot records bundle sizes between runs so later runs can report
// trends.
//
// A [Snapshot] is the module list of one build plus a UUID and timestamp.
// Snapshots are persisted through a [Store]: [FileStore] keeps the latest one
// in a JSON file (".bunxray-history.json" by default) and [NullStore] keeps
// nothing, which is useful in tests and when history is disabled.
//
// [Compare] reports how the current build moved relative to a snapshot and
// [TrendLines] renders that comparison for the terminal report.
package snapshot

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
)

// DefaultFile is the snapshot file used when no path is given.
const DefaultFile = ".bunxray-history.json"

// Snapshot is the recorded state of one build.
type Snapshot struct {
	ID        string          `json:"id,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Total     int64           `json:"total"`
	Modules   []bundle.Module `json:"modules"`
}

// New captures mods as a snapshot taken now.
func New(mods []bundle.Module) *Snapshot {
	modules := make([]bundle.Module, len(mods))
	copy(modules, mods)
	return &Snapshot{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Total:     bundle.TotalSize(mods),
		Modules:   modules,
	}
}

// Store persists the most recent snapshot.
type Store interface {
	// Load returns the stored snapshot. found is false when there is none.
	Load(ctx context.Context) (snap *Snapshot, found bool, err error)
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snap *Snapshot) error
	// Delete removes the stored snapshot. Deleting a missing snapshot is not
	// an error.
	Delete(ctx context.Context) error
	// Path describes where snapshots are kept.
	Path() string
	Close() error
}
