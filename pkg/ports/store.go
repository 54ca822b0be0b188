package ports

import (
	"context"

	"github.com/aretw0/fabricmock/pkg/domain"
)

// SnapshotStore defines the interface for exporting committed trees.
// The emulator itself never persists anything; stores receive snapshots
// taken with Manager.Snapshot.
type SnapshotStore interface {
	// Save persists the snapshot under its root tag, replacing any previous one.
	Save(ctx context.Context, snap *domain.TreeSnapshot) error

	// Load retrieves the snapshot of a root.
	// Returns domain.ErrSnapshotNotFound if none exists.
	Load(ctx context.Context, root domain.RootTag) (*domain.TreeSnapshot, error)

	// Delete removes the snapshot of a root.
	Delete(ctx context.Context, root domain.RootTag) error

	// List returns the root tags that have a snapshot, in ascending order.
	List(ctx context.Context) ([]domain.RootTag, error)
}
