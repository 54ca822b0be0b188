package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/fabricmock/pkg/ports"
)

// SaveSnapshots writes every committed root of s to store and returns how
// many were saved.
func (s *Session) SaveSnapshots(ctx context.Context, store ports.SnapshotStore) (int, error) {
	snaps, err := s.Snapshots()
	if err != nil {
		return 0, err
	}
	for _, snap := range snaps {
		if err := store.Save(ctx, snap); err != nil {
			return 0, fmt.Errorf("failed to save root %d: %w", snap.RootTag, err)
		}
		s.Logger.Info("Snapshot Saved", "root", snap.RootTag, "nodes", snap.Count())
	}
	return len(snaps), nil
}

// RestoreSnapshots loads every stored root into the session's manager.
func (s *Session) RestoreSnapshots(ctx context.Context, store ports.SnapshotStore) (int, error) {
	roots, err := store.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, root := range roots {
		snap, err := store.Load(ctx, root)
		if err != nil {
			return 0, err
		}
		if err := s.Manager.Restore(snap); err != nil {
			return 0, fmt.Errorf("failed to restore root %d: %w", root, err)
		}
	}
	return len(roots), nil
}
