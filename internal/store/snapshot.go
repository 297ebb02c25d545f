package store

import (
	"context"
	"encoding/json"

	"github.com/GregMSThompson/hsbooks/internal/errs"
	"github.com/GregMSThompson/hsbooks/internal/models"
)

// AppStateKey is the blob key holding the full snapshot.
const AppStateKey = "hs-books-app-store"

type snapshotStore struct {
	blobs blobStore
}

func NewSnapshotStore(blobs blobStore) *snapshotStore {
	return &snapshotStore{blobs: blobs}
}

// Load returns the stored snapshot, or an empty one on first run.
func (s *snapshotStore) Load(ctx context.Context) (models.Snapshot, error) {
	data, ok, err := s.blobs.Get(ctx, AppStateKey)
	if err != nil {
		return models.Snapshot{}, err
	}
	if !ok {
		return models.EmptySnapshot(), nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, errs.NewDatabaseError("read", "failed to decode snapshot", err)
	}
	snap.Normalize()
	return snap, nil
}

func (s *snapshotStore) Write(ctx context.Context, snap models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errs.NewDatabaseError("write", "failed to encode snapshot", err)
	}
	return s.blobs.Set(ctx, AppStateKey, data)
}
