package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/GregMSThompson/hsbooks/internal/errs"
)

// fileStore keeps one JSON file per key. Writes go through a temp file and a
// rename, so a reader sees either the old blob or the new one.
type fileStore struct {
	dir string
}

func NewFileStore(dir string) (*fileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errs.NewDatabaseError("open", "failed to create data directory", err)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.NewDatabaseError("read", "failed to read "+key, err)
	}
	return data, true, nil
}

func (s *fileStore) Set(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return errs.NewDatabaseError("write", "failed to create temp file", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errs.NewDatabaseError("write", "failed to write "+key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errs.NewDatabaseError("write", "failed to sync "+key, err)
	}
	if err := tmp.Close(); err != nil {
		return errs.NewDatabaseError("write", "failed to close "+key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return errs.NewDatabaseError("write", "failed to replace "+key, err)
	}
	return nil
}
