package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jpatterson933/bunx-ray/pkg/errors"
	"github.com/jpatterson933/bunx-ray/pkg/observability"
)

// FileStore keeps the latest snapshot in a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path, or by [DefaultFile] in the
// working directory when path is empty. The path is made absolute so that
// [FileStore.Path] is unambiguous in messages.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = DefaultFile
	}
	if err := errors.ValidateFilePath(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot resolve snapshot path %s", path)
	}
	return &FileStore{path: abs}, nil
}

// Load reads the snapshot file. A missing file is reported as not found.
// A file that is not a valid snapshot is an error; it is never removed.
func (s *FileStore) Load(ctx context.Context) (*Snapshot, bool, error) {
	snap, found, err := s.load()
	observability.Snapshot().OnSnapshotLoad(ctx, s.path, found, err)
	return snap, found, err
}

func (s *FileStore) load() (*Snapshot, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "failed to read snapshot %s", s.path)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid snapshot file %s", s.path)
	}
	return &snap, true, nil
}

// Save writes snap as indented JSON, creating parent directories as needed.
func (s *FileStore) Save(ctx context.Context, snap *Snapshot) error {
	err := s.save(snap)
	observability.Snapshot().OnSnapshotSave(ctx, s.path, len(snap.Modules), err)
	return err
}

func (s *FileStore) save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode snapshot")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to create %s", filepath.Dir(s.path))
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write snapshot %s", s.path)
	}
	return nil
}

// Delete removes the snapshot file.
func (s *FileStore) Delete(ctx context.Context) error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Path returns the absolute path of the snapshot file.
func (s *FileStore) Path() string {
	return s.path
}

// Close does nothing for file stores.
func (s *FileStore) Close() error {
	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
