package snapshot

import "context"

// NullStore is a no-op store that never keeps anything.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return &NullStore{}
}

// Load always reports that no snapshot exists.
func (s *NullStore) Load(ctx context.Context) (*Snapshot, bool, error) {
	return nil, false, nil
}

// Save does nothing.
func (s *NullStore) Save(ctx context.Context, snap *Snapshot) error {
	return nil
}

// Delete does nothing.
func (s *NullStore) Delete(ctx context.Context) error {
	return nil
}

// Path returns an empty string.
func (s *NullStore) Path() string {
	return ""
}

// Close does nothing.
func (s *NullStore) Close() error {
	return nil
}

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
