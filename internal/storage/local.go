package storage

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// LocalStore keeps files in a single directory. Keys are plain file names.
type LocalStore struct {
	fs afero.Fs
}

var _ ObjectStore = (*LocalStore)(nil)

// NewLocalStore creates dir if needed and confines all access to it.
func NewLocalStore(dir string) (*LocalStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return NewLocalStoreFs(afero.NewBasePathFs(osFs, dir)), nil
}

// NewLocalStoreFs uses fs as the upload directory root.
func NewLocalStoreFs(fs afero.Fs) *LocalStore {
	return &LocalStore{fs: fs}
}

// Put writes data under key.
func (s *LocalStore) Put(_ context.Context, key string, data []byte, _ ObjectMeta) error {
	if key == "" {
		return ErrKeyRequired
	}
	if err := afero.WriteFile(s.fs, key, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Get reads key fully into memory.
func (s *LocalStore) Get(_ context.Context, key string) (*Object, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}
	data, err := afero.ReadFile(s.fs, key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileMissing
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return &Object{Data: data, ContentType: mimetype.Detect(data).String()}, nil
}

// Delete removes key.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	if err := s.fs.Remove(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
