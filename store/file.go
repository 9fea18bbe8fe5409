package store

import (
	"context"
	"os"
	"path/filepath"
)

// FileStore persists one JSON document per key as a file under Dir. It is the
// default driver for demo runs, standing in for the browser-local storage the
// legacy storefront used.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{Dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

func (f *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	raw, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(raw), true, nil
}

func (f *FileStore) Set(_ context.Context, key, value string) error {
	return os.WriteFile(f.path(key), []byte(value), 0644)
}

func (f *FileStore) Remove(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
