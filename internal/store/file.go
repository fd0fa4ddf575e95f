package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File persists each key as one JSON file under a data directory. This is
// the default backend for the single-user local deployment; writes are
// last-writer-wins with no cross-process coordination.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (f *File) Set(_ context.Context, key string, value []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

func (f *File) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *File) path(key string) string {
	// keys may contain dots but never separators; keep filenames flat
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, key)
	return filepath.Join(f.dir, safe+".json")
}
