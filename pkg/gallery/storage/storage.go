// Package storage manages the on-disk media store for uploaded originals
// and their derived thumbnails.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	originalsSubdir  = "images"
	thumbnailsSubdir = "thumbnails"
)

// Store holds originals under {base}/images and thumbnails under
// {base}/thumbnails. File operations are guarded by a mutex so concurrent
// requests cannot interleave partial writes.
type Store struct {
	baseDir string
	mu      sync.RWMutex
}

// NewStore creates the media directories if needed and returns a Store.
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("media base directory cannot be empty")
	}

	for _, sub := range []string{originalsSubdir, thumbnailsSubdir} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %w", sub, err)
		}
	}

	return &Store{baseDir: baseDir}, nil
}

// UniqueName derives a stored name from an uploaded filename: the base name
// is sanitized and suffixed with a short random id so repeated uploads of
// "sunset.jpg" never collide.
func (s *Store) UniqueName(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	stem := sanitize(strings.TrimSuffix(base, ext))
	if stem == "" {
		stem = "upload"
	}
	return fmt.Sprintf("%s_%s%s", stem, uuid.NewString()[:8], strings.ToLower(ext))
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// SaveOriginal writes an uploaded original under its stored name.
func (s *Store) SaveOriginal(name string, data []byte) error {
	return s.save(originalsSubdir, name, data)
}

// SaveThumbnail writes a derived thumbnail under its stored name.
func (s *Store) SaveThumbnail(name string, data []byte) error {
	return s.save(thumbnailsSubdir, name, data)
}

func (s *Store) save(subdir, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("stored name cannot be empty")
	}
	if len(data) == 0 {
		return fmt.Errorf("file data cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.baseDir, subdir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write media file: %w", err)
	}
	return nil
}

// DeleteOriginal removes an original from disk. Missing files are not an error.
func (s *Store) DeleteOriginal(name string) error {
	return s.delete(originalsSubdir, name)
}

// DeleteThumbnail removes a thumbnail from disk. Missing files are not an error.
func (s *Store) DeleteThumbnail(name string) error {
	return s.delete(thumbnailsSubdir, name)
}

func (s *Store) delete(subdir, name string) error {
	if name == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.baseDir, subdir, filepath.Base(name))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete media file: %w", err)
	}
	return nil
}

// HasOriginal reports whether an original exists under the stored name.
func (s *Store) HasOriginal(name string) bool {
	return s.exists(originalsSubdir, name)
}

// HasThumbnail reports whether a thumbnail exists under the stored name.
func (s *Store) HasThumbnail(name string) bool {
	return s.exists(thumbnailsSubdir, name)
}

func (s *Store) exists(subdir, name string) bool {
	if name == "" {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(filepath.Join(s.baseDir, subdir, filepath.Base(name)))
	return err == nil
}

// ReadThumbnail returns the stored thumbnail bytes.
func (s *Store) ReadThumbnail(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.baseDir, thumbnailsSubdir, filepath.Base(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnail: %w", err)
	}
	return data, nil
}

// BaseDir returns the media root, for static file serving.
func (s *Store) BaseDir() string {
	return s.baseDir
}
