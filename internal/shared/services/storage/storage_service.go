// Package storage stores uploaded binary objects (banners, photos, resumes)
// under opaque keys and serves them back by public URL.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"mentorhub/internal/shared/id"
)

// Service is the object storage port. Keys are opaque, prefix-scoped strings
// like "banners/abc123.png".
type Service interface {
	// Save writes the object and returns its key.
	Save(ctx context.Context, prefix, filename string, r io.Reader) (string, error)
	// Open reads the object back.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// PublicURL maps a key to the URL clients fetch it from.
	PublicURL(key string) string
}

// LocalService stores objects on the local filesystem under a root directory.
type LocalService struct {
	rootDir       string
	publicBaseURL string
}

func NewLocalService(rootDir, publicBaseURL string) (*LocalService, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("storage root directory is required")
	}
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalService{
		rootDir:       rootDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (s *LocalService) Save(ctx context.Context, prefix, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := path.Join(prefix, id.MustGenerateWithPrefix("obj", id.DefaultLength)+ext)

	full := filepath.Join(s.rootDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create object file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	return key, nil
}

func (s *LocalService) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	full, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", key, err)
	}
	return f, nil
}

func (s *LocalService) Delete(ctx context.Context, key string) error {
	full, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *LocalService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return s.publicBaseURL + "/" + key
}

// resolve maps a key to a filesystem path, rejecting traversal outside the
// root.
func (s *LocalService) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(s.rootDir, filepath.FromSlash(clean)), nil
}
