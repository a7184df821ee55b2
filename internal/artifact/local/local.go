// Package local implements the artifact store on the local filesystem.
package local

import (
	"context"
	"os"
	"path/filepath"

	"github.com/contentforge/server/internal/artifact"
	apperrors "github.com/contentforge/server/internal/shared/errors"
)

// Store persists artifacts under a root directory, one subdirectory per
// media kind.
type Store struct {
	root string
}

// New creates a local store rooted at the given directory.
func New(root string) *Store {
	return &Store{root: root}
}

// Save writes data to the kind's directory, creating it if absent.
func (s *Store) Save(ctx context.Context, kind artifact.Kind, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.root, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.Storage("create upload directory", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperrors.Storage("write artifact", err)
	}
	return path, nil
}

// List enumerates files of the kind with their sizes and paths.
func (s *Store) List(ctx context.Context, kind artifact.Kind) ([]artifact.FileInfo, error) {
	dir := filepath.Join(s.root, string(kind))
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []artifact.FileInfo{}, nil
	}
	if err != nil {
		return nil, apperrors.Storage("read upload directory", err)
	}

	files := []artifact.FileInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !kind.Matches(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, apperrors.Storage("stat artifact", err)
		}
		files = append(files, artifact.FileInfo{
			Filename: entry.Name(),
			Size:     info.Size(),
			Path:     filepath.Join(dir, entry.Name()),
		})
	}
	return files, nil
}

// Delete removes a named file of the kind.
func (s *Store) Delete(ctx context.Context, kind artifact.Kind, filename string) error {
	path := filepath.Join(s.root, string(kind), filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return apperrors.NotFound("file")
	}
	if err := os.Remove(path); err != nil {
		return apperrors.Storage("delete artifact", err)
	}
	return nil
}

var _ artifact.Store = (*Store)(nil)
