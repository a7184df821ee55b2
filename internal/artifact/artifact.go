// Package artifact defines the store for generated and uploaded binary media.
package artifact

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/contentforge/server/internal/shared/metrics"
)

// Kind identifies a media kind and governs its directory and extensions.
type Kind string

const (
	// KindSpeech covers synthesized audio files.
	KindSpeech Kind = "tts"
	// KindVideo covers generated and uploaded video files.
	KindVideo Kind = "videos"
)

// Extensions returns the file extensions recognized for the kind.
func (k Kind) Extensions() []string {
	switch k {
	case KindSpeech:
		return []string{".mp3"}
	case KindVideo:
		return []string{".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm"}
	default:
		return nil
	}
}

// Matches reports whether filename carries one of the kind's extensions.
func (k Kind) Matches(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range k.Extensions() {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// FileInfo describes a stored artifact.
type FileInfo struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Path     string `json:"path"`
}

// Store persists decoded binary artifacts under per-kind locations.
//
// Filenames are caller-assigned and unique per save, so backends need no
// cross-request coordination beyond atomic create/delete per path.
type Store interface {
	// Save writes data under the kind's location, creating it if absent and
	// overwriting an existing file with the same name. It returns the stored
	// path.
	Save(ctx context.Context, kind Kind, filename string, data []byte) (string, error)
	// List enumerates stored files of the kind, filtered by its known
	// extensions. A missing location yields an empty list, not an error.
	List(ctx context.Context, kind Kind) ([]FileInfo, error)
	// Delete removes a named file. Deleting an absent file is a not-found
	// error.
	Delete(ctx context.Context, kind Kind, filename string) error
}

// NewName assigns a fresh unique filename with the given prefix and
// extension, e.g. "tts_1a2b3c4d.mp3". Collisions are not checked; the random
// token makes them probabilistically negligible.
func NewName(prefix, ext string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return prefix + "_" + token + ext
}

// instrumented wraps a Store and records an operation counter per call.
type instrumented struct {
	store   Store
	metrics *metrics.Metrics
}

// Instrumented returns a Store that records metrics for each operation.
func Instrumented(store Store, m *metrics.Metrics) Store {
	if m == nil {
		return store
	}
	return &instrumented{store: store, metrics: m}
}

func (s *instrumented) Save(ctx context.Context, kind Kind, filename string, data []byte) (string, error) {
	path, err := s.store.Save(ctx, kind, filename, data)
	s.metrics.RecordArtifactOperation(string(kind), "save", err)
	return path, err
}

func (s *instrumented) List(ctx context.Context, kind Kind) ([]FileInfo, error) {
	files, err := s.store.List(ctx, kind)
	s.metrics.RecordArtifactOperation(string(kind), "list", err)
	return files, err
}

func (s *instrumented) Delete(ctx context.Context, kind Kind, filename string) error {
	err := s.store.Delete(ctx, kind, filename)
	s.metrics.RecordArtifactOperation(string(kind), "delete", err)
	return err
}
