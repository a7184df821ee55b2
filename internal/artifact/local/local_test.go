package local

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentforge/server/internal/artifact"
	apperrors "github.com/contentforge/server/internal/shared/errors"
)

func TestStore_SaveAndList(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	data := []byte("fake mp3 bytes")
	path, err := store.Save(ctx, artifact.KindSpeech, "tts_deadbeef.mp3", data)
	require.NoError(t, err)
	assert.FileExists(t, path)

	files, err := store.List(ctx, artifact.KindSpeech)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "tts_deadbeef.mp3", files[0].Filename)
	assert.Equal(t, int64(len(data)), files[0].Size)
	assert.Equal(t, path, files[0].Path)
}

func TestStore_Save_Overwrites(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	_, err := store.Save(ctx, artifact.KindVideo, "video_cafe0001.mp4", []byte("first"))
	require.NoError(t, err)
	path, err := store.Save(ctx, artifact.KindVideo, "video_cafe0001.mp4", []byte("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestStore_List_MissingDirectory(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "never-created"))

	files, err := store.List(context.Background(), artifact.KindSpeech)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestStore_List_FiltersExtensions(t *testing.T) {
	root := t.TempDir()
	store := New(root)
	ctx := context.Background()

	_, err := store.Save(ctx, artifact.KindSpeech, "tts_00000001.mp3", []byte("audio"))
	require.NoError(t, err)
	// A stray file with a foreign extension must not be listed.
	require.NoError(t, os.WriteFile(filepath.Join(root, "tts", "notes.txt"), []byte("x"), 0o644))

	files, err := store.List(ctx, artifact.KindSpeech)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "tts_00000001.mp3", files[0].Filename)
}

func TestStore_Delete(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	_, err := store.Save(ctx, artifact.KindVideo, "video_feed0001.mp4", []byte("video"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, artifact.KindVideo, "video_feed0001.mp4"))

	files, err := store.List(ctx, artifact.KindVideo)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestStore_Delete_NotFound(t *testing.T) {
	store := New(t.TempDir())

	err := store.Delete(context.Background(), artifact.KindVideo, "video_missing.mp4")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
