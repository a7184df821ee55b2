package video

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentforge/server/internal/artifact/local"
	"github.com/contentforge/server/internal/shared/codec"
	apperrors "github.com/contentforge/server/internal/shared/errors"
	"github.com/contentforge/server/internal/shared/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&logger.Config{Level: "error", Output: &strings.Builder{}})
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	log := testLogger()
	return NewService(local.New(t.TempDir()), NewMockYouTubePublisher(log), log)
}

func TestService_Generate_PlaceholderRecord(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Generate(context.Background(), &GenerateRequest{
		Images:   []string{"a.png", "b.png"},
		Duration: 5,
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^video_[0-9a-f]{8}\.mp4$`), result.Filename)
	assert.Equal(t, 5, result.Duration)

	data, err := codec.Decode(result.Video)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, []any{"a.png", "b.png"}, record["images"])
	assert.Nil(t, record["audio"])
	assert.Equal(t, float64(5), record["duration"])
}

func TestService_Generate_WithAudio(t *testing.T) {
	svc := newTestService(t)
	audio := codec.Encode([]byte("soundtrack"))

	result, err := svc.Generate(context.Background(), &GenerateRequest{
		Images:   []string{"a.png"},
		Audio:    audio,
		Duration: 3,
	})
	require.NoError(t, err)

	data, err := codec.Decode(result.Video)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, audio, record["audio"])
}

func TestService_Generate_DefaultDuration(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Generate(context.Background(), &GenerateRequest{Images: []string{"a.png"}})
	require.NoError(t, err)
	assert.Equal(t, DefaultDuration, result.Duration)
}

func TestService_Generate_Invalid(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		req  *GenerateRequest
	}{
		{"no images", &GenerateRequest{Duration: 5}},
		{"negative duration", &GenerateRequest{Images: []string{"a.png"}, Duration: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestService_SaveListDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, &GenerateRequest{Images: []string{"a.png"}, Duration: 2})
	require.NoError(t, err)

	files, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, saved.Filename, files[0].Filename)

	require.NoError(t, svc.Delete(ctx, saved.Filename))

	err = svc.Delete(ctx, saved.Filename)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestService_ProcessUpload(t *testing.T) {
	svc := newTestService(t)
	data := []byte("raw video bytes")

	result, err := svc.ProcessUpload(context.Background(), data, "clip.mp4")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^upload_[0-9a-f]{8}\.mp4$`), result.Filename)
	assert.Equal(t, len(data), result.Size)
	assert.FileExists(t, result.Path)
}

func TestService_ProcessUpload_RejectsExtension(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ProcessUpload(context.Background(), []byte("x"), "clip.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestService_ProcessUpload_UppercaseExtension(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.ProcessUpload(context.Background(), []byte("x"), "CLIP.WEBM")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.Filename, ".webm"))
}

func TestService_Publish_Mocked(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Publish(context.Background(), "uploads/videos/video_1.mp4", "My Video", "desc", []string{"go"})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotEmpty(t, result.UploadID)
	assert.Equal(t, "https://youtube.com/watch?v="+result.UploadID, result.URL)
	assert.Equal(t, "My Video", result.Title)
	assert.Equal(t, []string{"go"}, result.Tags)
}

func TestService_Publish_NilTags(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Publish(context.Background(), "p", "t", "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, result.Tags)
}

func TestService_Status_AlwaysCompleted(t *testing.T) {
	svc := newTestService(t)

	for _, id := range []string{"abc", "never-seen", ""} {
		status := svc.Status(context.Background(), id)
		assert.Equal(t, id, status.VideoID)
		assert.Equal(t, "completed", status.Status)
		assert.Equal(t, 100, status.Progress)
	}
}

func TestService_SupportedFormats(t *testing.T) {
	svc := newTestService(t)

	formats := svc.SupportedFormats()
	require.Len(t, formats, 6)
	assert.Equal(t, "mp4", formats[0].Format)
	assert.Equal(t, "webm", formats[5].Format)
}
