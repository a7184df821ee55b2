package speech

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentforge/server/internal/artifact"
	"github.com/contentforge/server/internal/artifact/local"
	"github.com/contentforge/server/internal/shared/codec"
	apperrors "github.com/contentforge/server/internal/shared/errors"
	"github.com/contentforge/server/internal/shared/logger"
)

type mockSynthesizer struct {
	text  string
	voice string
	model string
	audio []byte
	err   error
}

func (m *mockSynthesizer) SynthesizeSpeech(ctx context.Context, text, voice, model string) ([]byte, error) {
	m.text = text
	m.voice = voice
	m.model = model
	return m.audio, m.err
}

func testLogger() *logger.Logger {
	return logger.New(&logger.Config{Level: "error", Output: &strings.Builder{}})
}

func newTestService(t *testing.T, provider Synthesizer) *Service {
	t.Helper()
	return NewService(provider, local.New(t.TempDir()), testLogger())
}

func TestService_Generate(t *testing.T) {
	provider := &mockSynthesizer{audio: []byte{0x49, 0x44, 0x33, 0x01}}
	svc := newTestService(t, provider)

	result, err := svc.Generate(context.Background(), &GenerateRequest{
		Text:  "hello there",
		Voice: "nova",
		Model: "tts-1-hd",
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^tts_[0-9a-f]{8}\.mp3$`), result.Filename)
	assert.Equal(t, "nova", result.Voice)
	assert.Equal(t, "tts-1-hd", result.Model)
	assert.Equal(t, "hello there", provider.text)

	decoded, err := codec.Decode(result.Audio)
	require.NoError(t, err)
	assert.Equal(t, provider.audio, decoded)
}

func TestService_Generate_Defaults(t *testing.T) {
	provider := &mockSynthesizer{audio: []byte("audio")}
	svc := newTestService(t, provider)

	result, err := svc.Generate(context.Background(), &GenerateRequest{Text: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "alloy", result.Voice)
	assert.Equal(t, "tts-1", result.Model)
	assert.Equal(t, "alloy", provider.voice)
	assert.Equal(t, "tts-1", provider.model)
}

func TestService_Generate_PassesThroughUnknownVoice(t *testing.T) {
	provider := &mockSynthesizer{audio: []byte("audio")}
	svc := newTestService(t, provider)

	_, err := svc.Generate(context.Background(), &GenerateRequest{Text: "hi", Voice: "baritone"})
	require.NoError(t, err)
	assert.Equal(t, "baritone", provider.voice)
}

func TestService_SaveListDelete(t *testing.T) {
	provider := &mockSynthesizer{audio: []byte("mp3 payload")}
	svc := newTestService(t, provider)
	ctx := context.Background()

	saved, err := svc.Save(ctx, &GenerateRequest{Text: "persist me"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.Path)
	assert.Contains(t, saved.Path, string(artifact.KindSpeech))

	files, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, saved.Filename, files[0].Filename)
	assert.Equal(t, int64(len(provider.audio)), files[0].Size)

	require.NoError(t, svc.Delete(ctx, saved.Filename))

	files, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := newTestService(t, &mockSynthesizer{})

	err := svc.Delete(context.Background(), "tts_missing.mp3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestService_Voices(t *testing.T) {
	svc := newTestService(t, &mockSynthesizer{})

	result := svc.Voices()
	require.Len(t, result, 6)
	assert.Equal(t, "alloy", result[0].ID)
	assert.Equal(t, "shimmer", result[5].ID)
}

func TestService_Generate_ProviderError(t *testing.T) {
	provider := &mockSynthesizer{err: apperrors.Provider("speech synthesis failed", errors.New("invalid voice"))}
	svc := newTestService(t, provider)

	_, err := svc.Generate(context.Background(), &GenerateRequest{Text: "hi", Voice: "baritone"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrProvider))
	assert.Contains(t, err.Error(), "invalid voice")
}
