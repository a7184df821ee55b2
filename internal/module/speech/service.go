// Package speech synthesizes text to speech and manages the resulting audio
// artifacts.
package speech

import (
	"context"

	"github.com/contentforge/server/internal/artifact"
	"github.com/contentforge/server/internal/shared/codec"
	"github.com/contentforge/server/internal/shared/logger"
)

const (
	// DefaultVoice is used when no voice is requested.
	DefaultVoice = "alloy"
	// DefaultModel is used when no model is requested.
	DefaultModel = "tts-1"
)

// voices enumerates the available synthesis voices. Values outside this set
// are passed through and rejected only by the provider.
var voices = []Voice{
	{ID: "alloy", Name: "Alloy", Description: "A balanced, versatile voice"},
	{ID: "echo", Name: "Echo", Description: "A warm, friendly voice"},
	{ID: "fable", Name: "Fable", Description: "A clear, expressive voice"},
	{ID: "onyx", Name: "Onyx", Description: "A deep, authoritative voice"},
	{ID: "nova", Name: "Nova", Description: "A bright, energetic voice"},
	{ID: "shimmer", Name: "Shimmer", Description: "A soft, gentle voice"},
}

// Synthesizer requests speech synthesis from the provider.
type Synthesizer interface {
	SynthesizeSpeech(ctx context.Context, text, voice, model string) ([]byte, error)
}

// Service is the speech generation service.
type Service struct {
	provider Synthesizer
	store    artifact.Store
	log      *logger.Logger
}

// NewService creates a speech service.
func NewService(provider Synthesizer, store artifact.Store, log *logger.Logger) *Service {
	return &Service{
		provider: provider,
		store:    store,
		log:      log.With("component", "speech"),
	}
}

// Generate synthesizes speech and returns the encoded audio with a freshly
// assigned filename.
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) (*Audio, error) {
	voice := req.Voice
	if voice == "" {
		voice = DefaultVoice
	}
	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	data, err := s.provider.SynthesizeSpeech(ctx, req.Text, voice, model)
	if err != nil {
		return nil, err
	}

	result := &Audio{
		Audio:    codec.Encode(data),
		Filename: artifact.NewName("tts", ".mp3"),
		Voice:    voice,
		Model:    model,
	}
	s.log.Info("speech generated", "voice", voice, "model", model, "bytes", len(data))
	return result, nil
}

// Save synthesizes speech and persists the decoded audio.
func (s *Service) Save(ctx context.Context, req *GenerateRequest) (*Saved, error) {
	audio, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decode(audio.Audio)
	if err != nil {
		return nil, err
	}

	path, err := s.store.Save(ctx, artifact.KindSpeech, audio.Filename, data)
	if err != nil {
		return nil, err
	}

	s.log.Info("speech saved", "filename", audio.Filename, "path", path)
	return &Saved{
		Filename: audio.Filename,
		Path:     path,
		Voice:    audio.Voice,
		Model:    audio.Model,
	}, nil
}

// Voices returns the available synthesis voices.
func (s *Service) Voices() []Voice {
	return voices
}

// List enumerates persisted speech artifacts.
func (s *Service) List(ctx context.Context) ([]artifact.FileInfo, error) {
	return s.store.List(ctx, artifact.KindSpeech)
}

// Delete removes a persisted speech artifact by filename.
func (s *Service) Delete(ctx context.Context, filename string) error {
	return s.store.Delete(ctx, artifact.KindSpeech, filename)
}
