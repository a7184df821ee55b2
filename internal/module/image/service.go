// Package image generates images through the AI provider.
package image

import (
	"context"
	"fmt"

	"github.com/contentforge/server/internal/shared/logger"
)

const (
	// DefaultStyle is used when the requested style is not recognized.
	DefaultStyle = "realistic"
	// DefaultSize is used when no size is requested.
	DefaultSize = "1024x1024"
)

// styles enumerates the supported style selectors.
var styles = map[string]bool{
	"realistic": true,
	"artistic":  true,
	"cartoon":   true,
	"anime":     true,
}

// knownSizes enumerates provider-accepted sizes. An unrecognized size is
// passed through uninterpreted and left for the provider to reject.
var knownSizes = map[string]bool{
	"256x256":   true,
	"512x512":   true,
	"1024x1024": true,
	"1792x1024": true,
	"1024x1792": true,
}

// Generator requests a single image from the provider.
type Generator interface {
	GenerateImage(ctx context.Context, prompt, size string) (string, error)
}

// Service is the image generation service.
type Service struct {
	provider Generator
	log      *logger.Logger
}

// NewService creates an image service.
func NewService(provider Generator, log *logger.Logger) *Service {
	return &Service{
		provider: provider,
		log:      log.With("component", "image"),
	}
}

// Generate produces an image and returns its provider-hosted URL unchanged.
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) (*Image, error) {
	style := req.Style
	if !styles[style] {
		style = DefaultStyle
	}

	size := req.Size
	if size == "" {
		size = DefaultSize
	}
	if !knownSizes[size] {
		s.log.Warn("unrecognized image size passed through", "size", size)
	}

	prompt := fmt.Sprintf("Create a %s style image: %s", style, req.Prompt)
	url, err := s.provider.GenerateImage(ctx, prompt, size)
	if err != nil {
		return nil, err
	}

	s.log.Info("image generated", "style", style, "size", size)
	return &Image{URL: url}, nil
}
