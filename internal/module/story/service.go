// Package story generates short stories through the AI provider.
package story

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "github.com/contentforge/server/internal/shared/errors"
	"github.com/contentforge/server/internal/shared/logger"
)

const (
	// DefaultStyle is used when the requested style is not recognized.
	DefaultStyle = "casual"
	// DefaultLength is used when no length is requested.
	DefaultLength = "medium"
)

// styleDirectives maps each style to its system prompt directive.
var styleDirectives = map[string]string{
	"casual":       "Write a casual, conversational story that's easy to read and engaging. Include a catchy title.",
	"professional": "Write a professional, well-structured story suitable for business or formal contexts. Include a clear title.",
	"creative":     "Write a creative, imaginative story that's unique and engaging. Include a creative title.",
	"humorous":     "Write a funny, entertaining story that will make readers laugh. Include a witty title.",
}

// lengthHints maps each length class to an approximate word count hint.
var lengthHints = map[string]string{
	"short":  "about 200 words",
	"medium": "about 500 words",
	"long":   "about 1000 words",
}

// Completer requests a JSON-constrained chat completion.
type Completer interface {
	CompleteStructured(ctx context.Context, systemPrompt, userPrompt string) (json.RawMessage, error)
}

// Service is the story generation service.
type Service struct {
	provider Completer
	log      *logger.Logger
}

// NewService creates a story service.
func NewService(provider Completer, log *logger.Logger) *Service {
	return &Service{
		provider: provider,
		log:      log.With("component", "story"),
	}
}

// Generate produces a story for the request prompt, style and length.
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) (*Story, error) {
	systemPrompt, err := buildSystemPrompt(req.Style, req.Length)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.CompleteStructured(ctx, systemPrompt, req.Prompt)
	if err != nil {
		return nil, err
	}

	result, err := parseStory(raw)
	if err != nil {
		return nil, err
	}

	s.log.Info("story generated",
		"style", req.Style,
		"length", req.Length,
		"title", result.Title,
		"tags", len(result.Tags),
	)
	return result, nil
}

// buildSystemPrompt combines the writer persona with exactly one style
// directive and one length directive. Unrecognized styles fall back to the
// default; an unrecognized length has no default and is rejected.
func buildSystemPrompt(style, length string) (string, error) {
	directive, ok := styleDirectives[style]
	if !ok {
		directive = styleDirectives[DefaultStyle]
	}

	if length == "" {
		length = DefaultLength
	}
	hint, ok := lengthHints[length]
	if !ok {
		return "", apperrors.Validationf("unsupported story length %q", length)
	}

	return fmt.Sprintf(`You are a professional story writer.
%s
The story should be %s.
Include relevant tags at the end.
Format the response as JSON with 'title', 'content', and 'tags' fields.
The tags should be relevant to the story's theme and genre.`, directive, hint), nil
}

// parseStory parses the provider's JSON into a Story. Missing or wrong-typed
// fields are surfaced to the caller instead of being replaced with empty
// values.
func parseStory(raw json.RawMessage) (*Story, error) {
	var payload struct {
		Title   *string  `json:"title"`
		Content *string  `json:"content"`
		Tags    []string `json:"tags"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, apperrors.Validationf("unexpected story payload: %v", err)
	}

	switch {
	case payload.Title == nil:
		return nil, apperrors.Validation("story payload missing title")
	case payload.Content == nil:
		return nil, apperrors.Validation("story payload missing content")
	case payload.Tags == nil:
		return nil, apperrors.Validation("story payload missing tags")
	}

	return &Story{
		Title:   *payload.Title,
		Content: *payload.Content,
		Tags:    payload.Tags,
	}, nil
}
