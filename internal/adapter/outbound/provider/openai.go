// Package provider is the single point of integration with the external
// generative AI provider.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/contentforge/server/internal/shared/config"
	apperrors "github.com/contentforge/server/internal/shared/errors"
	"github.com/contentforge/server/internal/shared/metrics"
)

// Client wraps the OpenAI SDK for chat completion, image generation and
// speech synthesis. Provider failures are propagated verbatim, wrapped in the
// provider error kind; there are no retries and no timeout overrides beyond
// the SDK defaults.
type Client struct {
	api        *openai.Client
	chatModel  string
	imageModel string
	metrics    *metrics.Metrics
}

// New creates a provider client from configuration. The metrics instance may
// be nil.
func New(cfg config.OpenAIConfig, m *metrics.Metrics) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = openai.GPT4
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = openai.CreateImageModelDallE3
	}

	return &Client{
		api:        openai.NewClientWithConfig(apiCfg),
		chatModel:  chatModel,
		imageModel: imageModel,
		metrics:    m,
	}
}

// CompleteStructured requests a chat completion constrained to return a JSON
// object and returns the raw JSON payload.
func (c *Client) CompleteStructured(ctx context.Context, systemPrompt, userPrompt string) (json.RawMessage, error) {
	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	c.record("complete", err, start)
	if err != nil {
		return nil, apperrors.Provider("chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return nil, apperrors.Provider("chat completion returned no choices", nil)
	}

	content := resp.Choices[0].Message.Content
	if !json.Valid([]byte(content)) {
		return nil, apperrors.Provider("chat completion returned malformed JSON", errors.New(content))
	}
	return json.RawMessage(content), nil
}

// GenerateImage requests a single image and returns its provider-hosted URL.
func (c *Client) GenerateImage(ctx context.Context, prompt, size string) (string, error) {
	start := time.Now()
	resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
		Model:          c.imageModel,
		Prompt:         prompt,
		Size:           size,
		Quality:        openai.CreateImageQualityStandard,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	c.record("image", err, start)
	if err != nil {
		return "", apperrors.Provider("image generation failed", err)
	}
	if len(resp.Data) == 0 {
		return "", apperrors.Provider("image generation returned no data", nil)
	}
	return resp.Data[0].URL, nil
}

// SynthesizeSpeech requests speech synthesis and returns the raw audio bytes.
func (c *Client) SynthesizeSpeech(ctx context.Context, text, voice, model string) ([]byte, error) {
	start := time.Now()
	resp, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(model),
		Voice: openai.SpeechVoice(voice),
		Input: text,
	})
	c.record("speech", err, start)
	if err != nil {
		return nil, apperrors.Provider("speech synthesis failed", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, apperrors.Provider("read speech response", err)
	}
	return audio, nil
}

func (c *Client) record(operation string, err error, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordProviderRequest(operation, err, time.Since(start))
}
