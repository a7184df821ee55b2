package video

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/contentforge/server/internal/shared/logger"
)

// PublishResult is the outcome of publishing a video to an external platform.
type PublishResult struct {
	Success     bool     `json:"success"`
	UploadID    string   `json:"upload_id"`
	URL         string   `json:"youtube_url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Publisher publishes a stored video to an external platform. Implementations
// own the platform integration; callers only see this interface so a real
// uploader can replace the mock without touching them.
type Publisher interface {
	Publish(ctx context.Context, videoPath, title, description string, tags []string) (*PublishResult, error)
}

// MockYouTubePublisher fabricates successful publish results without any
// network call. It stands in until a real YouTube Data API integration
// replaces it.
type MockYouTubePublisher struct {
	log *logger.Logger
}

// NewMockYouTubePublisher creates a mock publisher.
func NewMockYouTubePublisher(log *logger.Logger) *MockYouTubePublisher {
	return &MockYouTubePublisher{log: log.With("component", "youtube")}
}

// Publish fabricates a publish result with a fresh upload id and derived URL.
func (p *MockYouTubePublisher) Publish(ctx context.Context, videoPath, title, description string, tags []string) (*PublishResult, error) {
	uploadID := uuid.New().String()
	if tags == nil {
		tags = []string{}
	}

	p.log.Info("mock publish", "path", videoPath, "title", title, "upload_id", uploadID)
	return &PublishResult{
		Success:     true,
		UploadID:    uploadID,
		URL:         fmt.Sprintf("https://youtube.com/watch?v=%s", uploadID),
		Title:       title,
		Description: description,
		Tags:        tags,
	}, nil
}

var _ Publisher = (*MockYouTubePublisher)(nil)
