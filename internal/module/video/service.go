// Package video assembles placeholder video artifacts and manages stored
// video files.
//
// No real composition or encoding happens here: "generation" packages the
// request inputs as a structured record and encodes that record as if it
// were binary media. Callers depend on this placeholder contract; it must
// hold until a real media pipeline is substituted.
package video

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/contentforge/server/internal/artifact"
	"github.com/contentforge/server/internal/shared/codec"
	apperrors "github.com/contentforge/server/internal/shared/errors"
	"github.com/contentforge/server/internal/shared/logger"
)

// DefaultDuration is the per-image display duration in seconds when none is
// requested.
const DefaultDuration = 10

// supportedFormats enumerates the accepted video container formats, in the
// order they are reported.
var supportedFormats = []Format{
	{Format: "mp4", Description: "MPEG-4 video format"},
	{Format: "avi", Description: "Audio Video Interleave"},
	{Format: "mov", Description: "QuickTime Movie"},
	{Format: "wmv", Description: "Windows Media Video"},
	{Format: "flv", Description: "Flash Video"},
	{Format: "webm", Description: "WebM video format"},
}

// allowedExtensions is the upload extension allow-list.
var allowedExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
}

// payload is the structured record standing in for encoded video data.
type payload struct {
	Images   []string `json:"images"`
	Audio    *string  `json:"audio"`
	Duration int      `json:"duration"`
	Format   string   `json:"format"`
}

// Service is the video generation service.
type Service struct {
	store     artifact.Store
	publisher Publisher
	log       *logger.Logger
}

// NewService creates a video service.
func NewService(store artifact.Store, publisher Publisher, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		log:       log.With("component", "video"),
	}
}

// Generate assembles the placeholder artifact from the request inputs.
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) (*Video, error) {
	if len(req.Images) == 0 {
		return nil, apperrors.Validation("at least one image is required")
	}
	if req.Duration < 0 {
		return nil, apperrors.Validation("duration must be a positive integer")
	}
	duration := req.Duration
	if duration == 0 {
		duration = DefaultDuration
	}

	record := payload{
		Images:   req.Images,
		Duration: duration,
		Format:   "mp4",
	}
	if req.Audio != "" {
		record.Audio = &req.Audio
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, apperrors.Storage("marshal video record", err)
	}

	result := &Video{
		Video:    codec.Encode(data),
		Filename: artifact.NewName("video", ".mp4"),
		Duration: duration,
	}
	s.log.Info("video assembled", "images", len(req.Images), "duration", duration)
	return result, nil
}

// Save assembles the placeholder artifact and persists the decoded bytes.
func (s *Service) Save(ctx context.Context, req *GenerateRequest) (*Saved, error) {
	video, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decode(video.Video)
	if err != nil {
		return nil, err
	}

	path, err := s.store.Save(ctx, artifact.KindVideo, video.Filename, data)
	if err != nil {
		return nil, err
	}

	s.log.Info("video saved", "filename", video.Filename, "path", path)
	return &Saved{
		Filename: video.Filename,
		Path:     path,
		Duration: video.Duration,
	}, nil
}

// ProcessUpload validates and persists a directly uploaded video file under a
// freshly assigned filename preserving the original extension.
func (s *Service) ProcessUpload(ctx context.Context, data []byte, originalFilename string) (*Upload, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !allowedExtensions[ext] {
		return nil, apperrors.Validationf("unsupported file type %q, allowed: %s", ext, strings.Join(artifact.KindVideo.Extensions(), ", "))
	}

	filename := artifact.NewName("upload", ext)
	path, err := s.store.Save(ctx, artifact.KindVideo, filename, data)
	if err != nil {
		return nil, err
	}

	s.log.Info("upload processed", "original", originalFilename, "filename", filename, "size", len(data))
	return &Upload{
		Filename: filename,
		Path:     path,
		Size:     len(data),
	}, nil
}

// Publish publishes a stored video through the configured publisher.
func (s *Service) Publish(ctx context.Context, videoPath, title, description string, tags []string) (*PublishResult, error) {
	return s.publisher.Publish(ctx, videoPath, title, description, tags)
}

// Status reports processing status for a video. No job tracking exists, so
// every lookup returns the same completed record.
func (s *Service) Status(ctx context.Context, videoID string) *Status {
	return &Status{
		VideoID:  videoID,
		Status:   "completed",
		Progress: 100,
		Message:  "Video processing completed successfully",
	}
}

// SupportedFormats returns the accepted video container formats.
func (s *Service) SupportedFormats() []Format {
	return supportedFormats
}

// List enumerates persisted video artifacts.
func (s *Service) List(ctx context.Context) ([]artifact.FileInfo, error) {
	return s.store.List(ctx, artifact.KindVideo)
}

// Delete removes a persisted video artifact by filename.
func (s *Service) Delete(ctx context.Context, filename string) error {
	return s.store.Delete(ctx, artifact.KindVideo, filename)
}
