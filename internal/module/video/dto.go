package video

// GenerateRequest describes a video assembly request: an ordered sequence of
// image references with optional inline-encoded audio.
type GenerateRequest struct {
	Images   []string `json:"images" binding:"required"`
	Audio    string   `json:"audio"`
	Duration int      `json:"duration"`
}

// Video is an assembled video artifact with its transport encoding.
type Video struct {
	Video    string `json:"video"`
	Filename string `json:"filename"`
	Duration int    `json:"duration"`
}

// Saved describes a persisted video artifact.
type Saved struct {
	Filename string `json:"filename"`
	Path     string `json:"file_path"`
	Duration int    `json:"duration"`
}

// Upload describes a processed direct upload.
type Upload struct {
	Filename string `json:"filename"`
	Path     string `json:"file_path"`
	Size     int    `json:"size"`
}

// Status is a video processing status record.
type Status struct {
	VideoID  string `json:"video_id"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Message  string `json:"message"`
}

// Format describes a supported video container format.
type Format struct {
	Format      string `json:"format"`
	Description string `json:"description"`
}
