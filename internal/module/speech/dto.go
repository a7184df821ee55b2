package speech

// GenerateRequest describes a speech synthesis request.
type GenerateRequest struct {
	Text  string `json:"text" binding:"required"`
	Voice string `json:"voice"`
	Model string `json:"model"`
}

// Audio is a synthesized speech artifact with its transport encoding.
type Audio struct {
	Audio    string `json:"audio"`
	Filename string `json:"filename"`
	Voice    string `json:"voice"`
	Model    string `json:"model"`
}

// Saved describes a persisted speech artifact.
type Saved struct {
	Filename string `json:"filename"`
	Path     string `json:"file_path"`
	Voice    string `json:"voice"`
	Model    string `json:"model"`
}

// Voice describes an available synthesis voice.
type Voice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
