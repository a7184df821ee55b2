package story

// GenerateRequest describes a story generation request.
type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Style  string `json:"style"`
	Length string `json:"length"`
}

// Story is a generated story.
type Story struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}
