package image

// GenerateRequest describes an image generation request.
type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Style  string `json:"style"`
	Size   string `json:"size"`
}

// Image is a generated image hosted by the provider.
type Image struct {
	URL string `json:"url"`
}
