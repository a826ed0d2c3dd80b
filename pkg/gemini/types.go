package gemini

// GenerateRequest is the top-level request body for the Gemini API.
type GenerateRequest struct {
	SystemInstruction *Content          `json:"system_instruction,omitempty"`
	Contents          []Content         `json:"contents"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment of a content message.
type Part struct {
	Text string `json:"text,omitempty"`
}

// GenerationConfig holds optional generation settings.
// ResponseMIMEType + ResponseSchema enable structured output: the model is
// constrained to emit a single JSON document matching the schema.
type GenerationConfig struct {
	Temperature      float64        `json:"temperature,omitempty"`
	MaxOutputTokens  int            `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

// GenerateResponse is the top-level response body from the Gemini API.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate represents a single response candidate.
type Candidate struct {
	Content Content `json:"content"`
}

// Text returns the first candidate's first text part, or "" when the
// response carries no usable content.
func (r *GenerateResponse) Text() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}
