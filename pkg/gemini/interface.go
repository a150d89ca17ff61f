package gemini

import "context"

// IGemini is a Gemini generateContent client. Safe for concurrent use.
type IGemini interface {
	// GenerateContent sends one request. JSON mode is enabled through
	// GenerationConfig.ResponseMimeType and ResponseSchema.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	Model() string
}

// New validates cfg and returns a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
