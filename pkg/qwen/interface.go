package qwen

import "context"

// IQwen is a client for Qwen's OpenAI-compatible chat completions API.
// Safe for concurrent use.
type IQwen interface {
	// GenerateContent sends one chat completion. Request.JSONMode sets
	// response_format to json_object.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	Model() string
}

// New validates cfg and returns a client.
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
