package deepseek

import "context"

// IDeepSeek is a client for DeepSeek's OpenAI-compatible chat completions API.
// Safe for concurrent use.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
