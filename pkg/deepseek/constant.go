package deepseek

import "time"

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"
	DefaultTimeout = 30 * time.Second

	// ResponseFormatJSONObject asks the model for a single JSON object.
	ResponseFormatJSONObject = "json_object"

	chatCompletionsPath = "/chat/completions"
)
