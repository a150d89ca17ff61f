package llmprovider

import (
	"context"
	"fmt"

	"taskflow/pkg/deepseek"
	"taskflow/pkg/gemini"
	"taskflow/pkg/qwen"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		ResponseSchema:    toGeminiSchema(req.ResponseSchema),
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        convertUsage(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		SystemInstruction: convertToQwenContent(withSchemaInstruction(req)),
		Messages:          convertToQwenContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.ResponseSchema != nil,
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromQwenContent(resp.Content),
		ProviderName: ProviderQwen,
		ModelName:    a.client.Model(),
		Usage:        convertUsage(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return ProviderQwen
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	deepseekReq := &deepseek.Request{
		Messages:    convertToDeepSeekMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// Add system instruction as first message if present
	if system := withSchemaInstruction(req); system != nil {
		systemMsg := deepseek.Message{
			Role:    RoleSystem,
			Content: joinText(system.Parts),
		}
		deepseekReq.Messages = append([]deepseek.Message{systemMsg}, deepseekReq.Messages...)
	}

	if req.ResponseSchema != nil {
		deepseekReq.ResponseFormat = &deepseek.ResponseFormat{Type: deepseek.ResponseFormatJSONObject}
	}

	resp, err := a.client.GenerateContent(ctx, deepseekReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}

	return convertFromDeepSeekResponse(resp), nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return ProviderDeepSeek
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// withSchemaInstruction returns the system instruction, extended with the
// response schema for providers that have no native schema support.
func withSchemaInstruction(req *Request) *Message {
	if req.ResponseSchema == nil {
		return req.SystemInstruction
	}

	msg := Message{Role: RoleSystem}
	if req.SystemInstruction != nil {
		msg.Parts = append(msg.Parts, req.SystemInstruction.Parts...)
	}
	msg.Parts = append(msg.Parts, Part{Text: schemaInstruction(req.ResponseSchema)})
	return &msg
}

func joinText(parts []Part) string {
	text := ""
	for _, p := range parts {
		if p.Text == "" {
			continue
		}
		if text != "" {
			text += "\n"
		}
		text += p.Text
	}
	return text
}

func convertUsage(in, out, total int) *Usage {
	return &Usage{InputTokens: in, OutputTokens: out, TotalTokens: total}
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToGeminiContent(&msg)
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}

// Conversion helpers for Qwen
func convertToQwenContent(msg *Message) *qwen.Content {
	if msg == nil {
		return nil
	}
	parts := make([]qwen.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = qwen.Part{Text: p.Text}
	}
	return &qwen.Content{Role: msg.Role, Parts: parts}
}

func convertToQwenContents(msgs []Message) []qwen.Content {
	contents := make([]qwen.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToQwenContent(&msg)
	}
	return contents
}

func convertFromQwenContent(content qwen.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}

// Conversion helpers for DeepSeek
func convertToDeepSeekMessages(msgs []Message) []deepseek.Message {
	messages := make([]deepseek.Message, 0, len(msgs))
	for _, msg := range msgs {
		messages = append(messages, deepseek.Message{
			Role:    msg.Role,
			Content: joinText(msg.Parts),
		})
	}
	return messages
}

func convertFromDeepSeekResponse(resp *deepseek.Response) *Response {
	parts := []Part{}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		parts = append(parts, Part{Text: resp.Choices[0].Message.Content})
	}

	return &Response{
		Content: Message{
			Role:  RoleAssistant,
			Parts: parts,
		},
		ProviderName: ProviderDeepSeek,
		ModelName:    resp.Model,
		Usage:        convertUsage(resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens),
	}
}
