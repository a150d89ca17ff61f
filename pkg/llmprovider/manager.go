package llmprovider

import (
	"context"

	"taskflow/pkg/log"
)

// Manager sends each request to one provider exactly once.
// Failures are returned to the caller as-is; there is no retry and no fallback.
type Manager struct {
	provider Provider
	logger   log.Logger
}

// NewManager creates a new Manager bound to the given provider
func NewManager(provider Provider, logger log.Logger) *Manager {
	return &Manager{
		provider: provider,
		logger:   logger,
	}
}

// Provider returns the provider the manager talks to
func (m *Manager) Provider() Provider {
	return m.provider
}

// GenerateContent performs a single generation call.
// A response without any text is reported as ErrEmptyResponse.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m.provider == nil {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	resp, err := m.provider.GenerateContent(ctx, req)
	if err != nil {
		m.logFailure(ctx, err)
		return nil, &ProviderError{Provider: m.provider.Name(), Err: err}
	}

	if resp.Text() == "" {
		m.logFailure(ctx, ErrEmptyResponse)
		return nil, &ProviderError{Provider: m.provider.Name(), Err: ErrEmptyResponse}
	}

	m.logSuccess(ctx, resp)
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		m.provider.Name(), m.provider.Model(), in, out)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		m.provider.Name(), m.provider.Model(), err)
}
