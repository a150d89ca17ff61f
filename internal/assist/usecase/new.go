package usecase

import (
	"context"
	"time"

	"taskflow/pkg/datemath"
	"taskflow/pkg/llmprovider"
	"taskflow/pkg/log"
)

// generator is the part of llmprovider.Manager the use case needs.
type generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l     log.Logger
	llm   generator
	dates *datemath.Parser
	now   func() time.Time
}

// New creates the assist use case. llm is usually an *llmprovider.Manager.
func New(l log.Logger, llm generator, dates *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:     l,
		llm:   llm,
		dates: dates,
		now:   time.Now,
	}
}
