package assist

import "context"

// UseCase fills task fields with the help of a language model.
// Every call is a single stateless request to the provider.
//
//go:generate mockery --name UseCase
type UseCase interface {
	ParseTask(ctx context.Context, input ParseTaskInput) (ParseTaskOutput, error)
	GenerateDescription(ctx context.Context, input GenerateDescriptionInput) (GenerateDescriptionOutput, error)
}
