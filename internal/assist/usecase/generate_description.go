package usecase

import (
	"context"
	"errors"
	"strings"

	"taskflow/internal/assist"
)

// GenerateDescription asks the model to draft a description for title.
func (uc *implUseCase) GenerateDescription(ctx context.Context, input assist.GenerateDescriptionInput) (assist.GenerateDescriptionOutput, error) {
	prompt, schema, err := buildDescriptionPrompt(input.Title)
	if err != nil {
		return assist.GenerateDescriptionOutput{}, err
	}

	text, err := uc.generate(ctx, prompt, schema)
	if err != nil {
		uc.l.Errorf(ctx, "assist.usecase.GenerateDescription.generate: %v", err)
		return assist.GenerateDescriptionOutput{}, err
	}

	var parsed struct {
		Description string `json:"description"`
	}
	if err := decodeJSON(text, &parsed); err != nil {
		uc.l.Errorf(ctx, "assist.usecase.GenerateDescription.decode: raw=%q: %v", text, err)
		return assist.GenerateDescriptionOutput{}, err
	}

	description := strings.TrimSpace(parsed.Description)
	if description == "" {
		uc.l.Errorf(ctx, "assist.usecase.GenerateDescription: answer has no description: raw=%q", text)
		return assist.GenerateDescriptionOutput{}, errors.Join(assist.ErrMalformedResponse, errors.New("missing description"))
	}

	return assist.GenerateDescriptionOutput{Description: description}, nil
}
