package usecase

import (
	"context"
	"errors"
	"strings"

	"taskflow/internal/assist"
	"taskflow/internal/model"
)

// ParseTask asks the model to extract task fields from free text.
// The answer is validated against the reference date and merged into the
// caller's draft, where only non-empty suggestions overwrite.
func (uc *implUseCase) ParseTask(ctx context.Context, input assist.ParseTaskInput) (assist.ParseTaskOutput, error) {
	referenceDate := strings.TrimSpace(input.CurrentDate)
	if referenceDate == "" {
		referenceDate = uc.dates.Today(uc.now())
	} else if !model.IsCalendarDate(referenceDate) {
		return assist.ParseTaskOutput{}, assist.ErrInvalidCurrentDate
	}

	prompt, schema, err := buildParseTaskPrompt(input.NaturalLanguageInput, referenceDate)
	if err != nil {
		return assist.ParseTaskOutput{}, err
	}

	text, err := uc.generate(ctx, prompt, schema)
	if err != nil {
		uc.l.Errorf(ctx, "assist.usecase.ParseTask.generate: %v", err)
		return assist.ParseTaskOutput{}, err
	}

	var parsed parsedTask
	if err := decodeJSON(text, &parsed); err != nil {
		uc.l.Errorf(ctx, "assist.usecase.ParseTask.decode: raw=%q: %v", text, err)
		return assist.ParseTaskOutput{}, err
	}
	if strings.TrimSpace(parsed.Title) == "" {
		uc.l.Errorf(ctx, "assist.usecase.ParseTask: answer has no title: raw=%q", text)
		return assist.ParseTaskOutput{}, errors.Join(assist.ErrMalformedResponse, errors.New("missing title"))
	}

	suggested, warnings := validateDraft(parsed, referenceDate)

	draft := suggested
	if input.Draft != nil {
		draft = input.Draft.Patch(suggested)
		// A due date kept from the caller's draft must still hold.
		if draft.DueDate != "" {
			if w := dueDateWarning(strings.TrimSpace(draft.DueDate), referenceDate); w != "" {
				warnings = append(warnings, w)
				draft.DueDate = ""
			}
		}
	}
	if len(warnings) > 0 {
		uc.l.Warnf(ctx, "assist.usecase.ParseTask: %s", strings.Join(warnings, " "))
	}

	return assist.ParseTaskOutput{
		Draft:   draft,
		Warning: strings.Join(warnings, " "),
	}, nil
}
