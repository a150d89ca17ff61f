package assist

import "taskflow/internal/model"

// --- UseCase Inputs ---

// ParseTaskInput carries free text to turn into task fields.
// CurrentDate (YYYY-MM-DD) is the reference for relative dates; empty means today.
// Draft, when set, is the form the user is already filling in.
type ParseTaskInput struct {
	NaturalLanguageInput string
	CurrentDate          string
	Draft                *model.TaskDraft
}

type GenerateDescriptionInput struct {
	Title string
}

// --- UseCase Outputs ---

// ParseTaskOutput holds the suggested fields. Warning describes any field
// that was dropped because it failed validation.
type ParseTaskOutput struct {
	Draft   model.TaskDraft
	Warning string
}

type GenerateDescriptionOutput struct {
	Description string
}
