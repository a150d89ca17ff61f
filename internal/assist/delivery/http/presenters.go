package http

import (
	"taskflow/internal/assist"
	"taskflow/internal/model"
)

// --- Request DTOs ---

type draftReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

type parseTaskReq struct {
	NaturalLanguageInput string    `json:"naturalLanguageInput"`
	CurrentDate          string    `json:"currentDate"`
	Draft                *draftReq `json:"draft"`
}

func (r parseTaskReq) toInput() assist.ParseTaskInput {
	input := assist.ParseTaskInput{
		NaturalLanguageInput: r.NaturalLanguageInput,
		CurrentDate:          r.CurrentDate,
	}
	if r.Draft != nil {
		input.Draft = &model.TaskDraft{
			Title:       r.Draft.Title,
			Description: r.Draft.Description,
			Priority:    r.Draft.Priority,
			DueDate:     r.Draft.DueDate,
		}
	}
	return input
}

type generateDescriptionReq struct {
	Title string `json:"title"`
}

func (r generateDescriptionReq) toInput() assist.GenerateDescriptionInput {
	return assist.GenerateDescriptionInput{Title: r.Title}
}

// --- Response DTOs ---

// parseTaskResp is the task-schema subset plus an optional warning.
type parseTaskResp struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Warning     string `json:"warning,omitempty"`
}

func (h *handler) newParseTaskResp(out assist.ParseTaskOutput) parseTaskResp {
	return parseTaskResp{
		Title:       out.Draft.Title,
		Description: out.Draft.Description,
		Priority:    out.Draft.Priority,
		DueDate:     out.Draft.DueDate,
		Warning:     out.Warning,
	}
}

type errorResp struct {
	Error string `json:"error"`
}

type descriptionResp struct {
	Description string `json:"description"`
}

type generateDescriptionResp struct {
	Success bool            `json:"success"`
	Parsed  descriptionResp `json:"parsed"`
}

func (h *handler) newGenerateDescriptionResp(out assist.GenerateDescriptionOutput) generateDescriptionResp {
	return generateDescriptionResp{Success: true, Parsed: descriptionResp{Description: out.Description}}
}

type descriptionErrorResp struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
