package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"taskflow/internal/assist"
	"taskflow/internal/model"
	"taskflow/pkg/datemath"
	"taskflow/pkg/llmprovider"
	"taskflow/pkg/log"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
	last  *llmprovider.Request
}

func (s *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.calls++
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Content: llmprovider.Message{
		Role:  llmprovider.RoleAssistant,
		Parts: []llmprovider.Part{{Text: s.text}},
	}}, nil
}

func (s *stubGenerator) prompt() string {
	if s.last == nil || len(s.last.Messages) == 0 {
		return ""
	}
	return s.last.Messages[0].Parts[0].Text
}

func newTestUseCase(t *testing.T, gen *stubGenerator) *implUseCase {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}
	return &implUseCase{
		l:     log.NewNop(),
		llm:   gen,
		dates: dates,
		now:   func() time.Time { return time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC) },
	}
}

func TestParseTask_RelativeDate(t *testing.T) {
	gen := &stubGenerator{text: `{"title":"Finish quarterly report","priority":"high","dueDate":"2025-06-06"}`}
	uc := newTestUseCase(t, gen)

	out, err := uc.ParseTask(context.Background(), assist.ParseTaskInput{
		NaturalLanguageInput: "Finish quarterly report by Friday, high priority",
		CurrentDate:          "2025-06-02",
	})
	if err != nil {
		t.Fatalf("ParseTask() error = %v", err)
	}

	if !strings.Contains(gen.prompt(), "The current date is 2025-06-02.") {
		t.Errorf("prompt does not carry the reference date: %s", gen.prompt())
	}
	if !strings.Contains(gen.prompt(), `"Finish quarterly report by Friday, high priority"`) {
		t.Errorf("prompt does not carry the request: %s", gen.prompt())
	}
	if gen.last.ResponseSchema != taskSchema {
		t.Error("request should carry the task schema")
	}
	if out.Draft.DueDate != "2025-06-06" {
		t.Errorf("DueDate = %q, want 2025-06-06", out.Draft.DueDate)
	}
	if out.Draft.Priority != "High" {
		t.Errorf("Priority = %q, want High", out.Draft.Priority)
	}
	if !strings.Contains(out.Draft.Title, "report") {
		t.Errorf("Title = %q, want it to mention the report", out.Draft.Title)
	}
	if out.Warning != "" {
		t.Errorf("Warning = %q, want none", out.Warning)
	}
}

func TestParseTask_DueDateWarnings(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		wantWarning string
	}{
		{
			name:        "past date",
			answer:      `{"title":"Pay rent","description":"Monthly","priority":"Medium","dueDate":"2024-01-01"}`,
			wantWarning: "AI suggested a past date: 2024-01-01. Please choose a future date.",
		},
		{
			name:        "wrong format",
			answer:      `{"title":"Pay rent","dueDate":"06/06/2025"}`,
			wantWarning: "AI provided an invalid date format: 06/06/2025. Please enter manually.",
		},
		{
			name:        "impossible day",
			answer:      `{"title":"Pay rent","dueDate":"2025-02-30"}`,
			wantWarning: "AI provided an invalid date format: 2025-02-30. Please enter manually.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, &stubGenerator{text: tt.answer})

			out, err := uc.ParseTask(context.Background(), assist.ParseTaskInput{
				NaturalLanguageInput: "pay rent",
				CurrentDate:          "2025-06-02",
			})
			if err != nil {
				t.Fatalf("ParseTask() error = %v", err)
			}
			if out.Draft.DueDate != "" {
				t.Errorf("DueDate = %q, want cleared", out.Draft.DueDate)
			}
			if out.Warning != tt.wantWarning {
				t.Errorf("Warning = %q, want %q", out.Warning, tt.wantWarning)
			}
			if out.Draft.Title != "Pay rent" {
				t.Errorf("Title = %q", out.Draft.Title)
			}
			if tt.name == "past date" && (out.Draft.Description != "Monthly" || out.Draft.Priority != "Medium") {
				t.Errorf("other fields should pass through: %+v", out.Draft)
			}
		})
	}
}

func TestParseTask_SameDayIsAllowed(t *testing.T) {
	uc := newTestUseCase(t, &stubGenerator{text: `{"title":"Call","dueDate":"2025-06-02"}`})

	out, err := uc.ParseTask(context.Background(), assist.ParseTaskInput{NaturalLanguageInput: "call today", CurrentDate: "2025-06-02"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Draft.DueDate != "2025-06-02" || out.Warning != "" {
		t.Errorf("got %+v", out)
	}
}

func TestParseTask_UnsupportedPriority(t *testing.T) {
	uc := newTestUseCase(t, &stubGenerator{text: `{"title":"Call","priority":"urgent"}`})

	out, err := uc.ParseTask(context.Background(), assist.ParseTaskInput{NaturalLanguageInput: "call"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Draft.Priority != "" {
		t.Errorf("Priority = %q, want cleared", out.Draft.Priority)
	}
	if !strings.Contains(out.Warning, "unsupported priority") {
		t.Errorf("Warning = %q", out.Warning)
	}
}

func TestParseTask_DefaultsToToday(t *testing.T) {
	gen := &stubGenerator{text: `{"title":"Call"}`}
	uc := newTestUseCase(t, gen)

	if _, err := uc.ParseTask(context.Background(), assist.ParseTaskInput{NaturalLanguageInput: "call"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.prompt(), "The current date is 2025-06-04.") {
		t.Errorf("prompt should use today: %s", gen.prompt())
	}
}

func TestParseTask_MergesDraft(t *testing.T) {
	gen := &stubGenerator{text: "```json\n{\"title\":\"Write tests\",\"dueDate\":\"2020-01-01\"}\n```"}
	uc := newTestUseCase(t, gen)

	out, err := uc.ParseTask(context.Background(), assist.ParseTaskInput{
		NaturalLanguageInput: "write tests",
		CurrentDate:          "2025-06-02",
		Draft: &model.TaskDraft{
			Title:       "Old title",
			Description: "Keep me",
			Priority:    "Medium",
			DueDate:     "2025-07-01",
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := model.TaskDraft{Title: "Write tests", Description: "Keep me", Priority: "Medium", DueDate: "2025-07-01"}
	if out.Draft != want {
		t.Errorf("Draft = %+v, want %+v", out.Draft, want)
	}
	if out.Warning == "" {
		t.Error("past suggestion should still be reported")
	}
}

func TestParseTask_DraftPastDueDateCleared(t *testing.T) {
	uc := newTestUseCase(t, &stubGenerator{text: `{"title":"x"}`})

	out, err := uc.ParseTask(context.Background(), assist.ParseTaskInput{
		NaturalLanguageInput: "x",
		CurrentDate:          "2025-06-02",
		Draft:                &model.TaskDraft{DueDate: "2025-01-01"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Draft.DueDate != "" {
		t.Errorf("DueDate = %q, want cleared", out.Draft.DueDate)
	}
	if !strings.Contains(out.Warning, "past date: 2025-01-01") {
		t.Errorf("Warning = %q, want past date warning", out.Warning)
	}
}

func TestParseTask_DraftBadDueDateFormatWarns(t *testing.T) {
	uc := newTestUseCase(t, &stubGenerator{text: `{"title":"x","dueDate":"2025-06-10"}`})

	// A valid suggestion replaces the bad draft value, so no warning.
	out, err := uc.ParseTask(context.Background(), assist.ParseTaskInput{
		NaturalLanguageInput: "x",
		CurrentDate:          "2025-06-02",
		Draft:                &model.TaskDraft{DueDate: "10/06/2025"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Draft.DueDate != "2025-06-10" || out.Warning != "" {
		t.Errorf("got dueDate=%q warning=%q", out.Draft.DueDate, out.Warning)
	}

	uc = newTestUseCase(t, &stubGenerator{text: `{"title":"x"}`})
	out, err = uc.ParseTask(context.Background(), assist.ParseTaskInput{
		NaturalLanguageInput: "x",
		CurrentDate:          "2025-06-02",
		Draft:                &model.TaskDraft{DueDate: "10/06/2025"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Draft.DueDate != "" {
		t.Errorf("DueDate = %q, want cleared", out.Draft.DueDate)
	}
	if !strings.Contains(out.Warning, "invalid date format: 10/06/2025") {
		t.Errorf("Warning = %q, want invalid format warning", out.Warning)
	}
}

func TestParseTask_Errors(t *testing.T) {
	tests := []struct {
		name      string
		gen       *stubGenerator
		input     assist.ParseTaskInput
		wantErr   error
		wantCalls int
	}{
		{"empty input", &stubGenerator{}, assist.ParseTaskInput{NaturalLanguageInput: "   "}, assist.ErrInvalidInput, 0},
		{"bad current date", &stubGenerator{}, assist.ParseTaskInput{NaturalLanguageInput: "x", CurrentDate: "June 2"}, assist.ErrInvalidInput, 0},
		{"provider failure", &stubGenerator{err: errors.New("timeout")}, assist.ParseTaskInput{NaturalLanguageInput: "x"}, assist.ErrGenerationFailed, 1},
		{"blank answer", &stubGenerator{text: "  "}, assist.ParseTaskInput{NaturalLanguageInput: "x"}, assist.ErrGenerationFailed, 1},
		{"not json", &stubGenerator{text: "sure thing"}, assist.ParseTaskInput{NaturalLanguageInput: "x"}, assist.ErrMalformedResponse, 1},
		{"missing title", &stubGenerator{text: `{"priority":"Low"}`}, assist.ParseTaskInput{NaturalLanguageInput: "x"}, assist.ErrMalformedResponse, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, tt.gen)

			_, err := uc.ParseTask(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.gen.calls != tt.wantCalls {
				t.Errorf("provider calls = %d, want %d", tt.gen.calls, tt.wantCalls)
			}
		})
	}
}

func TestGenerateDescription(t *testing.T) {
	gen := &stubGenerator{text: `{"description":"1. Draft\n2. Review"}`}
	uc := newTestUseCase(t, gen)

	out, err := uc.GenerateDescription(context.Background(), assist.GenerateDescriptionInput{Title: "Migrate database to new region"})
	if err != nil {
		t.Fatalf("GenerateDescription() error = %v", err)
	}
	if out.Description != "1. Draft\n2. Review" {
		t.Errorf("Description = %q", out.Description)
	}
	if !strings.Contains(gen.prompt(), `Title: "Migrate database to new region"`) {
		t.Errorf("prompt = %s", gen.prompt())
	}
	if gen.last.ResponseSchema != descriptionSchema {
		t.Error("request should carry the description schema")
	}
}

func TestGenerateDescription_Errors(t *testing.T) {
	tests := []struct {
		name    string
		gen     *stubGenerator
		title   string
		wantErr error
	}{
		{"empty title", &stubGenerator{}, " ", assist.ErrInvalidInput},
		{"provider failure", &stubGenerator{err: errors.New("503")}, "x", assist.ErrGenerationFailed},
		{"missing description", &stubGenerator{text: `{"summary":"x"}`}, "x", assist.ErrMalformedResponse},
		{"broken json", &stubGenerator{text: `{"description":`}, "x", assist.ErrMalformedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, tt.gen)
			_, err := uc.GenerateDescription(context.Background(), assist.GenerateDescriptionInput{Title: tt.title})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`Here you go: {"a":1} thanks`, `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"no json", "no json"},
	}
	for _, tt := range tests {
		if got := sanitizeJSONResponse(tt.in); got != tt.want {
			t.Errorf("sanitizeJSONResponse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildPrompts(t *testing.T) {
	if _, _, err := buildParseTaskPrompt("", "2025-06-02"); !errors.Is(err, assist.ErrInvalidInput) {
		t.Errorf("empty text: err = %v", err)
	}
	if _, _, err := buildDescriptionPrompt(""); !errors.Is(err, assist.ErrInvalidInput) {
		t.Errorf("empty title: err = %v", err)
	}

	prompt, schema, err := buildParseTaskPrompt("call mom tomorrow", "2025-06-02")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(prompt, "2025-06-02") != 2 {
		t.Errorf("reference date should appear twice: %s", prompt)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "title" {
		t.Errorf("Required = %v", schema.Required)
	}
	if schema.Properties["dueDate"].Format != "date" {
		t.Error("dueDate should be a date")
	}
}
