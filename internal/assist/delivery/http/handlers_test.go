package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"taskflow/internal/assist"
	"taskflow/internal/model"
	"taskflow/pkg/log"
)

type stubUseCase struct {
	parseOut assist.ParseTaskOutput
	descOut  assist.GenerateDescriptionOutput
	err      error
	gotParse assist.ParseTaskInput
}

func (s *stubUseCase) ParseTask(ctx context.Context, input assist.ParseTaskInput) (assist.ParseTaskOutput, error) {
	s.gotParse = input
	return s.parseOut, s.err
}

func (s *stubUseCase) GenerateDescription(ctx context.Context, input assist.GenerateDescriptionInput) (assist.GenerateDescriptionOutput, error) {
	return s.descOut, s.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newJSONContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestParseTask(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		uc         *stubUseCase
		wantStatus int
		wantBody   string
	}{
		{
			name: "success with warning",
			body: `{"naturalLanguageInput":"pay rent","currentDate":"2025-06-02"}`,
			uc: &stubUseCase{parseOut: assist.ParseTaskOutput{
				Draft:   model.TaskDraft{Title: "Pay rent", Priority: "High"},
				Warning: "AI suggested a past date: 2024-01-01. Please choose a future date.",
			}},
			wantStatus: http.StatusOK,
			wantBody:   `{"title":"Pay rent","priority":"High","warning":"AI suggested a past date: 2024-01-01. Please choose a future date."}`,
		},
		{
			name:       "missing input",
			body:       `{}`,
			uc:         &stubUseCase{err: assist.ErrEmptyNaturalLanguageInput},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Natural language input is required."}`,
		},
		{
			name:       "bad current date",
			body:       `{"naturalLanguageInput":"x","currentDate":"tomorrow"}`,
			uc:         &stubUseCase{err: assist.ErrInvalidCurrentDate},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"currentDate must be in YYYY-MM-DD format."}`,
		},
		{
			name:       "malformed body",
			body:       `[`,
			uc:         &stubUseCase{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Natural language input is required."}`,
		},
		{
			name:       "generation failed",
			body:       `{"naturalLanguageInput":"x"}`,
			uc:         &stubUseCase{err: assist.ErrGenerationFailed},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to parse task using AI."}`,
		},
		{
			name:       "malformed answer",
			body:       `{"naturalLanguageInput":"x"}`,
			uc:         &stubUseCase{err: errors.Join(assist.ErrMalformedResponse, errors.New("missing title"))},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to parse task using AI."}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newJSONContext(tt.body)

			New(log.NewNop(), tt.uc).ParseTask(c)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Body.String(); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}

func TestParseTask_PassesDraft(t *testing.T) {
	uc := &stubUseCase{parseOut: assist.ParseTaskOutput{Draft: model.TaskDraft{Title: "x"}}}
	c, _ := newJSONContext(`{"naturalLanguageInput":"x","draft":{"title":"Old","priority":"Low"}}`)

	New(log.NewNop(), uc).ParseTask(c)

	if uc.gotParse.Draft == nil || uc.gotParse.Draft.Title != "Old" || uc.gotParse.Draft.Priority != "Low" {
		t.Errorf("Draft = %+v", uc.gotParse.Draft)
	}
}

func TestGenerateDescription(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		uc         *stubUseCase
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"title":"Launch"}`,
			uc:         &stubUseCase{descOut: assist.GenerateDescriptionOutput{Description: "Plan it."}},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"parsed":{"description":"Plan it."}}`,
		},
		{
			name:       "missing title",
			body:       `{}`,
			uc:         &stubUseCase{err: assist.ErrEmptyTitle},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"Task title is required for description generation."}`,
		},
		{
			name:       "provider failure",
			body:       `{"title":"Launch"}`,
			uc:         &stubUseCase{err: assist.ErrGenerationFailed},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"message":"AI service failed to generate description."}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newJSONContext(tt.body)

			New(log.NewNop(), tt.uc).GenerateDescription(c)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Body.String(); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}
