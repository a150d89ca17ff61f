package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"taskflow/internal/checklist"
	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/pkg/log"
	"taskflow/pkg/scope"
)

type stubUseCase struct {
	err       error
	task      model.Task
	gotCreate task.CreateInput
	gotUpdate task.UpdateInput
	gotList   task.ListInput
	gotIndex  int
}

func (s *stubUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.TaskOutput, error) {
	s.gotCreate = input
	return task.TaskOutput{Task: s.task}, s.err
}

func (s *stubUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	s.gotList = input
	return task.ListOutput{Tasks: []model.Task{s.task}}, s.err
}

func (s *stubUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.TaskOutput, error) {
	return task.TaskOutput{Task: s.task}, s.err
}

func (s *stubUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.TaskOutput, error) {
	s.gotUpdate = input
	return task.TaskOutput{Task: s.task}, s.err
}

func (s *stubUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return s.err
}

func (s *stubUseCase) ToggleSubtask(ctx context.Context, sc model.Scope, id string, index int) (task.TaskOutput, error) {
	s.gotIndex = index
	return task.TaskOutput{Task: s.task}, s.err
}

func (s *stubUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	return task.StatsOutput{Total: 2, Completed: 1, Pending: 1, CompletionRate: 50}, s.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newHandler(uc *stubUseCase) *handler {
	return New(log.NewNop(), uc, checklist.New())
}

func newAuthedContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	ctx := scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u1", Role: model.RoleMember})
	c.Request = c.Request.WithContext(ctx)
	return c, w
}

func TestCreate_CompletionForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"bool", `{"title":"a","completed":true}`, true},
		{"number", `{"title":"a","completed":1}`, true},
		{"yes", `{"title":"a","completed":"Yes"}`, true},
		{"no", `{"title":"a","completed":"No"}`, false},
		{"zero", `{"title":"a","completed":0}`, false},
		{"omitted", `{"title":"a"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{task: model.Task{ID: "t1", Title: "a"}}
			c, w := newAuthedContext(http.MethodPost, "/api/tasks", tt.body)

			newHandler(uc).Create(c)

			if w.Code != http.StatusCreated {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			if uc.gotCreate.Completed != tt.want {
				t.Errorf("Completed = %v, want %v", uc.gotCreate.Completed, tt.want)
			}
		})
	}
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{"missing title", `{"description":"x"}`, nil, http.StatusBadRequest},
		{"malformed", `{`, nil, http.StatusBadRequest},
		{"past due", `{"title":"a","dueDate":"2020-01-01"}`, task.ErrPastDueDate, http.StatusBadRequest},
		{"unknown assignee", `{"title":"a","assignedTo":["x"]}`, task.ErrUnknownAssignee, http.StatusBadRequest},
		{"storage", `{"title":"a"}`, errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newAuthedContext(http.MethodPost, "/api/tasks", tt.body)
			newHandler(&stubUseCase{err: tt.ucErr}).Create(c)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestCreate_Unauthorized(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{"title":"a"}`))

	newHandler(&stubUseCase{}).Create(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestList_Query(t *testing.T) {
	uc := &stubUseCase{task: model.Task{
		ID:       "t1",
		Subtasks: []model.Subtask{{Title: "a", Completed: true}, {Title: "b"}},
	}}
	c, w := newAuthedContext(http.MethodGet, "/api/tasks?completed=Yes&priority=high&due=week", "")

	newHandler(uc).List(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.gotList.Completed == nil || !*uc.gotList.Completed {
		t.Errorf("Completed = %v", uc.gotList.Completed)
	}
	if uc.gotList.Priority != "high" || uc.gotList.Due != "week" {
		t.Errorf("input = %+v", uc.gotList)
	}

	var body struct {
		Data listResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data.Tasks) != 1 {
		t.Fatalf("tasks = %+v", body.Data.Tasks)
	}
	p := body.Data.Tasks[0].Progress
	if p.Total != 2 || p.Completed != 1 || p.Percent != 50 {
		t.Errorf("progress = %+v", p)
	}
}

func TestList_NoCompletedFilter(t *testing.T) {
	uc := &stubUseCase{}
	c, _ := newAuthedContext(http.MethodGet, "/api/tasks", "")

	newHandler(uc).List(c)

	if uc.gotList.Completed != nil {
		t.Errorf("Completed = %v, want nil", *uc.gotList.Completed)
	}
}

func TestUpdate_Partial(t *testing.T) {
	uc := &stubUseCase{task: model.Task{ID: "t1"}}
	c, w := newAuthedContext(http.MethodPut, "/api/tasks/t1", `{"completed":"No"}`)
	c.Params = gin.Params{{Key: "id", Value: "t1"}}

	newHandler(uc).Update(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.gotUpdate.ID != "t1" {
		t.Errorf("ID = %q", uc.gotUpdate.ID)
	}
	if uc.gotUpdate.Completed == nil || *uc.gotUpdate.Completed {
		t.Errorf("Completed = %v, want false", uc.gotUpdate.Completed)
	}
	if uc.gotUpdate.AssignedTo != nil || uc.gotUpdate.Subtasks != nil {
		t.Error("omitted lists should stay nil")
	}
	if uc.gotUpdate.Description != nil || uc.gotUpdate.DueDate != nil {
		t.Error("omitted description and dueDate should stay nil")
	}
}

func TestUpdate_ClearFields(t *testing.T) {
	uc := &stubUseCase{task: model.Task{ID: "t1"}}
	c, w := newAuthedContext(http.MethodPut, "/api/tasks/t1", `{"title":"T","description":"","dueDate":""}`)
	c.Params = gin.Params{{Key: "id", Value: "t1"}}

	newHandler(uc).Update(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.gotUpdate.Description == nil || *uc.gotUpdate.Description != "" {
		t.Errorf("Description = %v, want pointer to empty", uc.gotUpdate.Description)
	}
	if uc.gotUpdate.DueDate == nil || *uc.gotUpdate.DueDate != "" {
		t.Errorf("DueDate = %v, want pointer to empty", uc.gotUpdate.DueDate)
	}
}

func TestDetail_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{task.ErrTaskNotFound, http.StatusNotFound},
		{task.ErrForbidden, http.StatusForbidden},
		{nil, http.StatusOK},
	}
	for _, tt := range tests {
		c, w := newAuthedContext(http.MethodGet, "/api/tasks/t1", "")
		c.Params = gin.Params{{Key: "id", Value: "t1"}}
		newHandler(&stubUseCase{err: tt.err}).Detail(c)
		if w.Code != tt.want {
			t.Errorf("err %v: status = %d, want %d", tt.err, w.Code, tt.want)
		}
	}
}

func TestToggleSubtask(t *testing.T) {
	uc := &stubUseCase{task: model.Task{ID: "t1"}}
	c, w := newAuthedContext(http.MethodPatch, "/api/tasks/t1/subtasks/2", "")
	c.Params = gin.Params{{Key: "id", Value: "t1"}, {Key: "index", Value: "2"}}

	newHandler(uc).ToggleSubtask(c)

	if w.Code != http.StatusOK || uc.gotIndex != 2 {
		t.Errorf("status = %d, index = %d", w.Code, uc.gotIndex)
	}

	c, w = newAuthedContext(http.MethodPatch, "/api/tasks/t1/subtasks/x", "")
	c.Params = gin.Params{{Key: "id", Value: "t1"}, {Key: "index", Value: "x"}}
	newHandler(uc).ToggleSubtask(c)
	if w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric index: status = %d, want 400", w.Code)
	}
}

func TestStats(t *testing.T) {
	c, w := newAuthedContext(http.MethodGet, "/api/tasks/stats", "")

	newHandler(&stubUseCase{}).Stats(c)

	var body struct {
		Data statsResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Total != 2 || body.Data.CompletionRate != 50 {
		t.Errorf("stats = %+v", body.Data)
	}
}
