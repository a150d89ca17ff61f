package http

import (
	"encoding/json"

	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/pkg/response"
)

// completion accepts true/false, 1/0 and "Yes"/"No" on input.
type completion bool

func (c *completion) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = completion(model.ParseCompletion(v))
	return nil
}

// --- Request DTOs ---

type subtaskReq struct {
	Title     string     `json:"title"`
	Completed completion `json:"completed"`
}

func toSubtasks(reqs []subtaskReq) []model.Subtask {
	if reqs == nil {
		return nil
	}
	subtasks := make([]model.Subtask, len(reqs))
	for i, st := range reqs {
		subtasks[i] = model.Subtask{Title: st.Title, Completed: bool(st.Completed)}
	}
	return subtasks
}

type createReq struct {
	Title       string       `json:"title"       binding:"required,max=200"`
	Description string       `json:"description"`
	Priority    string       `json:"priority"`
	DueDate     string       `json:"dueDate"`
	Completed   completion   `json:"completed"`
	AssignedTo  []string     `json:"assignedTo"`
	Subtasks    []subtaskReq `json:"subtasks"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		Completed:   bool(r.Completed),
		AssignedTo:  r.AssignedTo,
		Subtasks:    toSubtasks(r.Subtasks),
	}
}

// updateReq leaves omitted fields unchanged. "" clears description and dueDate.
type updateReq struct {
	Title       string       `json:"title"       binding:"omitempty,max=200"`
	Description *string      `json:"description"`
	Priority    string       `json:"priority"`
	DueDate     *string      `json:"dueDate"`
	Completed   *completion  `json:"completed"`
	AssignedTo  []string     `json:"assignedTo"`
	Subtasks    []subtaskReq `json:"subtasks"`
}

func (r updateReq) toInput(id string) task.UpdateInput {
	input := task.UpdateInput{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		AssignedTo:  r.AssignedTo,
		Subtasks:    toSubtasks(r.Subtasks),
	}
	if r.Completed != nil {
		done := bool(*r.Completed)
		input.Completed = &done
	}
	return input
}

type listReq struct {
	Completed string `form:"completed"`
	Priority  string `form:"priority"`
	Due       string `form:"due"`
}

func (r listReq) toInput() task.ListInput {
	input := task.ListInput{Priority: r.Priority, Due: r.Due}
	if r.Completed != "" {
		done := model.ParseCompletion(r.Completed)
		input.Completed = &done
	}
	return input
}

// --- Response DTOs ---

type subtaskResp struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type progressResp struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Percent   float64 `json:"percent"`
}

type taskResp struct {
	ID          string            `json:"id"`
	Owner       string            `json:"owner"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Priority    string            `json:"priority"`
	DueDate     string            `json:"dueDate,omitempty"`
	Completed   bool              `json:"completed"`
	AssignedTo  []string          `json:"assignedTo"`
	Subtasks    []subtaskResp     `json:"subtasks"`
	Progress    progressResp      `json:"progress"`
	CreatedAt   response.DateTime `json:"createdAt"`
	UpdatedAt   response.DateTime `json:"updatedAt"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	subtasks := make([]subtaskResp, len(t.Subtasks))
	for i, st := range t.Subtasks {
		subtasks[i] = subtaskResp{Title: st.Title, Completed: st.Completed}
	}
	assigned := t.AssignedTo
	if assigned == nil {
		assigned = []string{}
	}
	stats := h.cl.GetStats(t.Subtasks)

	return taskResp{
		ID:          t.ID,
		Owner:       t.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		AssignedTo:  assigned,
		Subtasks:    subtasks,
		Progress:    progressResp{Total: stats.Total, Completed: stats.Completed, Percent: stats.Progress},
		CreatedAt:   response.DateTime(t.CreatedAt),
		UpdatedAt:   response.DateTime(t.UpdatedAt),
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.TaskOutput) detailResp {
	return detailResp{Task: h.newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = h.newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}

type statsResp struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	HighPriority   int     `json:"highPriority"`
	DueToday       int     `json:"dueToday"`
	Overdue        int     `json:"overdue"`
	CompletionRate float64 `json:"completionRate"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp{
		Total:          out.Total,
		Completed:      out.Completed,
		Pending:        out.Pending,
		HighPriority:   out.HighPriority,
		DueToday:       out.DueToday,
		Overdue:        out.Overdue,
		CompletionRate: out.CompletionRate,
	}
}
