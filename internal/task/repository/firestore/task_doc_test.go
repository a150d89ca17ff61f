package firestore

import (
	"testing"
	"time"

	"taskflow/internal/model"
	repo "taskflow/internal/task/repository"
)

func TestTaskFromData(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	data := map[string]interface{}{
		"owner":      "u1",
		"title":      "Ship",
		"priority":   "medium",
		"dueDate":    time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
		"completed":  "No",
		"assignedTo": []interface{}{"u2", 7},
		"subtasks": []interface{}{
			map[string]interface{}{"title": "a", "completed": int64(1)},
			"garbage",
		},
		"createdAt": created,
	}

	got := taskFromData("t1", data)

	if got.ID != "t1" || got.OwnerID != "u1" {
		t.Errorf("ids = %q/%q", got.ID, got.OwnerID)
	}
	if got.Priority != model.PriorityMedium {
		t.Errorf("Priority = %q", got.Priority)
	}
	if got.DueDate != "2025-06-06" {
		t.Errorf("DueDate = %q", got.DueDate)
	}
	if got.Completed {
		t.Error(`"No" should decode as not completed`)
	}
	if len(got.AssignedTo) != 1 || got.AssignedTo[0] != "u2" {
		t.Errorf("AssignedTo = %v", got.AssignedTo)
	}
	if len(got.Subtasks) != 1 || !got.Subtasks[0].Completed {
		t.Errorf("Subtasks = %+v", got.Subtasks)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v", got.CreatedAt)
	}
}

func TestMatches(t *testing.T) {
	done := true
	task := model.Task{Priority: model.PriorityHigh, DueDate: "2025-06-04", Completed: true}

	tests := []struct {
		name string
		opt  repo.ListTasksOptions
		want bool
	}{
		{"no filters", repo.ListTasksOptions{}, true},
		{"completed", repo.ListTasksOptions{Completed: &done}, true},
		{"priority mismatch", repo.ListTasksOptions{Priority: model.PriorityLow}, false},
		{"in range", repo.ListTasksOptions{DueFrom: "2025-06-02", DueTo: "2025-06-08"}, true},
		{"range is inclusive", repo.ListTasksOptions{DueFrom: "2025-06-04", DueTo: "2025-06-04"}, true},
		{"before is exclusive", repo.ListTasksOptions{DueBefore: "2025-06-04"}, false},
		{"before", repo.ListTasksOptions{DueBefore: "2025-06-05"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matches(task, tt.opt); got != tt.want {
				t.Errorf("matches() = %v, want %v", got, tt.want)
			}
		})
	}

	if matches(model.Task{}, repo.ListTasksOptions{DueBefore: "2025-06-05"}) {
		t.Error("task without due date should not match a date filter")
	}
}
