package model

import (
	"testing"
)

func TestParseCompletion(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{true, true},
		{false, false},
		{1, true},
		{0, false},
		{int32(1), true},
		{int64(0), false},
		{float64(1), true},
		{"Yes", true},
		{"yes", true},
		{" YES ", true},
		{"No", false},
		{"true", true},
		{"1", true},
		{"false", false},
		{"maybe", false},
		{nil, false},
		{[]string{"yes"}, false},
	}

	for _, tt := range tests {
		if got := ParseCompletion(tt.in); got != tt.want {
			t.Errorf("ParseCompletion(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in     string
		want   Priority
		wantOK bool
	}{
		{"High", PriorityHigh, true},
		{"high", PriorityHigh, true},
		{" MEDIUM ", PriorityMedium, true},
		{"low", PriorityLow, true},
		{"urgent", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePriority(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePriority(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTask_CanAccess(t *testing.T) {
	task := Task{OwnerID: "owner", AssignedTo: []string{"a", "b"}}

	for _, id := range []string{"owner", "a", "b"} {
		if !task.CanAccess(id) {
			t.Errorf("CanAccess(%q) = false, want true", id)
		}
	}
	if task.CanAccess("stranger") {
		t.Error("CanAccess(stranger) = true, want false")
	}
}

func TestTaskDraft_Patch(t *testing.T) {
	existing := TaskDraft{Title: "Write report", Description: "Q2 numbers", Priority: "Low", DueDate: "2025-06-10"}

	t.Run("empty incoming keeps everything", func(t *testing.T) {
		if got := existing.Patch(TaskDraft{}); got != existing {
			t.Errorf("Patch() = %+v, want %+v", got, existing)
		}
	})

	t.Run("present fields replace", func(t *testing.T) {
		got := existing.Patch(TaskDraft{Priority: "High", DueDate: "2025-06-06"})
		want := TaskDraft{Title: "Write report", Description: "Q2 numbers", Priority: "High", DueDate: "2025-06-06"}
		if got != want {
			t.Errorf("Patch() = %+v, want %+v", got, want)
		}
	})

	t.Run("fills missing fields", func(t *testing.T) {
		got := TaskDraft{}.Patch(TaskDraft{Title: "New"})
		if got.Title != "New" || got.Description != "" {
			t.Errorf("Patch() = %+v", got)
		}
	})
}

func TestValidateDueDate(t *testing.T) {
	tests := []struct {
		name    string
		due     string
		ref     string
		wantErr error
	}{
		{"same day", "2025-06-02", "2025-06-02", nil},
		{"future", "2025-06-06", "2025-06-02", nil},
		{"past", "2024-01-01", "2025-06-02", ErrDueDatePast},
		{"slash format", "06/06/2025", "2025-06-02", ErrDueDateFormat},
		{"not a day", "2025-02-30", "2025-01-01", ErrDueDateFormat},
		{"with time", "2025-06-06T10:00:00Z", "2025-06-02", ErrDueDateFormat},
		{"empty", "", "2025-06-02", ErrDueDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateDueDate(tt.due, tt.ref); err != tt.wantErr {
				t.Errorf("ValidateDueDate(%q, %q) = %v, want %v", tt.due, tt.ref, err, tt.wantErr)
			}
		})
	}
}
