package checklist

import (
	"testing"

	"taskflow/internal/model"
)

func TestParseCheckboxes(t *testing.T) {
	content := "Plan the launch.\n" +
		"- [ ] Draft agenda\n" +
		"  - [x] Book room\n" +
		"* [X] Send invites\n" +
		"```\n- [ ] not a real item\n```\n" +
		"Inline `- [ ] code` is ignored\n" +
		"-[ ] missing space"

	got := New().ParseCheckboxes(content)

	want := []Checkbox{
		{Line: 0, Indent: "", Checked: false, Text: "Draft agenda"},
		{Line: 1, Indent: "  ", Checked: true, Text: "Book room"},
		{Line: 2, Indent: "", Checked: true, Text: "Send invites"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d checkboxes, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("checkbox %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSubtasks(t *testing.T) {
	svc := New()

	if got := svc.Subtasks("no checklist here"); got != nil {
		t.Errorf("Subtasks() = %+v, want nil", got)
	}

	got := svc.Subtasks("- [ ] Outline\n- [x] Research")
	if len(got) != 2 || got[0].Title != "Outline" || got[0].Completed || !got[1].Completed {
		t.Errorf("Subtasks() = %+v", got)
	}
}

func TestGetStats(t *testing.T) {
	tests := []struct {
		name     string
		subtasks []model.Subtask
		want     Stats
	}{
		{"empty", nil, Stats{}},
		{"half", []model.Subtask{{Title: "a", Completed: true}, {Title: "b"}}, Stats{Total: 2, Completed: 1, Pending: 1, Progress: 50}},
		{"done", []model.Subtask{{Title: "a", Completed: true}}, Stats{Total: 1, Completed: 1, Progress: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New().GetStats(tt.subtasks); got != tt.want {
				t.Errorf("GetStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
