package firestore

import (
	"time"

	"taskflow/internal/model"
)

type subtaskDoc struct {
	Title     string `firestore:"title"`
	Completed bool   `firestore:"completed"`
}

type taskDoc struct {
	Owner       string       `firestore:"owner"`
	Title       string       `firestore:"title"`
	Description string       `firestore:"description"`
	Priority    string       `firestore:"priority"`
	DueDate     string       `firestore:"dueDate"`
	Completed   bool         `firestore:"completed"`
	AssignedTo  []string     `firestore:"assignedTo"`
	Subtasks    []subtaskDoc `firestore:"subtasks"`
	CreatedAt   time.Time    `firestore:"createdAt"`
	UpdatedAt   time.Time    `firestore:"updatedAt"`
}

func newTaskDoc(t model.Task) taskDoc {
	subtasks := make([]subtaskDoc, len(t.Subtasks))
	for i, st := range t.Subtasks {
		subtasks[i] = subtaskDoc{Title: st.Title, Completed: st.Completed}
	}
	assigned := t.AssignedTo
	if assigned == nil {
		assigned = []string{}
	}
	return taskDoc{
		Owner:       t.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		AssignedTo:  assigned,
		Subtasks:    subtasks,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// taskFromData decodes a raw document map. Completion flags may be stored as
// booleans, numbers or "Yes"/"No" strings, and due dates as timestamps.
func taskFromData(id string, data map[string]interface{}) model.Task {
	priority, ok := model.ParsePriority(stringField(data, "priority"))
	if !ok {
		priority = model.PriorityLow
	}

	var assigned []string
	if raw, ok := data["assignedTo"].([]interface{}); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok && s != "" {
				assigned = append(assigned, s)
			}
		}
	}

	var subtasks []model.Subtask
	if raw, ok := data["subtasks"].([]interface{}); ok {
		for _, v := range raw {
			m, ok := v.(map[string]interface{})
			if !ok {
				continue
			}
			subtasks = append(subtasks, model.Subtask{
				Title:     stringField(m, "title"),
				Completed: model.ParseCompletion(m["completed"]),
			})
		}
	}

	return model.Task{
		ID:          id,
		OwnerID:     stringField(data, "owner"),
		Title:       stringField(data, "title"),
		Description: stringField(data, "description"),
		Priority:    priority,
		DueDate:     dueDateField(data["dueDate"]),
		Completed:   model.ParseCompletion(data["completed"]),
		AssignedTo:  assigned,
		Subtasks:    subtasks,
		CreatedAt:   timeField(data, "createdAt"),
		UpdatedAt:   timeField(data, "updatedAt"),
	}
}

func stringField(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}

func timeField(data map[string]interface{}, key string) time.Time {
	t, _ := data[key].(time.Time)
	return t
}

func dueDateField(v interface{}) string {
	switch d := v.(type) {
	case string:
		if len(d) >= len(model.DateLayout) {
			return d[:len(model.DateLayout)]
		}
		return d
	case time.Time:
		return d.UTC().Format(model.DateLayout)
	}
	return ""
}
