package model

// TaskDraft is a partially filled task that has not been persisted.
// Every field is optional.
type TaskDraft struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
}

// Patch returns d with every non-empty field of incoming applied on top.
// Empty incoming fields never erase what d already holds.
func (d TaskDraft) Patch(incoming TaskDraft) TaskDraft {
	return TaskDraft{
		Title:       coalesce(incoming.Title, d.Title),
		Description: coalesce(incoming.Description, d.Description),
		Priority:    coalesce(incoming.Priority, d.Priority),
		DueDate:     coalesce(incoming.DueDate, d.DueDate),
	}
}

func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
