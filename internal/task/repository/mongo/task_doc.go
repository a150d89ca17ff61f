package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskflow/internal/model"
)

type subtaskDoc struct {
	Title     string `bson:"title"`
	Completed bool   `bson:"completed"`
}

// taskDoc is the shape written by this service.
type taskDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Owner       string             `bson:"owner"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Priority    string             `bson:"priority"`
	DueDate     string             `bson:"dueDate,omitempty"`
	Completed   bool               `bson:"completed"`
	AssignedTo  []string           `bson:"assignedTo"`
	Subtasks    []subtaskDoc       `bson:"subtasks"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// storedTaskDoc is the read shape. Older documents hold owner and assignee
// ObjectIDs, Date due dates, and "Yes"/"No" or 1/0 completion flags.
type storedTaskDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Owner       interface{}        `bson:"owner"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Priority    string             `bson:"priority"`
	DueDate     interface{}        `bson:"dueDate"`
	Completed   interface{}        `bson:"completed"`
	AssignedTo  []interface{}      `bson:"assignedTo"`
	Subtasks    []struct {
		Title     string      `bson:"title"`
		Completed interface{} `bson:"completed"`
	} `bson:"subtasks"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
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

func (d storedTaskDoc) toModel() model.Task {
	priority, ok := model.ParsePriority(d.Priority)
	if !ok {
		priority = model.PriorityLow
	}

	assigned := make([]string, 0, len(d.AssignedTo))
	for _, a := range d.AssignedTo {
		if id := idString(a); id != "" {
			assigned = append(assigned, id)
		}
	}

	subtasks := make([]model.Subtask, len(d.Subtasks))
	for i, st := range d.Subtasks {
		subtasks[i] = model.Subtask{Title: st.Title, Completed: model.ParseCompletion(st.Completed)}
	}

	return model.Task{
		ID:          d.ID.Hex(),
		OwnerID:     idString(d.Owner),
		Title:       d.Title,
		Description: d.Description,
		Priority:    priority,
		DueDate:     dueDateString(d.DueDate),
		Completed:   model.ParseCompletion(d.Completed),
		AssignedTo:  assigned,
		Subtasks:    subtasks,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	}
	return ""
}

func dueDateString(v interface{}) string {
	switch d := v.(type) {
	case string:
		if len(d) >= len(model.DateLayout) {
			return d[:len(model.DateLayout)]
		}
		return d
	case primitive.DateTime:
		return d.Time().UTC().Format(model.DateLayout)
	}
	return ""
}
