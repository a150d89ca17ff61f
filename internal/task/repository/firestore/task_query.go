package firestore

import (
	"cloud.google.com/go/firestore"

	"taskflow/internal/model"
	repo "taskflow/internal/task/repository"
)

// listQuery narrows the query by visibility. The remaining filters run in
// memory because legacy completion values and mixed dueDate types cannot be
// expressed as Firestore range queries.
func (r *implRepository) listQuery(opt repo.ListTasksOptions) firestore.Query {
	q := r.tasks().Query
	if opt.VisibleTo != "" {
		q = q.WhereEntity(firestore.OrFilter{Filters: []firestore.EntityFilter{
			firestore.PropertyFilter{Path: "owner", Operator: "==", Value: opt.VisibleTo},
			firestore.PropertyFilter{Path: "assignedTo", Operator: "array-contains", Value: opt.VisibleTo},
		}})
	}
	return q
}

func matches(t model.Task, opt repo.ListTasksOptions) bool {
	if opt.Completed != nil && t.Completed != *opt.Completed {
		return false
	}
	if opt.Priority != "" && t.Priority != opt.Priority {
		return false
	}
	if opt.DueFrom != "" || opt.DueTo != "" || opt.DueBefore != "" {
		if t.DueDate == "" {
			return false
		}
	}
	if opt.DueFrom != "" && t.DueDate < opt.DueFrom {
		return false
	}
	if opt.DueTo != "" && t.DueDate > opt.DueTo {
		return false
	}
	if opt.DueBefore != "" && t.DueDate >= opt.DueBefore {
		return false
	}
	return true
}
