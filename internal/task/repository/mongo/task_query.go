package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	repo "taskflow/internal/task/repository"
)

// completedValues are the stored representations that mean "completed".
var completedValues = bson.A{true, 1, "Yes", "yes", "YES", "true", "1"}

// userIDValues matches a user id stored either as a string or as an ObjectID.
func userIDValues(id string) bson.A {
	values := bson.A{id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		values = append(values, oid)
	}
	return values
}

// buildListFilter builds the filter for ListTasks.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildListFilter(opt repo.ListTasksOptions) bson.M {
	filter := bson.M{}

	if opt.VisibleTo != "" {
		ids := userIDValues(opt.VisibleTo)
		filter["$or"] = bson.A{
			bson.M{"owner": bson.M{"$in": ids}},
			bson.M{"assignedTo": bson.M{"$in": ids}},
		}
	}

	if opt.Completed != nil {
		if *opt.Completed {
			filter["completed"] = bson.M{"$in": completedValues}
		} else {
			filter["completed"] = bson.M{"$nin": completedValues}
		}
	}

	if opt.Priority != "" {
		filter["priority"] = string(opt.Priority)
	}

	due := bson.M{}
	if opt.DueFrom != "" {
		due["$gte"] = opt.DueFrom
	}
	if opt.DueTo != "" {
		due["$lte"] = opt.DueTo
	}
	if opt.DueBefore != "" {
		due["$gt"] = ""
		due["$lt"] = opt.DueBefore
	}
	if len(due) > 0 {
		filter["dueDate"] = due
	}

	return filter
}
