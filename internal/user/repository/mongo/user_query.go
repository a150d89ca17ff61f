package mongo

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	repo "taskflow/internal/user/repository"
)

// buildGetOneFilter builds the filter for GetOneUser.
// ok is false when the options cannot match any document.
func (r *implRepository) buildGetOneFilter(opt repo.GetOneUserOptions) (bson.M, bool) {
	filter := bson.M{}
	if opt.ID != "" {
		oid, err := primitive.ObjectIDFromHex(opt.ID)
		if err != nil {
			return nil, false
		}
		filter["_id"] = oid
	}
	if opt.Email != "" {
		filter["email"] = strings.ToLower(opt.Email)
	}
	return filter, len(filter) > 0
}

// buildListFilter builds the filter for ListUsers. Malformed ids are skipped.
func (r *implRepository) buildListFilter(opt repo.ListUsersOptions) bson.M {
	if len(opt.IDs) == 0 {
		return bson.M{}
	}
	oids := make([]primitive.ObjectID, 0, len(opt.IDs))
	for _, id := range opt.IDs {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return bson.M{"_id": bson.M{"$in": oids}}
}
