package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskflow/internal/model"
)

// userDoc is the stored shape of a user. Field names match the documents
// written by the previous Node service.
type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty"`
}

func (d userDoc) toModel() model.User {
	role := model.Role(d.Role)
	if !role.IsValid() {
		role = model.RoleMember
	}
	return model.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		Role:         role,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
