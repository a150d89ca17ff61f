package firestore

import (
	"time"

	"taskflow/internal/model"
)

type userDoc struct {
	Name      string    `firestore:"name"`
	Email     string    `firestore:"email"`
	Password  string    `firestore:"password"`
	Role      string    `firestore:"role"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

type emailDoc struct {
	UserID string `firestore:"userId"`
}

func (d userDoc) toModel(id string) model.User {
	role := model.Role(d.Role)
	if !role.IsValid() {
		role = model.RoleMember
	}
	return model.User{
		ID:           id,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		Role:         role,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
