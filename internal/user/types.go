package user

import "taskflow/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	Name  string
	Email string
}

type UpdatePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- UseCase Outputs ---

type UserOutput struct {
	User model.User
}

type LoginOutput struct {
	Token string
	User  model.User
}

type ListMembersOutput struct {
	Members []model.User
}
