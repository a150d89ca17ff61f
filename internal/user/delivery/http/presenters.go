package http

import (
	"taskflow/internal/model"
	"taskflow/internal/user"
	"taskflow/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Name     string `json:"name"     binding:"required,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Email: r.Email, Password: r.Password}
}

type updateProfileReq struct {
	Name  string `json:"name"  binding:"omitempty,max=100"`
	Email string `json:"email" binding:"omitempty,email"`
}

func (r updateProfileReq) toInput() user.UpdateProfileInput {
	return user.UpdateProfileInput{Name: r.Name, Email: r.Email}
}

type updatePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword"     binding:"required"`
}

func (r updatePasswordReq) toInput() user.UpdatePasswordInput {
	return user.UpdatePasswordInput{CurrentPassword: r.CurrentPassword, NewPassword: r.NewPassword}
}

// --- Response DTOs ---

type userResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Role      string            `json:"role"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: response.DateTime(u.CreatedAt),
		UpdatedAt: response.DateTime(u.UpdatedAt),
	}
}

type detailResp struct {
	User userResp `json:"user"`
}

func (h *handler) newDetailResp(out user.UserOutput) detailResp {
	return detailResp{User: newUserResp(out.User)}
}

type loginResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func (h *handler) newLoginResp(out user.LoginOutput) loginResp {
	return loginResp{Token: out.Token, User: newUserResp(out.User)}
}

type memberResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type membersResp struct {
	Members []memberResp `json:"members"`
}

func (h *handler) newMembersResp(out user.ListMembersOutput) membersResp {
	members := make([]memberResp, len(out.Members))
	for i, u := range out.Members {
		members[i] = memberResp{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
	}
	return membersResp{Members: members}
}
