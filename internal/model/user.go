package model

import "time"

// Role is a user's role within the team.
type Role string

const (
	RoleMember   Role = "member"
	RoleTeamLead Role = "team_lead"
	RoleAdmin    Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleTeamLead, RoleAdmin:
		return true
	}
	return false
}

// User is a registered account. PasswordHash holds a bcrypt hash, never the password.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
