package model

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the caller has the admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
