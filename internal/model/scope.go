package model

// Scope identifies the caller of a usecase operation.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

const (
	RoleSystem = "system"
	RoleAdmin  = "admin"
	RoleUser   = "user"
)

// SystemScope is used by background consumers that act on behalf of the service itself.
func SystemScope() Scope {
	return Scope{UserID: RoleSystem, Username: RoleSystem, Role: RoleSystem}
}

// IsSystem reports whether the scope belongs to an internal caller.
func (s Scope) IsSystem() bool {
	return s.Role == RoleSystem
}
