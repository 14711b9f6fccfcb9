package models

import "time"

// Roles a caller profile can hold. Mutating housekeeping data requires an
// elevated role; seeding requires admin.
const (
	RoleAdmin       = "admin"
	RoleSupervisor  = "supervisor"
	RoleHousekeeper = "housekeeper"
	RoleViewer      = "viewer"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RoleHousekeeper, RoleViewer:
		return true
	}
	return false
}

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupRequest represents the request body for signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
