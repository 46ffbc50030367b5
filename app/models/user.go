package models

import (
	"time"
)

// User represents a portal login account (admin or teacher).
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name" validate:"required"`
	LastName     string    `json:"last_name" validate:"required"`
	Role         string    `json:"role" validate:"required,oneof=admin teacher"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CanAccessAllClasses reports whether the user may view every class.
func (u *User) CanAccessAllClasses() bool {
	return u.Role == "admin"
}

// Session represents a server-side login session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
