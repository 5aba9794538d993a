package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is a staff role controlling endpoint access.
type Role string

const (
	RoleWaiter Role = "waiter"
	RoleAdmin  Role = "admin"
	RoleChef   Role = "chef"
)

// ValidRole reports whether r is a known staff role.
func ValidRole(r Role) bool {
	return r == RoleWaiter || r == RoleAdmin || r == RoleChef
}

// User represents a staff account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Email is the login identifier, unique across users.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// Role controls endpoint access.
	Role Role `json:"role"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"created_at"`
}

// NewUser constructs a user with a fresh ID and timestamp.
func NewUser(email, name, passwordHash string, role Role) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().Unix(),
	}
}
