package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// CookieName is the session cookie set on login and cleared on logout
const CookieName = "autoassign_sid"

// Roles recorded on a session
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
	RoleFaculty = "faculty"
)

// ErrNotFound is returned when a token has no live session
var ErrNotFound = errors.New("session not found")

// Data is the server-held state behind one opaque session token
type Data struct {
	ID    string `json:"id"` // student_id or faculty_id, empty for admin
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Store is the session-store abstraction. Backings must expire sessions on
// their own or via Sweep-style maintenance; Get never returns expired data.
type Store interface {
	Get(ctx context.Context, token string) (*Data, error)
	Put(ctx context.Context, token string, data Data) error
	Destroy(ctx context.Context, token string) error
}

// NewToken returns a fresh opaque session token
func NewToken() string {
	return uuid.New().String()
}
