package auth

import (
	"time"

	"github.com/autoassign/api/utils/session"
	"github.com/autoassign/api/utils/validation"
	"gorm.io/gorm"
)

// AdminCredentials is the environment-configured administrator account.
// There is no admin row in the database.
type AdminCredentials struct {
	Email    string
	Password string
}

// AuthHandler handles login, logout and password changes
type AuthHandler struct {
	db         *gorm.DB
	sessions   session.Store
	validator  *validation.Validator
	sessionTTL time.Duration
	admin      AdminCredentials
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, sessions session.Store, sessionTTL time.Duration, admin AdminCredentials) *AuthHandler {
	return &AuthHandler{
		db:         db,
		sessions:   sessions,
		validator:  validation.NewValidator(),
		sessionTTL: sessionTTL,
		admin:      admin,
	}
}
