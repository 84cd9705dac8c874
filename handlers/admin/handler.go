package admin

import (
	"github.com/autoassign/api/utils/validation"
	"gorm.io/gorm"
)

// AdminHandler handles master-data inserts and reference reads
type AdminHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}
