package student

import (
	"github.com/autoassign/api/services"
	"github.com/autoassign/api/services/storage"
	"gorm.io/gorm"
)

// StudentHandler handles the student dashboard and submission uploads
type StudentHandler struct {
	db          *gorm.DB
	dashboard   *services.DashboardService
	assignments *services.AssignmentService
	uploads     storage.Storage
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(
	db *gorm.DB,
	dashboard *services.DashboardService,
	assignments *services.AssignmentService,
	uploads storage.Storage,
) *StudentHandler {
	return &StudentHandler{
		db:          db,
		dashboard:   dashboard,
		assignments: assignments,
		uploads:     uploads,
	}
}
