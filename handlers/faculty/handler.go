package faculty

import (
	"strconv"

	"github.com/autoassign/api/services"
	"github.com/autoassign/api/utils/middleware"
	"github.com/autoassign/api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MaxPDFSize caps uploaded course-material PDFs at 10 MB
const MaxPDFSize = 10 * 1024 * 1024

// FacultyHandler handles question generation, assignment creation and
// the faculty dashboard reads.
type FacultyHandler struct {
	db          *gorm.DB
	questions   *services.QuestionService
	assignments *services.AssignmentService
	dashboard   *services.DashboardService
	extractor   *services.PDFExtractor
	validator   *validation.Validator
}

// NewFacultyHandler creates a new faculty handler
func NewFacultyHandler(
	db *gorm.DB,
	questions *services.QuestionService,
	assignments *services.AssignmentService,
	dashboard *services.DashboardService,
) *FacultyHandler {
	return &FacultyHandler{
		db:          db,
		questions:   questions,
		assignments: assignments,
		dashboard:   dashboard,
		extractor:   services.NewPDFExtractor(),
		validator:   validation.NewValidator(),
	}
}

// sessionFacultyID resolves the numeric faculty ID from the current session
func sessionFacultyID(c *fiber.Ctx) (uint, bool) {
	data, ok := middleware.GetSession(c)
	if !ok || data.ID == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(data.ID, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
