package faculty

import (
	"errors"

	"github.com/autoassign/api/services"
	"github.com/autoassign/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// CreateAssignmentRequest creates an assignment from saved questions
type CreateAssignmentRequest struct {
	Title       string `json:"title" validate:"required"`
	SubjectCode string `json:"subject_code" validate:"required"`
	Questions   []uint `json:"questions" validate:"required,min=1"`
}

// CreateAssignment creates the assignment row and its question links in one
// transaction. The caller must teach the subject.
func (h *FacultyHandler) CreateAssignment(c *fiber.Ctx) error {
	facultyID, ok := sessionFacultyID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Validation failed: "+err.Error())
	}

	teaches, err := h.dashboard.TeachesSubject(facultyID, req.SubjectCode)
	if err != nil {
		return response.InternalServerError(c, "Failed to verify teaching association")
	}
	if !teaches {
		return response.Forbidden(c, "You do not teach this subject")
	}

	assignment, err := h.assignments.CreateAssignment(req.SubjectCode, req.Title, req.Questions)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, assignment)
}

// AssignAssignmentRequest distributes an assignment to students
type AssignAssignmentRequest struct {
	AssignmentID uint     `json:"assignmentId" validate:"required"`
	StudentIDs   []string `json:"studentIds" validate:"required,min=1"`
}

// AssignAssignment allocates the assignment to each listed student inside
// one transaction. Students already holding an allocation are skipped and
// reported back, so re-running a distribution is safe.
func (h *FacultyHandler) AssignAssignment(c *fiber.Ctx) error {
	if _, ok := sessionFacultyID(c); !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req AssignAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Validation failed: "+err.Error())
	}

	result, err := h.assignments.Distribute(req.AssignmentID, req.StudentIDs)
	if err != nil {
		if errors.Is(err, services.ErrAssignmentNotFound) {
			return response.NotFound(c, "Assignment not found")
		}
		return response.BadRequest(c, err.Error())
	}

	return response.SuccessWithMessage(c, "Assignment distributed", result)
}
