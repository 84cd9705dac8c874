package student

import (
	"github.com/autoassign/api/services"
	"github.com/autoassign/api/utils/middleware"
	"github.com/autoassign/api/utils/response"
	"github.com/autoassign/api/utils/session"
	"github.com/gofiber/fiber/v2"
)

// requireSelf ensures students only read their own dashboard. Admin sessions
// pass through for support use.
func requireSelf(c *fiber.Ctx, studentID string) error {
	data, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}
	if data.Role == session.RoleAdmin {
		return nil
	}
	if data.Role != session.RoleStudent || data.ID != studentID {
		return response.Forbidden(c, "Access denied")
	}
	return nil
}

// Courses returns the courses the student is enrolled in
func (h *StudentHandler) Courses(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if err := requireSelf(c, studentID); err != nil {
		return err
	}

	courses, err := h.dashboard.StudentCourses(studentID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load courses")
	}
	return response.Success(c, courses)
}

// Assignments returns the student's assignments for one course, grouped
// into pending and submitted.
func (h *StudentHandler) Assignments(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	subjectCode := c.Params("courseId")
	if err := requireSelf(c, studentID); err != nil {
		return err
	}

	assignments, err := h.dashboard.StudentAssignments(studentID, subjectCode)
	if err != nil {
		return response.InternalServerError(c, "Failed to load assignments")
	}

	return response.Success(c, services.PartitionByStatus(assignments))
}
