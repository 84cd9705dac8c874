package faculty

import (
	"strconv"

	"github.com/autoassign/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// Subjects returns the courses a faculty member teaches
func (h *FacultyHandler) Subjects(c *fiber.Ctx) error {
	facultyID, err := strconv.ParseUint(c.Params("facultyId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid faculty ID")
	}

	courses, err := h.dashboard.FacultySubjects(uint(facultyID))
	if err != nil {
		return response.InternalServerError(c, "Failed to load subjects")
	}
	return response.Success(c, courses)
}

// AssignmentsBySubject returns a subject's assignments with their questions
func (h *FacultyHandler) AssignmentsBySubject(c *fiber.Ctx) error {
	subjectCode := c.Params("subjectCode")
	if subjectCode == "" {
		return response.BadRequest(c, "Subject code is required")
	}

	assignments, err := h.assignments.AssignmentsBySubject(subjectCode)
	if err != nil {
		return response.InternalServerError(c, "Failed to load assignments")
	}
	return response.Success(c, assignments)
}

// Batches returns the batches a faculty member teaches a subject to
func (h *FacultyHandler) Batches(c *fiber.Ctx) error {
	facultyID, err := strconv.ParseUint(c.Query("facultyId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid faculty ID")
	}
	subjectCode := c.Query("subjectCode")
	if subjectCode == "" {
		return response.BadRequest(c, "Subject code is required")
	}

	batches, err := h.dashboard.FacultyBatches(uint(facultyID), subjectCode)
	if err != nil {
		return response.InternalServerError(c, "Failed to load batches")
	}
	return response.Success(c, batches)
}

// StudentsInBatch returns the roster of one batch. The caller must teach
// the batch.
func (h *FacultyHandler) StudentsInBatch(c *fiber.Ctx) error {
	facultyID, ok := sessionFacultyID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	batchID, err := strconv.ParseUint(c.Params("batchId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid batch ID")
	}

	teaches, err := h.dashboard.TeachesBatch(facultyID, uint(batchID))
	if err != nil {
		return response.InternalServerError(c, "Failed to verify teaching association")
	}
	if !teaches {
		return response.Forbidden(c, "You do not teach this batch")
	}

	students, err := h.dashboard.StudentsInBatch(uint(batchID))
	if err != nil {
		return response.InternalServerError(c, "Failed to load students")
	}
	return response.Success(c, students)
}

// AllocationStatus returns per-student submission state for an assignment
func (h *FacultyHandler) AllocationStatus(c *fiber.Ctx) error {
	facultyID, err := strconv.ParseUint(c.Params("facultyId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid faculty ID")
	}
	subjectCode := c.Params("subjectCode")
	assignmentID, err := strconv.ParseUint(c.Params("assignmentId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid assignment ID")
	}

	teaches, err := h.dashboard.TeachesSubject(uint(facultyID), subjectCode)
	if err != nil {
		return response.InternalServerError(c, "Failed to verify teaching association")
	}
	if !teaches {
		return response.Forbidden(c, "You do not teach this subject")
	}

	allocations, err := h.assignments.AllocationStatus(uint(assignmentID))
	if err != nil {
		return response.InternalServerError(c, "Failed to load allocation status")
	}
	return response.Success(c, allocations)
}
