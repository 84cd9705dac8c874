package student

import (
	"errors"
	"strconv"

	"github.com/autoassign/api/services"
	"github.com/autoassign/api/services/storage"
	"github.com/autoassign/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// UploadAssignment stores a student's submission file and moves their
// allocation to submitted. The transition is one-way; a second upload for
// the same assignment is rejected.
func (h *StudentHandler) UploadAssignment(c *fiber.Ctx) error {
	studentID := c.FormValue("studentId")
	if studentID == "" {
		return response.BadRequest(c, "Student ID is required")
	}
	if err := requireSelf(c, studentID); err != nil {
		return err
	}

	assignmentID, err := strconv.ParseUint(c.FormValue("assignmentId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid assignment ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "Submission file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	key := storage.NewKey(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if _, err := h.uploads.Save(c.Context(), key, file, contentType); err != nil {
		return response.InternalServerError(c, "Failed to store submission")
	}

	if err := h.assignments.Submit(uint(assignmentID), studentID, key); err != nil {
		// The file is already stored; remove it so failed submissions do
		// not leave orphans until the cleanup job runs.
		_ = h.uploads.Delete(c.Context(), key)

		if errors.Is(err, services.ErrAllocationNotFound) {
			return response.NotFound(c, "Assignment not allocated to this student")
		}
		if errors.Is(err, services.ErrAlreadySubmitted) {
			return response.Conflict(c, "Assignment already submitted")
		}
		return response.InternalServerError(c, "Failed to record submission")
	}

	return response.SuccessWithMessage(c, "Assignment submitted successfully", fiber.Map{
		"file_path": key,
	})
}

// Download serves a stored submission file by its storage key
func (h *StudentHandler) Download(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if filename == "" {
		return response.BadRequest(c, "Filename is required")
	}

	reader, err := h.uploads.Open(c.Context(), filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return response.NotFound(c, "File not found")
		}
		return response.InternalServerError(c, "Failed to open file")
	}

	c.Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	return c.SendStream(reader)
}
