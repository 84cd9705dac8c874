package auth

import (
	"strconv"
	"strings"

	"github.com/autoassign/api/model"
	"github.com/autoassign/api/utils/auth"
	"github.com/autoassign/api/utils/middleware"
	"github.com/autoassign/api/utils/response"
	"github.com/autoassign/api/utils/session"
	"github.com/autoassign/api/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// ChangePasswordRequest represents a password change for the logged-in user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// ChangePassword updates the password of the current student or faculty
// session. The current password is verified before the new one is checked
// against the policy, so a wrong current password always fails with 401 no
// matter what the new password looks like. The admin credential lives in the
// environment and cannot be changed here.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	data, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}
	if data.Role == session.RoleAdmin {
		return response.BadRequest(c, "Admin password is managed outside the application")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	switch data.Role {
	case session.RoleStudent:
		return h.changeStudentPassword(c, data.ID, req)
	case session.RoleFaculty:
		return h.changeFacultyPassword(c, data.ID, req)
	default:
		return response.Forbidden(c, "Access denied")
	}
}

func (h *AuthHandler) changeStudentPassword(c *fiber.Ctx, studentID string, req ChangePasswordRequest) error {
	var student model.Student
	if err := h.db.First(&student, "student_id = ?", studentID).Error; err != nil {
		return response.NotFound(c, "Student not found")
	}

	if err := auth.VerifyPassword(student.PasswordHash, req.CurrentPassword); err != nil {
		return response.Unauthorized(c, "Current password is incorrect")
	}

	if valid, problems := validation.ValidatePassword(req.NewPassword); !valid {
		return response.BadRequest(c, "Invalid new password: "+strings.Join(problems, "; "))
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return response.InternalServerError(c, "Failed to hash password")
	}

	if err := h.db.Model(&student).Update("password_hash", hash).Error; err != nil {
		return response.InternalServerError(c, "Failed to update password")
	}

	return response.SuccessWithMessage(c, "Password updated successfully", nil)
}

func (h *AuthHandler) changeFacultyPassword(c *fiber.Ctx, facultyID string, req ChangePasswordRequest) error {
	id, err := strconv.ParseUint(facultyID, 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid faculty ID")
	}

	var faculty model.Faculty
	if err := h.db.First(&faculty, uint(id)).Error; err != nil {
		return response.NotFound(c, "Faculty not found")
	}

	if err := auth.VerifyPassword(faculty.PasswordHash, req.CurrentPassword); err != nil {
		return response.Unauthorized(c, "Current password is incorrect")
	}

	if valid, problems := validation.ValidatePassword(req.NewPassword); !valid {
		return response.BadRequest(c, "Invalid new password: "+strings.Join(problems, "; "))
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return response.InternalServerError(c, "Failed to hash password")
	}

	if err := h.db.Model(&faculty).Update("password_hash", hash).Error; err != nil {
		return response.InternalServerError(c, "Failed to update password")
	}

	return response.SuccessWithMessage(c, "Password updated successfully", nil)
}
