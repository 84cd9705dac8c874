package auth

import (
	"fmt"

	"github.com/autoassign/api/model"
	"github.com/autoassign/api/utils/auth"
	"github.com/autoassign/api/utils/response"
	"github.com/autoassign/api/utils/session"
	"github.com/gofiber/fiber/v2"
)

// LoginRequest represents a login request for any role
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the authenticated identity returned on login
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Login authenticates admin, student or faculty by email. The role is not
// part of the request; the admin credential is checked first, then students,
// then faculty. All failures return the same generic message so the endpoint
// does not leak which emails exist.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	// Admin is an environment-configured credential, not a database row
	if h.admin.Email != "" && req.Email == h.admin.Email {
		if req.Password != h.admin.Password {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return h.startSession(c, session.Data{
			Email: req.Email,
			Name:  "Administrator",
			Role:  session.RoleAdmin,
		})
	}

	// Students are checked before faculty
	var student model.Student
	if err := h.db.Where("email = ?", req.Email).First(&student).Error; err == nil {
		if err := auth.VerifyPassword(student.PasswordHash, req.Password); err != nil {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return h.startSession(c, session.Data{
			ID:    student.StudentID,
			Email: student.Email,
			Name:  student.Name,
			Role:  session.RoleStudent,
		})
	}

	var faculty model.Faculty
	if err := h.db.Where("email = ?", req.Email).First(&faculty).Error; err == nil {
		if err := auth.VerifyPassword(faculty.PasswordHash, req.Password); err != nil {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return h.startSession(c, session.Data{
			ID:    fmt.Sprintf("%d", faculty.FacultyID),
			Email: faculty.Email,
			Name:  faculty.Name,
			Role:  session.RoleFaculty,
		})
	}

	return response.Unauthorized(c, "Invalid email or password")
}

// startSession creates the server-side session and sets the opaque cookie
func (h *AuthHandler) startSession(c *fiber.Ctx, data session.Data) error {
	token := session.NewToken()
	if err := h.sessions.Put(c.Context(), token, data); err != nil {
		return response.InternalServerError(c, "Failed to create session")
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		MaxAge:   int(h.sessionTTL.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return response.Success(c, UserResponse{
		ID:    data.ID,
		Email: data.Email,
		Name:  data.Name,
		Role:  data.Role,
	})
}
