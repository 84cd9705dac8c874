package auth

import (
	"github.com/autoassign/api/utils/middleware"
	"github.com/autoassign/api/utils/response"
	"github.com/autoassign/api/utils/session"
	"github.com/gofiber/fiber/v2"
)

// Logout destroys the server-side session and clears the cookie
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token, ok := middleware.GetSessionToken(c); ok {
		if err := h.sessions.Destroy(c.Context(), token); err != nil {
			return response.InternalServerError(c, "Failed to destroy session")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return response.SuccessWithMessage(c, "Logged out successfully", nil)
}

// Me returns the identity behind the current session
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	data, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	return response.Success(c, UserResponse{
		ID:    data.ID,
		Email: data.Email,
		Name:  data.Name,
		Role:  data.Role,
	})
}
