package middleware

import (
	"github.com/autoassign/api/utils/response"
	"github.com/autoassign/api/utils/session"
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware resolves the session cookie against the session store
type AuthMiddleware struct {
	sessions session.Store
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(sessions session.Store) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Required is middleware that requires a live session
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" {
			return response.Unauthorized(c, "Not authenticated")
		}

		data, err := m.sessions.Get(c.Context(), token)
		if err != nil {
			if err == session.ErrNotFound {
				return response.Unauthorized(c, "Session expired or invalid")
			}
			return response.InternalServerError(c, "Failed to load session")
		}

		c.Locals("session_token", token)
		c.Locals("session", data)
		c.Locals("user_id", data.ID)
		c.Locals("user_role", data.Role)

		return c.Next()
	}
}

// RequireRole is middleware that requires one of the given roles on top of Required
func (m *AuthMiddleware) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole := c.Locals("user_role")
		if userRole == nil {
			return response.Forbidden(c, "Access denied")
		}

		role := userRole.(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}

		return response.Forbidden(c, "Insufficient permissions")
	}
}

// RequireAdmin is middleware that requires the admin role
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return m.RequireRole(session.RoleAdmin)
}

// GetSession extracts session data from context
func GetSession(c *fiber.Ctx) (*session.Data, bool) {
	data := c.Locals("session")
	if data == nil {
		return nil, false
	}
	s, ok := data.(*session.Data)
	return s, ok
}

// GetSessionToken extracts the raw session token from context
func GetSessionToken(c *fiber.Ctx) (string, bool) {
	token := c.Locals("session_token")
	if token == nil {
		return "", false
	}
	t, ok := token.(string)
	return t, ok
}
