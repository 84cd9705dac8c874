package handlers

import (
	"time"

	"github.com/autoassign/api/database"
	"github.com/gofiber/fiber/v2"
)

// HandleCheckHealth reports service status, database reachability and
// whether the completion API key is configured.
func HandleCheckHealth(c *fiber.Ctx, store database.Storage, groqConfigured bool) error {
	status := "ok"
	dbStatus := "ok"
	if err := store.HealthCheck(); err != nil {
		status = "degraded"
		dbStatus = "unreachable"
	}

	return c.JSON(fiber.Map{
		"status":          status,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"database":        dbStatus,
		"groq_configured": groqConfigured,
	})
}
