package dashboard

import (
	"log"

	"brightwood-schools/app/config"
	"brightwood-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStatsAPI serves the current snapshot. If the refresher has not
// run yet (first request right after boot), it computes one inline.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats := Current()
	if stats == nil {
		var err error
		stats, err = Refresh(config.GetDB())
		if err != nil {
			log.Printf("Error computing dashboard stats: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard statistics"})
		}
	}

	return c.JSON(fiber.Map{"data": stats})
}

// SetupDashboardRoutes registers the dashboard endpoints.
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard", auth.AuthMiddleware)

	api.Get("/stats", GetDashboardStatsAPI)
}
