package attendance

import (
	"brightwood-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAttendanceRoutes registers the attendance endpoints.
func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance", auth.AuthMiddleware)

	api.Get("/", GetAttendanceAPI)
	api.Get("/roster", GetRosterAPI)
	api.Post("/", CreateAttendanceAPI)
	api.Put("/:id", UpdateAttendanceAPI)
}
