package students

import (
	"brightwood-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentsRoutes registers the student endpoints.
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students", auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)
	api.Get("/stats", GetStudentsStatsAPI)
	api.Get("/:key", GetStudentAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:key", UpdateStudentAPI)
	api.Delete("/:key", auth.RequireAdmin, DeleteStudentAPI)
}
