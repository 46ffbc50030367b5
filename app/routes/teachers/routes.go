package teachers

import (
	"brightwood-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupTeachersRoutes registers the teacher endpoints.
func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/teachers", auth.AuthMiddleware)

	api.Get("/", GetTeachersAPI)
	api.Get("/:key", GetTeacherAPI)
	api.Post("/", CreateTeacherAPI)
	api.Put("/:key", UpdateTeacherAPI)
	api.Delete("/:key", auth.RequireAdmin, DeleteTeacherAPI)
}
