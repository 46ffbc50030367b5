package subjects

import (
	"brightwood-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSubjectsRoutes(app *fiber.App) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetSubjectsAPI)      // Get all subjects with schedules
	api.Get("/:id", GetSubjectAPI)    // Get single subject (code or object ID)
	api.Post("/", CreateSubjectAPI)   // Create new subject
	api.Put("/:id", UpdateSubjectAPI) // Update subject; replaces schedule wholesale when present
	api.Delete("/:id", DeleteSubjectAPI)
}
