package classes

import (
	"brightwood-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupClassesRoutes registers the class endpoints.
func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes", auth.AuthMiddleware)

	api.Get("/", GetClassesAPI)
	api.Get("/:key", GetClassAPI)
	api.Post("/", auth.RequireAdmin, CreateClassAPI)
	api.Put("/:key", auth.RequireAdmin, UpdateClassAPI)
	api.Delete("/:key", auth.RequireAdmin, DeleteClassAPI)
}
