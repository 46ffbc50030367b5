package exams

import (
	"brightwood-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupExamsRoutes registers the exam and result endpoints.
func SetupExamsRoutes(app *fiber.App) {
	api := app.Group("/api/exams", auth.AuthMiddleware)

	api.Get("/", GetExamsAPI)
	api.Get("/:key", GetExamAPI)
	api.Post("/", CreateExamAPI)
	api.Put("/:key", UpdateExamAPI)
	api.Delete("/:key", auth.RequireAdmin, DeleteExamAPI)

	api.Get("/:key/results", GetResultsAPI)
	api.Post("/:key/results", SaveResultsAPI)
}
