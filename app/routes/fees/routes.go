package fees

import (
	"brightwood-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupFeesRoutes registers the fee endpoints.
func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees", auth.AuthMiddleware)

	api.Get("/", GetFeesAPI)
	api.Get("/:key", GetFeeAPI)
	api.Post("/", CreateFeeAPI)
	api.Put("/:key", UpdateFeeAPI)
	api.Post("/:key/pay", PayFeeAPI)
	api.Delete("/:key", auth.RequireAdmin, DeleteFeeAPI)
}
