package masterdata

import (
	"brightwood-schools/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupMasterDataRoutes(app *fiber.App) {
	api := app.Group("/api/master-data")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetMasterDataAPI) // ?type=room
	api.Post("/", auth.RequireAdmin, CreateMasterDataAPI)
	api.Put("/:id", auth.RequireAdmin, UpdateMasterDataAPI)
	api.Delete("/:id", auth.RequireAdmin, DeleteMasterDataAPI)

	// Time slot management; indexes stay contiguous from 0
	api.Post("/:id/time-slots", auth.RequireAdmin, AddTimeSlotAPI)
	api.Delete("/:id/time-slots/:index", auth.RequireAdmin, RemoveTimeSlotAPI)
}
