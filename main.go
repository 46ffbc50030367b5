package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"brightwood-schools/app/config"
	"brightwood-schools/app/database"
	"brightwood-schools/app/routes/attendance"
	"brightwood-schools/app/routes/auth"
	"brightwood-schools/app/routes/classes"
	"brightwood-schools/app/routes/dashboard"
	"brightwood-schools/app/routes/exams"
	"brightwood-schools/app/routes/fees"
	"brightwood-schools/app/routes/masterdata"
	"brightwood-schools/app/routes/students"
	"brightwood-schools/app/routes/subjects"
	"brightwood-schools/app/routes/teachers"
	"brightwood-schools/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func main() {
	config.Load()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	scheduler := services.StartScheduler(config.GetDB())

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	teachers.SetupTeachersRoutes(app)
	classes.SetupClassesRoutes(app)
	subjects.SetupSubjectsRoutes(app)
	masterdata.SetupMasterDataRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	exams.SetupExamsRoutes(app)
	fees.SetupFeesRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		scheduler.Stop()
		app.Shutdown()
	}()

	log.Println("Server starting on :" + config.AppConfig.AppPort)
	log.Fatal(app.Listen(":" + config.AppConfig.AppPort))
}
