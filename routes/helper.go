package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbanmaid/urbanmaid/controllers"
	helpercontrollers "github.com/urbanmaid/urbanmaid/controllers/helper"
	"github.com/urbanmaid/urbanmaid/middleware"
)

// SetupHelperRoutes configures the public directory and the helper's own
// profile/dashboard routes
func SetupHelperRoutes(app *fiber.App) {
	group := app.Group("/helper")

	// Public directory
	group.Get("/", controllers.ListHelpers)

	// Helper-only routes
	group.Get("/profile", middleware.Protected(), middleware.RequireRole("helper"), helpercontrollers.GetProfile)
	group.Post("/profile", middleware.Protected(), middleware.RequireRole("helper"), helpercontrollers.CompleteProfile)
	group.Get("/dashboard", middleware.Protected(), middleware.RequireRole("helper"), helpercontrollers.Dashboard)
	group.Post("/delete-booking/:id", middleware.Protected(), middleware.RequireRole("helper"), helpercontrollers.DeleteBooking)
}
