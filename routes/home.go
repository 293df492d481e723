package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbanmaid/urbanmaid/controllers"
)

// SetupHomeRoutes configures the public search route
func SetupHomeRoutes(app *fiber.App) {
	app.Get("/search", controllers.SearchHelpers)
}
