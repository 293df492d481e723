package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbanmaid/urbanmaid/controllers"
)

// SetupCategoryRoutes configures the static catalog routes
func SetupCategoryRoutes(app *fiber.App) {
	category := app.Group("/category")
	category.Get("/", controllers.ListCategories)
	category.Get("/:categoryName", controllers.GetCategoryHelpers)
}
