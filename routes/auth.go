package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbanmaid/urbanmaid/controllers"
	"github.com/urbanmaid/urbanmaid/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.Me)
	auth.Get("/logout", middleware.Protected(), controllers.Logout)
}
