package routes

import (
	"github.com/gofiber/fiber/v2"

	admincontrollers "github.com/urbanmaid/urbanmaid/controllers/admin"
	"github.com/urbanmaid/urbanmaid/middleware"
)

// SetupAdminRoutes configures the moderation panel
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin", middleware.Protected(), middleware.RequireRole("admin"))

	group.Get("/dashboard", admincontrollers.Dashboard)
	group.Post("/helper/:id/approve", admincontrollers.ApproveHelper)
	group.Post("/helper/:id/reject", admincontrollers.RejectHelper)
	group.Post("/delete-user/:userId", admincontrollers.DeleteUser)
	group.Post("/delete-helper/:helperId", admincontrollers.DeleteHelper)
}
