package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbanmaid/urbanmaid/controllers"
	"github.com/urbanmaid/urbanmaid/middleware"
)

// SetupBookingRoutes configures the booking lifecycle routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/booking", middleware.Protected())

	// User-side booking management
	booking.Get("/", middleware.RequireRole("user"), controllers.ListMyBookings)
	booking.Get("/my-bookings", middleware.RequireRole("user"), controllers.ListMyBookings)
	booking.Get("/create/:helperId", middleware.RequireRole("user"), controllers.GetBookingForm)
	booking.Post("/", middleware.RequireRole("user"), controllers.CreateBooking)
	booking.Get("/confirmation", middleware.RequireRole("user"), controllers.GetLatestConfirmation)
	booking.Get("/confirmation/:bookingId", middleware.RequireRole("user"), controllers.GetBookingConfirmation)
	booking.Post("/confirm", middleware.RequireRole("user"), controllers.ConfirmBooking)
	booking.Post("/:bookingId/cancel", middleware.RequireRole("user"), controllers.CancelBooking)

	// Helper-side transitions; ownership is checked in the handler so admins
	// can also act on any booking
	booking.Post("/:bookingId/accept", controllers.AcceptBooking)
	booking.Post("/:bookingId/reject", controllers.RejectBooking)

	// Admin status override, still bound by the transition table
	booking.Patch("/:bookingId/status", middleware.RequireRole("admin"), controllers.UpdateBookingStatus)
}
