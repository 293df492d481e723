package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/urbanmaid/urbanmaid/db"
	"github.com/urbanmaid/urbanmaid/models"
	"github.com/urbanmaid/urbanmaid/utils"
)

// Dashboard lists the helper's bookings. A helper who has not completed
// their profile gets a redirect signal to the profile step instead.
func Dashboard(c *fiber.Ctx) error {
	helperID := c.Locals("userID").(uint)

	var h models.Helper
	if err := db.DB.First(&h, helperID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Helper not found"})
	}

	if !h.IsProfileComplete() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":    "profile_incomplete",
			"redirect": "/helper/profile",
		})
	}

	bookings, err := models.BookingsForHelper(db.DB, helperID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Could not load dashboard.",
			Error:   err.Error(),
		})
	}
	for i := range bookings {
		bookings[i].User.Password = ""
	}

	return c.JSON(fiber.Map{
		"availability": h.Availability,
		"bookings":     bookings,
	})
}

// DeleteBooking removes one of the helper's own bookings from the system.
func DeleteBooking(c *fiber.Ctx) error {
	helperID := c.Locals("userID").(uint)

	bookingID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	if err := models.DeleteBooking(db.DB, uint(bookingID), helperID); err != nil {
		switch {
		case errors.Is(err, models.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		case errors.Is(err, models.ErrNotBookingHelper):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You cannot delete this booking."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error deleting booking. Please try again.",
		})
	}

	return c.JSON(fiber.Map{"message": "Booking deleted successfully."})
}
