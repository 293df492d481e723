package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/urbanmaid/urbanmaid/db"
	"github.com/urbanmaid/urbanmaid/models"
	"github.com/urbanmaid/urbanmaid/utils"
)

// GetBookingForm returns the data the booking form needs for one helper.
func GetBookingForm(c *fiber.Ctx) error {
	helperID, err := c.ParamsInt("helperId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid helper ID"})
	}

	var helper models.Helper
	if err := db.DB.First(&helper, helperID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Helper not found",
			Error:   err.Error(),
		})
	}
	if !helper.IsProfileComplete() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Helper profile incomplete. Cannot book.",
		})
	}

	helper.Password = ""
	return c.JSON(fiber.Map{"helper": helper})
}

type createBookingInput struct {
	HelperID     uint   `json:"helper_id" form:"helper_id"`
	BookingDate  string `json:"booking_date" form:"booking_date"` // "2006-01-02"
	StartHour    int    `json:"start_hour" form:"start_hour"`
	StartMinute  int    `json:"start_minute" form:"start_minute"`
	AMPM         string `json:"ampm" form:"ampm"`
	Duration     int    `json:"duration" form:"duration"`
	Street       string `json:"street" form:"street"`
	Area         string `json:"area" form:"area"`
	City         string `json:"city" form:"city"`
	Pincode      string `json:"pincode" form:"pincode"`
	Instructions string `json:"instructions" form:"instructions"`
}

// CreateBooking books a helper for the logged-in user. All checks and both
// writes (booking row, helper availability) happen in one transaction.
func CreateBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(createBookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}

	bookingDate, err := time.Parse("2006-01-02", input.BookingDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	booking, err := models.CreateBooking(db.DB, userID, models.BookingInput{
		HelperID:     input.HelperID,
		BookingDate:  bookingDate,
		StartHour:    input.StartHour,
		StartMinute:  input.StartMinute,
		AMPM:         input.AMPM,
		Duration:     input.Duration,
		Street:       input.Street,
		Area:         input.Area,
		City:         input.City,
		Pincode:      input.Pincode,
		Instructions: input.Instructions,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrHelperNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Helper not found"})
		case errors.Is(err, models.ErrHelperNotAvailable):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Helper not available"})
		case errors.Is(err, models.ErrProfileIncomplete):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Helper profile is incomplete. Cannot book."})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	go sendBookingConfirmationEmail(booking.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created",
		"booking": booking,
	})
}

// sendBookingConfirmationEmail mails the receipt; delivery failure never
// fails the booking.
func sendBookingConfirmationEmail(bookingID uint) {
	var booking models.Booking
	if err := db.DB.Preload("User").Preload("Helper").First(&booking, bookingID).Error; err != nil {
		log.Printf("confirmation email: failed to load booking %d: %v", bookingID, err)
		return
	}

	subject := fmt.Sprintf("Booking Confirmed - %s", booking.Helper.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking is confirmed.</p>
		<ul>
			<li><strong>Helper:</strong> %s (%s)</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>Duration:</strong> %d hour(s)</li>
			<li><strong>Total Amount:</strong> ₹%.2f</li>
		</ul>
		<p>Team UrbanMaid</p>
	`, booking.User.Name, booking.Helper.Name, booking.Helper.Category,
		booking.BookingDate.Format("02 January 2006"),
		booking.StartTime, booking.Duration, booking.TotalAmount)

	if err := utils.SendEmail(booking.User.Email, subject, body); err != nil {
		log.Printf("confirmation email: failed to send for booking %d: %v", bookingID, err)
	}
}

// GetBookingConfirmation returns the receipt; only the booking's owner may
// see it.
func GetBookingConfirmation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	bookingID, err := c.ParamsInt("bookingId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking models.Booking
	if err := db.DB.Preload("Helper").Preload("User").First(&booking, bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied for this booking"})
	}

	booking.Helper.Password = ""
	booking.User.Password = ""
	return c.JSON(fiber.Map{"booking": booking})
}

// GetLatestConfirmation returns the user's most recent booking receipt.
func GetLatestConfirmation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var booking models.Booking
	err := db.DB.Preload("Helper").Preload("User").
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&booking).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No recent booking"})
	}

	booking.Helper.Password = ""
	booking.User.Password = ""
	return c.JSON(fiber.Map{"booking": booking})
}

// ListMyBookings returns the user's bookings, newest first.
func ListMyBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	bookings, err := models.BookingsForUser(db.DB, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Could not load bookings",
			Error:   err.Error(),
		})
	}
	for i := range bookings {
		bookings[i].Helper.Password = ""
	}
	return c.JSON(fiber.Map{"bookings": bookings})
}

// CancelBooking cancels the user's own booking and frees the helper.
func CancelBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	bookingID, err := c.ParamsInt("bookingId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return booking.Cancel(tx, userID)
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotBookingOwner):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Booking access denied"})
		case errors.Is(err, models.ErrAlreadyCancelled):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Already cancelled"})
		case errors.Is(err, models.ErrBookingCompleted):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Completed booking"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not cancel booking"})
	}

	return c.JSON(fiber.Map{
		"message": "Booking cancelled",
		"booking": booking,
	})
}

// transitionBooking loads a booking, checks the acting identity against it
// and moves it through the transition table.
func transitionBooking(c *fiber.Ctx, newStatus models.BookingStatus) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(string)

	bookingID, err := c.ParamsInt("bookingId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	// Helpers act on their own bookings; admins may act on any.
	if role != "helper" && role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Access denied. Only helpers can update booking status.",
		})
	}
	if role == "helper" && booking.HelperID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Booking access denied"})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return booking.UpdateStatus(tx, newStatus)
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Booking %s", newStatus),
		"booking": booking,
	})
}

// AcceptBooking moves a pending booking to accepted.
func AcceptBooking(c *fiber.Ctx) error {
	return transitionBooking(c, models.StatusAccepted)
}

// RejectBooking moves a pending booking to rejected and frees the helper.
func RejectBooking(c *fiber.Ctx) error {
	return transitionBooking(c, models.StatusRejected)
}

// ConfirmBooking lets the owner confirm an accepted booking.
func ConfirmBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input struct {
		BookingID uint `json:"booking_id" form:"booking_id"`
	}
	if err := c.BodyParser(&input); err != nil || input.BookingID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Booking ID is required"})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, input.BookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Booking access denied"})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return booking.UpdateStatus(tx, models.StatusConfirmed)
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Booking confirmed",
		"booking": booking,
	})
}

// UpdateBookingStatus is the admin path: any table-legal transition.
func UpdateBookingStatus(c *fiber.Ctx) error {
	bookingID, err := c.ParamsInt("bookingId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var input struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse request body"})
	}

	newStatus := models.BookingStatus(input.Status)
	switch newStatus {
	case models.StatusAccepted, models.StatusRejected, models.StatusConfirmed,
		models.StatusCancelled, models.StatusCompleted:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status. Must be 'accepted', 'rejected', 'confirmed', 'cancelled' or 'completed'.",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return booking.UpdateStatus(tx, newStatus)
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Booking status updated",
		"booking": booking,
	})
}
