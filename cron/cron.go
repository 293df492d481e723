package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/urbanmaid/urbanmaid/db"
	"github.com/urbanmaid/urbanmaid/models"
	"github.com/urbanmaid/urbanmaid/utils"
)

// StartCronJobs starts the scheduler that mails booking reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to catch bookings starting in the next hour
	_, err := c.AddFunc("* * * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders finds confirmed bookings starting in roughly an hour
// and mails the customer.
func sendBookingReminders() {
	now := time.Now().In(utils.IST())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Bookings are stored as a calendar date plus an "HH:MM" start time, so
	// narrow by date in SQL and resolve the exact instant here.
	var bookings []models.Booking
	err := db.DB.Preload("User").Preload("Helper").
		Where("status = ?", models.StatusConfirmed).
		Where("booking_date >= ? AND booking_date < ?", today, today.AddDate(0, 0, 2)).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	for _, booking := range bookings {
		start, err := utils.CombineDateTime(booking.BookingDate, booking.StartTime24)
		if err != nil {
			log.Printf("Booking %d has invalid start time: %v", booking.ID, err)
			continue
		}
		if start.Before(startWindow) || start.After(endWindow) {
			continue
		}

		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Booking - %s", booking.Helper.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your booking scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Helper:</strong> %s (%s)</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>Duration:</strong> %d hour(s)</li>
			<li><strong>Address:</strong> %s, %s</li>
		</ul>
		<p>If you need to cancel, please do so as soon as possible.</p>
		<p>Team UrbanMaid</p>
	`, booking.User.Name, booking.Helper.Name, booking.Helper.Category,
		booking.BookingDate.Format("02 January 2006"),
		booking.StartTime, booking.Duration,
		booking.Address.Street, booking.Address.City)

	return utils.SendEmail(booking.User.Email, subject, body)
}
