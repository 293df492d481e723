package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/urbanmaid/urbanmaid/utils"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

var (
	ErrHelperNotFound     = errors.New("helper not found")
	ErrHelperNotAvailable = errors.New("helper not available")
	ErrProfileIncomplete  = errors.New("helper profile is incomplete")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotBookingOwner    = errors.New("booking belongs to another user")
	ErrNotBookingHelper   = errors.New("booking belongs to another helper")
	ErrAlreadyCancelled   = errors.New("booking already cancelled")
	ErrBookingCompleted   = errors.New("completed booking cannot be cancelled")
)

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

// Address is snapshotted onto the booking at creation and never rewritten.
type Address struct {
	Street  string `json:"street"`
	Area    string `json:"area"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

type Booking struct {
	gorm.Model
	UserID              uint          `json:"user_id"`
	User                User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	HelperID            uint          `json:"helper_id"`
	Helper              Helper        `json:"helper,omitempty" gorm:"foreignKey:HelperID"`
	BookingDate         time.Time     `json:"booking_date"`
	StartTime           string        `json:"start_time"`    // "hh:mm AM/PM" display form
	StartTime24         string        `json:"start_time_24"` // canonical "HH:MM"
	Duration            int           `json:"duration"`      // hours
	TotalAmount         float64       `json:"total_amount"`  // HourlyRate * Duration at creation
	Address             Address       `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	SpecialInstructions string        `json:"special_instructions"`
	Status              BookingStatus `json:"status"`
	PaymentStatus       PaymentStatus `json:"payment_status"`
	CancelledAt         *time.Time    `json:"cancelled_at,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
	return nil
}

// CanTransitionTo is the single transition table every status write goes
// through. Bookings are created directly in "confirmed"; the pending half
// covers bookings seeded for helper acceptance.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusAccepted || next == StatusRejected || next == StatusCancelled
	case StatusAccepted:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		// rejected, cancelled and completed are terminal
		return false
	}
}

// freesHelper reports whether entering the status hands the helper back to
// the directory.
func (s BookingStatus) freesHelper() bool {
	return s == StatusCancelled || s == StatusCompleted || s == StatusRejected
}

// UpdateStatus moves the booking through the transition table and keeps the
// helper's availability in lock-step. Both writes run on the caller's tx so
// the pair cannot be torn apart by a crash between them.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if !b.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", b.Status, newStatus)
	}

	b.Status = newStatus
	if newStatus == StatusCancelled {
		now := time.Now()
		b.CancelledAt = &now
	}
	if err := tx.Save(b).Error; err != nil {
		return err
	}

	if newStatus.freesHelper() {
		return tx.Model(&Helper{}).
			Where("id = ?", b.HelperID).
			Update("availability", AvailabilityAvailable).Error
	}
	return nil
}

// Cancel is the user-facing cancellation: only the owner may cancel, and a
// booking that already ended (cancelled or completed) refuses a second one.
func (b *Booking) Cancel(tx *gorm.DB, actingUserID uint) error {
	if b.UserID != actingUserID {
		return ErrNotBookingOwner
	}
	switch b.Status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrBookingCompleted
	}
	return b.UpdateStatus(tx, StatusCancelled)
}

// BookingInput carries the validated creation form.
type BookingInput struct {
	HelperID     uint
	BookingDate  time.Time
	StartHour    int
	StartMinute  int
	AMPM         string
	Duration     int
	Street       string
	Area         string
	City         string
	Pincode      string
	Instructions string
}

func (in *BookingInput) Validate() error {
	if in.HelperID == 0 || in.BookingDate.IsZero() ||
		strings.TrimSpace(in.Street) == "" || strings.TrimSpace(in.City) == "" {
		return errors.New("missing required fields")
	}
	if in.StartHour < 1 || in.StartHour > 12 || in.StartMinute < 0 || in.StartMinute > 59 {
		return errors.New("invalid time")
	}
	if in.AMPM != "AM" && in.AMPM != "PM" {
		return errors.New("invalid time")
	}
	if in.Duration < 1 {
		return errors.New("duration must be at least one hour")
	}
	if p := strings.TrimSpace(in.Pincode); p != "" && !pincodePattern.MatchString(p) {
		return errors.New("pincode must be 6 digits")
	}
	return nil
}

// CreateBooking validates the input, takes the helper's availability slot and
// persists the booking, all inside one transaction. Taking the slot is a
// conditional update guarded by the expected prior state, so two requests
// racing for the same helper cannot both win.
func CreateBooking(dbc *gorm.DB, userID uint, in BookingInput) (*Booking, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var booking *Booking
	err := dbc.Transaction(func(tx *gorm.DB) error {
		var helper Helper
		if err := tx.First(&helper, in.HelperID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHelperNotFound
			}
			return err
		}
		if !helper.IsProfileComplete() {
			return ErrProfileIncomplete
		}

		res := tx.Model(&Helper{}).
			Where("id = ? AND availability = ?", helper.ID, AvailabilityAvailable).
			Update("availability", AvailabilityBusy)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrHelperNotAvailable
		}

		area := strings.TrimSpace(in.Area)
		if area == "" {
			area = "Not specified"
		}
		pincode := strings.TrimSpace(in.Pincode)
		if pincode == "" {
			pincode = "Not specified"
		}

		b := &Booking{
			UserID:      userID,
			HelperID:    helper.ID,
			BookingDate: in.BookingDate,
			StartTime:   utils.DisplayTime(in.StartHour, in.StartMinute, in.AMPM),
			StartTime24: utils.To24Hour(in.StartHour, in.StartMinute, in.AMPM),
			Duration:    in.Duration,
			TotalAmount: helper.HourlyRate * float64(in.Duration),
			Address: Address{
				Street:  strings.TrimSpace(in.Street),
				Area:    area,
				City:    strings.TrimSpace(in.City),
				Pincode: pincode,
			},
			SpecialInstructions: strings.TrimSpace(in.Instructions),
			Status:              StatusConfirmed,
			PaymentStatus:       PaymentPending,
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// BookingsForUser returns the user's bookings, newest first.
func BookingsForUser(dbc *gorm.DB, userID uint) ([]Booking, error) {
	var bookings []Booking
	err := dbc.Preload("Helper").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}

func BookingsForHelper(dbc *gorm.DB, helperID uint) ([]Booking, error) {
	var bookings []Booking
	err := dbc.Preload("User").
		Where("helper_id = ?", helperID).
		Find(&bookings).Error
	return bookings, err
}

// DeleteBooking permanently removes a booking from the helper's dashboard.
// Only the assigned helper may delete; no status precondition applies.
func DeleteBooking(dbc *gorm.DB, bookingID, actingHelperID uint) error {
	var booking Booking
	if err := dbc.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if booking.HelperID != actingHelperID {
		return ErrNotBookingHelper
	}
	return dbc.Unscoped().Delete(&booking).Error
}
