package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCanTransitionTo(t *testing.T) {
	allowed := map[BookingStatus][]BookingStatus{
		StatusPending:   {StatusAccepted, StatusRejected, StatusCancelled},
		StatusAccepted:  {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled},
		StatusRejected:  {},
		StatusCancelled: {},
		StatusCompleted: {},
	}
	all := []BookingStatus{
		StatusPending, StatusAccepted, StatusRejected,
		StatusConfirmed, StatusCancelled, StatusCompleted,
	}

	for from, nexts := range allowed {
		legal := map[BookingStatus]bool{}
		for _, n := range nexts {
			legal[n] = true
		}
		for _, to := range all {
			assert.Equal(t, legal[to], from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestCreateBooking(t *testing.T) {
	dbc := newTestDB(t)
	helper := seedHelper(t, dbc, "asha@example.com")
	user := seedUser(t, dbc, "ravi@example.com")

	booking, err := CreateBooking(dbc, user.ID, validInput(helper.ID))
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, booking.Status)
	assert.Equal(t, PaymentPending, booking.PaymentStatus)
	assert.Equal(t, float64(200), booking.TotalAmount) // rate 100 x 2h
	assert.Equal(t, "05:30 PM", booking.StartTime)
	assert.Equal(t, "17:30", booking.StartTime24)
	assert.Equal(t, "Not specified", booking.Address.Area)
	assert.Equal(t, "400001", booking.Address.Pincode)

	var reloaded Helper
	require.NoError(t, dbc.First(&reloaded, helper.ID).Error)
	assert.Equal(t, AvailabilityBusy, reloaded.Availability)
}

func TestCreateBookingMidnightNoon(t *testing.T) {
	dbc := newTestDB(t)
	user := seedUser(t, dbc, "ravi@example.com")

	h1 := seedHelper(t, dbc, "h1@example.com")
	in := validInput(h1.ID)
	in.StartHour = 12
	in.AMPM = "AM"
	booking, err := CreateBooking(dbc, user.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "00:30", booking.StartTime24)

	h2 := seedHelper(t, dbc, "h2@example.com")
	in = validInput(h2.ID)
	in.StartHour = 12
	in.AMPM = "PM"
	booking, err = CreateBooking(dbc, user.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "12:30", booking.StartTime24)
}

func TestCreateBookingHelperBusy(t *testing.T) {
	dbc := newTestDB(t)
	helper := seedHelper(t, dbc, "asha@example.com")
	user := seedUser(t, dbc, "ravi@example.com")

	_, err := CreateBooking(dbc, user.ID, validInput(helper.ID))
	require.NoError(t, err)

	// The helper is busy now; a second booking must not go through.
	_, err = CreateBooking(dbc, user.ID, validInput(helper.ID))
	assert.ErrorIs(t, err, ErrHelperNotAvailable)

	var count int64
	require.NoError(t, dbc.Model(&Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateBookingProfileIncomplete(t *testing.T) {
	dbc := newTestDB(t)
	user := seedUser(t, dbc, "ravi@example.com")

	incomplete := &Helper{Name: "New Helper", Email: "new@example.com", Password: "hashed"}
	require.NoError(t, dbc.Create(incomplete).Error)

	_, err := CreateBooking(dbc, user.ID, validInput(incomplete.ID))
	assert.ErrorIs(t, err, ErrProfileIncomplete)

	var count int64
	require.NoError(t, dbc.Model(&Booking{}).Count(&count).Error)
	assert.Zero(t, count)

	var reloaded Helper
	require.NoError(t, dbc.First(&reloaded, incomplete.ID).Error)
	assert.Equal(t, AvailabilityAvailable, reloaded.Availability)
}

func TestCreateBookingHelperMissing(t *testing.T) {
	dbc := newTestDB(t)
	user := seedUser(t, dbc, "ravi@example.com")

	_, err := CreateBooking(dbc, user.ID, validInput(999))
	assert.ErrorIs(t, err, ErrHelperNotFound)
}

func TestCreateBookingValidation(t *testing.T) {
	dbc := newTestDB(t)
	helper := seedHelper(t, dbc, "asha@example.com")
	user := seedUser(t, dbc, "ravi@example.com")

	cases := []struct {
		name   string
		mutate func(*BookingInput)
	}{
		{"hour too low", func(in *BookingInput) { in.StartHour = 0 }},
		{"hour too high", func(in *BookingInput) { in.StartHour = 13 }},
		{"minute negative", func(in *BookingInput) { in.StartMinute = -1 }},
		{"minute too high", func(in *BookingInput) { in.StartMinute = 60 }},
		{"bad ampm", func(in *BookingInput) { in.AMPM = "XM" }},
		{"short pincode", func(in *BookingInput) { in.Pincode = "1234" }},
		{"non-numeric pincode", func(in *BookingInput) { in.Pincode = "40000a" }},
		{"zero duration", func(in *BookingInput) { in.Duration = 0 }},
		{"missing street", func(in *BookingInput) { in.Street = "" }},
		{"missing city", func(in *BookingInput) { in.City = "  " }},
		{"missing date", func(in *BookingInput) { in.BookingDate = time.Time{} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput(helper.ID)
			tc.mutate(&in)

			_, err := CreateBooking(dbc, user.ID, in)
			assert.Error(t, err)
		})
	}

	// None of the rejected inputs may have written anything.
	var count int64
	require.NoError(t, dbc.Model(&Booking{}).Count(&count).Error)
	assert.Zero(t, count)

	var reloaded Helper
	require.NoError(t, dbc.First(&reloaded, helper.ID).Error)
	assert.Equal(t, AvailabilityAvailable, reloaded.Availability)
}

func TestCreateBookingOptionalPincode(t *testing.T) {
	dbc := newTestDB(t)
	helper := seedHelper(t, dbc, "asha@example.com")
	user := seedUser(t, dbc, "ravi@example.com")

	in := validInput(helper.ID)
	in.Pincode = ""
	booking, err := CreateBooking(dbc, user.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Not specified", booking.Address.Pincode)
}

func TestTotalAmountSnapshot(t *testing.T) {
	dbc := newTestDB(t)
	helper := seedHelper(t, dbc, "asha@example.com")
	user := seedUser(t, dbc, "ravi@example.com")

	booking, err := CreateBooking(dbc, user.ID, validInput(helper.ID))
	require.NoError(t, err)
	require.Equal(t, float64(200), booking.TotalAmount)

	// A later rate change must not touch existing bookings.
	require.NoError(t, dbc.Model(&Helper{}).
		Where("id = ?", helper.ID).
		Update("hourly_rate", 500).Error)

	var reloaded Booking
	require.NoError(t, dbc.First(&reloaded, booking.ID).Error)
	assert.Equal(t, float64(200), reloaded.TotalAmount)
}

func TestCancel(t *testing.T) {
	dbc := newTestDB(t)
	helper := seedHelper(t, dbc, "asha@example.com")
	user := seedUser(t, dbc, "ravi@example.com")
	stranger := seedUser(t, dbc, "other@example.com")

	booking, err := CreateBooking(dbc, user.ID, validInput(helper.ID))
	require.NoError(t, err)

	// Ownership is checked before any state change.
	err = dbc.Transaction(func(tx *gorm.DB) error { return booking.Cancel(tx, stranger.ID) })
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	err = dbc.Transaction(func(tx *gorm.DB) error { return booking.Cancel(tx, user.ID) })
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, booking.Status)
	assert.NotNil(t, booking.CancelledAt)

	var reloaded Helper
	require.NoError(t, dbc.First(&reloaded, helper.ID).Error)
	assert.Equal(t, AvailabilityAvailable, reloaded.Availability)

	// A second cancel refuses.
	err = dbc.Transaction(func(tx *gorm.DB) error { return booking.Cancel(tx, user.ID) })
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelCompletedBooking(t *testing.T) {
	dbc := newTestDB(t)
	helper := seedHelper(t, dbc, "asha@example.com")
	user := seedUser(t, dbc, "ravi@example.com")

	booking, err := CreateBooking(dbc, user.ID, validInput(helper.ID))
	require.NoError(t, err)

	err = dbc.Transaction(func(tx *gorm.DB) error {
		return booking.UpdateStatus(tx, StatusCompleted)
	})
	require.NoError(t, err)

	// Completion frees the helper.
	var reloaded Helper
	require.NoError(t, dbc.First(&reloaded, helper.ID).Error)
	assert.Equal(t, AvailabilityAvailable, reloaded.Availability)

	err = dbc.Transaction(func(tx *gorm.DB) error { return booking.Cancel(tx, user.ID) })
	assert.ErrorIs(t, err, ErrBookingCompleted)
}

func TestUpdateStatusRejectsIllegalTransitions(t *testing.T) {
	dbc := newTestDB(t)
	helper := seedHelper(t, dbc, "asha@example.com")
	user := seedUser(t, dbc, "ravi@example.com")

	booking, err := CreateBooking(dbc, user.ID, validInput(helper.ID))
	require.NoError(t, err)

	// confirmed cannot go back to pending or accepted
	for _, to := range []BookingStatus{StatusPending, StatusAccepted, StatusRejected} {
		err := dbc.Transaction(func(tx *gorm.DB) error {
			return booking.UpdateStatus(tx, to)
		})
		assert.Error(t, err, "confirmed -> %s should be rejected", to)
	}
	assert.Equal(t, StatusConfirmed, booking.Status)
}

func TestRejectFreesHelper(t *testing.T) {
	dbc := newTestDB(t)
	helper := seedHelper(t, dbc, "asha@example.com")
	user := seedUser(t, dbc, "ravi@example.com")

	// Seed a pending booking against a busy helper, as if awaiting
	// acceptance.
	require.NoError(t, dbc.Model(&Helper{}).
		Where("id = ?", helper.ID).
		Update("availability", AvailabilityBusy).Error)
	booking := &Booking{
		UserID:      user.ID,
		HelperID:    helper.ID,
		BookingDate: time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
		StartTime:   "09:00 AM",
		StartTime24: "09:00",
		Duration:    1,
		TotalAmount: 100,
		Status:      StatusPending,
	}
	require.NoError(t, dbc.Create(booking).Error)

	err := dbc.Transaction(func(tx *gorm.DB) error {
		return booking.UpdateStatus(tx, StatusRejected)
	})
	require.NoError(t, err)

	var reloaded Helper
	require.NoError(t, dbc.First(&reloaded, helper.ID).Error)
	assert.Equal(t, AvailabilityAvailable, reloaded.Availability)
}

func TestAcceptThenConfirmKeepsHelperBusy(t *testing.T) {
	dbc := newTestDB(t)
	helper := seedHelper(t, dbc, "asha@example.com")
	user := seedUser(t, dbc, "ravi@example.com")

	require.NoError(t, dbc.Model(&Helper{}).
		Where("id = ?", helper.ID).
		Update("availability", AvailabilityBusy).Error)
	booking := &Booking{
		UserID:      user.ID,
		HelperID:    helper.ID,
		BookingDate: time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
		StartTime:   "09:00 AM",
		StartTime24: "09:00",
		Duration:    1,
		TotalAmount: 100,
		Status:      StatusPending,
	}
	require.NoError(t, dbc.Create(booking).Error)

	for _, to := range []BookingStatus{StatusAccepted, StatusConfirmed} {
		err := dbc.Transaction(func(tx *gorm.DB) error {
			return booking.UpdateStatus(tx, to)
		})
		require.NoError(t, err)

		var reloaded Helper
		require.NoError(t, dbc.First(&reloaded, helper.ID).Error)
		assert.Equal(t, AvailabilityBusy, reloaded.Availability)
	}
}

func TestDeleteBooking(t *testing.T) {
	dbc := newTestDB(t)
	helper := seedHelper(t, dbc, "asha@example.com")
	other := seedHelper(t, dbc, "other@example.com")
	user := seedUser(t, dbc, "ravi@example.com")

	booking, err := CreateBooking(dbc, user.ID, validInput(helper.ID))
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteBooking(dbc, booking.ID, other.ID), ErrNotBookingHelper)
	assert.ErrorIs(t, DeleteBooking(dbc, 999, helper.ID), ErrBookingNotFound)

	require.NoError(t, DeleteBooking(dbc, booking.ID, helper.ID))

	var count int64
	require.NoError(t, dbc.Unscoped().Model(&Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBookingsForUserNewestFirst(t *testing.T) {
	dbc := newTestDB(t)
	helper := seedHelper(t, dbc, "asha@example.com")
	user := seedUser(t, dbc, "ravi@example.com")

	older := &Booking{
		Model:       gorm.Model{CreatedAt: time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)},
		UserID:      user.ID,
		HelperID:    helper.ID,
		BookingDate: time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   "09:00 AM",
		StartTime24: "09:00",
		Duration:    1,
		TotalAmount: 100,
		Status:      StatusCompleted,
	}
	newer := &Booking{
		Model:       gorm.Model{CreatedAt: time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)},
		UserID:      user.ID,
		HelperID:    helper.ID,
		BookingDate: time.Date(2026, time.August, 21, 0, 0, 0, 0, time.UTC),
		StartTime:   "09:00 AM",
		StartTime24: "09:00",
		Duration:    1,
		TotalAmount: 100,
		Status:      StatusConfirmed,
	}
	require.NoError(t, dbc.Create(older).Error)
	require.NoError(t, dbc.Create(newer).Error)

	bookings, err := BookingsForUser(dbc, user.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, newer.ID, bookings[0].ID)
	assert.Equal(t, older.ID, bookings[1].ID)
	assert.Equal(t, helper.Name, bookings[0].Helper.Name)
}
