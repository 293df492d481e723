package models

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter.Add(1))
	dbc, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbc.AutoMigrate(&User{}, &Helper{}, &Admin{}, &Booking{}))
	return dbc
}

// seedHelper creates a bookable helper with a complete profile.
func seedHelper(t *testing.T, dbc *gorm.DB, email string) *Helper {
	t.Helper()

	h := &Helper{
		Name:       "Asha Pawar",
		Email:      email,
		Password:   "hashed",
		Phone:      "9876543210",
		Category:   "maid",
		Experience: 4,
		HourlyRate: 100,
		Location: Location{
			Area:    "Andheri",
			City:    "Mumbai",
			Pincode: "400053",
		},
	}
	require.NoError(t, dbc.Create(h).Error)
	return h
}

func seedUser(t *testing.T, dbc *gorm.DB, email string) *User {
	t.Helper()

	u := &User{Name: "Ravi Kumar", Email: email, Password: "hashed"}
	require.NoError(t, dbc.Create(u).Error)
	return u
}

func validInput(helperID uint) BookingInput {
	return BookingInput{
		HelperID:    helperID,
		BookingDate: time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
		StartHour:   5,
		StartMinute: 30,
		AMPM:        "PM",
		Duration:    2,
		Street:      "12 MG Road",
		City:        "Mumbai",
		Pincode:     "400001",
	}
}
