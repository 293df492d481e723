package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
)

// Location is the helper's service area, filled in during profile completion.
type Location struct {
	Area    string `json:"area"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

type Helper struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Name         string       `json:"name"`
	Email        string       `json:"email" gorm:"unique"`
	Password     string       `json:"password,omitempty"`
	Phone        string       `json:"phone"`
	Category     string       `json:"category"`
	Experience   int          `json:"experience"`
	HourlyRate   float64      `json:"hourly_rate"`
	Location     Location     `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	Description  string       `json:"description" gorm:"size:500"`
	ImageURL     string       `json:"image_url"`
	Rating       float64      `json:"rating"`
	IsVerified   bool         `json:"is_verified"`
	IsActive     bool         `json:"is_active"`
	Availability Availability `json:"availability"`
	Bookings     []Booking    `json:"bookings,omitempty" gorm:"foreignKey:HelperID"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (h *Helper) BeforeCreate(tx *gorm.DB) error {
	if h.Availability == "" {
		h.Availability = AvailabilityAvailable
	}
	return nil
}

// IsProfileComplete reports whether the helper has filled in every field
// required to be bookable. Registration only collects name/email/password;
// the rest arrives through the profile-completion step.
func (h *Helper) IsProfileComplete() bool {
	return h.Phone != "" &&
		h.Category != "" &&
		h.HourlyRate > 0 &&
		h.Location.Area != "" &&
		h.Location.City != "" &&
		h.Location.Pincode != ""
}

// HelpersByCategory returns every helper offering the given category.
// The category must already be validated against the catalog.
func HelpersByCategory(dbc *gorm.DB, category string) ([]Helper, error) {
	var helpers []Helper
	err := dbc.Where("category = ?", category).Find(&helpers).Error
	return helpers, err
}

// SearchHelpers matches helpers whose name contains the query
// (case-insensitive) or whose category equals the query. A trailing "s" is
// stripped before matching so "maids" finds category "maid" and names
// containing "maid". An empty query returns no results rather than the
// whole directory.
func SearchHelpers(dbc *gorm.DB, query string) ([]Helper, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Helper{}, nil
	}

	lowered := strings.ToLower(query)
	singular := strings.TrimSuffix(lowered, "s")

	var helpers []Helper
	err := dbc.
		Where("LOWER(name) LIKE ? OR LOWER(category) IN (?, ?)",
			"%"+singular+"%", lowered, singular).
		Find(&helpers).Error
	return helpers, err
}
