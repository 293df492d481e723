package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeHelper() Helper {
	return Helper{
		Name:       "Asha Pawar",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		Category:   "maid",
		HourlyRate: 150,
		Location: Location{
			Area:    "Andheri",
			City:    "Mumbai",
			Pincode: "400053",
		},
	}
}

func TestIsProfileComplete(t *testing.T) {
	h := completeHelper()
	assert.True(t, h.IsProfileComplete())

	cases := []struct {
		name   string
		mutate func(*Helper)
	}{
		{"no phone", func(h *Helper) { h.Phone = "" }},
		{"no category", func(h *Helper) { h.Category = "" }},
		{"no rate", func(h *Helper) { h.HourlyRate = 0 }},
		{"no area", func(h *Helper) { h.Location.Area = "" }},
		{"no city", func(h *Helper) { h.Location.City = "" }},
		{"no pincode", func(h *Helper) { h.Location.Pincode = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := completeHelper()
			tc.mutate(&h)
			assert.False(t, h.IsProfileComplete())
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c.Slug))
	}
	assert.False(t, ValidCategory("astrologer"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("Maid")) // slugs are lowercase
}

func TestSearchHelpers(t *testing.T) {
	dbc := newTestDB(t)

	maid := completeHelper()
	require.NoError(t, dbc.Create(&maid).Error)

	named := Helper{
		Name: "Maidul Islam", Email: "maidul@example.com",
		Phone: "9000000001", Category: "cook", HourlyRate: 120,
		Location: Location{Area: "Salt Lake", City: "Kolkata", Pincode: "700064"},
	}
	require.NoError(t, dbc.Create(&named).Error)

	driver := Helper{
		Name: "Ravi Singh", Email: "ravi@example.com",
		Phone: "9000000002", Category: "driver", HourlyRate: 200,
		Location: Location{Area: "Baner", City: "Pune", Pincode: "411045"},
	}
	require.NoError(t, dbc.Create(&driver).Error)

	// "maids" strips to "maid": matches the category and the name substring.
	results, err := SearchHelpers(dbc, "maids")
	require.NoError(t, err)
	emails := make([]string, 0, len(results))
	for _, h := range results {
		emails = append(emails, h.Email)
	}
	assert.ElementsMatch(t, []string{"asha@example.com", "maidul@example.com"}, emails)

	// Case-insensitive.
	results, err = SearchHelpers(dbc, "MAID")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Name substring alone.
	results, err = SearchHelpers(dbc, "ravi")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ravi@example.com", results[0].Email)

	// Empty query returns nothing, not everything.
	results, err = SearchHelpers(dbc, "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestHelpersByCategory(t *testing.T) {
	dbc := newTestDB(t)

	maid := completeHelper()
	require.NoError(t, dbc.Create(&maid).Error)

	cook := Helper{
		Name: "Sunil Kumar", Email: "sunil@example.com",
		Phone: "9000000003", Category: "cook", HourlyRate: 180,
		Location: Location{Area: "Indiranagar", City: "Bengaluru", Pincode: "560038"},
	}
	require.NoError(t, dbc.Create(&cook).Error)

	results, err := HelpersByCategory(dbc, "cook")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "sunil@example.com", results[0].Email)

	results, err = HelpersByCategory(dbc, "plumber")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestHelperDefaultsAvailable(t *testing.T) {
	dbc := newTestDB(t)

	h := Helper{Name: "New Helper", Email: "new@example.com", Password: "hashed"}
	require.NoError(t, dbc.Create(&h).Error)
	assert.Equal(t, AvailabilityAvailable, h.Availability)
}
