package models

// Category is a catalog entry; the catalog itself is static.
type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Categories lists the eight service types a helper can offer, in catalog
// order.
var Categories = []Category{
	{Slug: "maid", Name: "Maid Services", Description: "Professional house cleaning and maintenance services"},
	{Slug: "cook", Name: "Cook Services", Description: "Expert cooking and meal preparation for your family"},
	{Slug: "babysitter", Name: "Babysitting", Description: "Trusted childcare services for your little ones"},
	{Slug: "cleaner", Name: "Deep Cleaning", Description: "Intensive and professional cleaning services for your home"},
	{Slug: "plumber", Name: "Plumbing", Description: "Expert plumbing and leak repair services"},
	{Slug: "electrician", Name: "Electrician", Description: "Certified professionals for electrical work and repairs"},
	{Slug: "gardener", Name: "Gardening", Description: "Professional gardening and landscaping services"},
	{Slug: "driver", Name: "Driver Services", Description: "Skilled drivers for daily commutes and travel"},
}

// ValidCategory reports whether the slug names a catalog category.
func ValidCategory(slug string) bool {
	for _, c := range Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
