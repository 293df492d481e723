package helper

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/urbanmaid/urbanmaid/db"
	"github.com/urbanmaid/urbanmaid/models"
	"github.com/urbanmaid/urbanmaid/utils"
)

// GetProfile returns the logged-in helper's profile and whether it is
// complete enough to be bookable.
func GetProfile(c *fiber.Ctx) error {
	helperID := c.Locals("userID").(uint)

	var h models.Helper
	if err := db.DB.First(&h, helperID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Helper not found"})
	}

	h.Password = ""
	return c.JSON(fiber.Map{
		"helper":              h,
		"is_profile_complete": h.IsProfileComplete(),
	})
}

type profileInput struct {
	Phone       string  `json:"phone" form:"phone"`
	Category    string  `json:"category" form:"category"`
	Experience  int     `json:"experience" form:"experience"`
	HourlyRate  float64 `json:"hourly_rate" form:"hourly_rate"`
	Area        string  `json:"area" form:"area"`
	City        string  `json:"city" form:"city"`
	Pincode     string  `json:"pincode" form:"pincode"`
	Description string  `json:"description" form:"description"`
}

// CompleteProfile fills in the service-provider half of the helper record.
// Accepts multipart form data with an optional "image" file. Availability is
// never written here; only the booking lifecycle moves it.
func CompleteProfile(c *fiber.Ctx) error {
	helperID := c.Locals("userID").(uint)

	input := new(profileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}

	if input.Category == "" || !models.ValidCategory(input.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please select a valid category.",
		})
	}

	var imageURL string
	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Could not read uploaded image",
			})
		}
		defer file.Close()

		url, err := utils.UploadToCloudinary(file, fmt.Sprintf("helper-%d", helperID), "helpers")
		if err != nil {
			log.Printf("image upload failed for helper %d: %v", helperID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Image upload failed. Please try again.",
			})
		}
		imageURL = url
	}

	updates := map[string]interface{}{
		"phone":            input.Phone,
		"category":         input.Category,
		"experience":       input.Experience,
		"hourly_rate":      input.HourlyRate,
		"location_area":    input.Area,
		"location_city":    input.City,
		"location_pincode": input.Pincode,
		"description":      input.Description,
		"is_active":        true,
	}
	if imageURL != "" {
		updates["image_url"] = imageURL
	}

	if err := db.DB.Model(&models.Helper{}).Where("id = ?", helperID).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Something went wrong. Please try again.",
			Error:   err.Error(),
		})
	}

	var h models.Helper
	if err := db.DB.First(&h, helperID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reload profile",
		})
	}
	h.Password = ""

	return c.JSON(fiber.Map{
		"message":             "Profile completed! You are now a helper.",
		"helper":              h,
		"is_profile_complete": h.IsProfileComplete(),
	})
}
