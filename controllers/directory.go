package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbanmaid/urbanmaid/db"
	"github.com/urbanmaid/urbanmaid/models"
	"github.com/urbanmaid/urbanmaid/utils"
)

// ListHelpers is the public helper directory.
func ListHelpers(c *fiber.Ctx) error {
	var helpers []models.Helper
	if err := db.DB.Find(&helpers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Could not load helpers.",
			Error:   err.Error(),
		})
	}
	for i := range helpers {
		helpers[i].Password = ""
	}
	return c.JSON(fiber.Map{"helpers": helpers})
}

// SearchHelpers matches on name substring or category, singular-or-plural.
// An empty query returns an empty result set.
func SearchHelpers(c *fiber.Ctx) error {
	query := c.Query("q")

	helpers, err := models.SearchHelpers(db.DB, query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Search failed",
			Error:   err.Error(),
		})
	}
	for i := range helpers {
		helpers[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"query":   query,
		"helpers": helpers,
	})
}
