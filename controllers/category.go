package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbanmaid/urbanmaid/db"
	"github.com/urbanmaid/urbanmaid/models"
	"github.com/urbanmaid/urbanmaid/utils"
)

// ListCategories returns the static service catalog.
func ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": models.Categories})
}

// GetCategoryHelpers lists the helpers offering one catalog category.
func GetCategoryHelpers(c *fiber.Ctx) error {
	categoryName := c.Params("categoryName")
	if !models.ValidCategory(categoryName) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	helpers, err := models.HelpersByCategory(db.DB, categoryName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Could not load helpers",
			Error:   err.Error(),
		})
	}
	for i := range helpers {
		helpers[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"category": categoryName,
		"helpers":  helpers,
	})
}
