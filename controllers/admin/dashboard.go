package admin

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/urbanmaid/urbanmaid/db"
	"github.com/urbanmaid/urbanmaid/models"
)

// Dashboard lists every user and helper for moderation.
func Dashboard(c *fiber.Ctx) error {
	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		log.Printf("Error loading admin dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}

	var helpers []models.Helper
	if err := db.DB.Find(&helpers).Error; err != nil {
		log.Printf("Error loading admin dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}

	for i := range users {
		users[i].Password = ""
	}
	for i := range helpers {
		helpers[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"users":   users,
		"helpers": helpers,
	})
}

func setHelperActive(c *fiber.Ctx, active bool, verb, past string) error {
	helperID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid helper ID"})
	}

	res := db.DB.Model(&models.Helper{}).Where("id = ?", helperID).Update("is_active", active)
	if res.Error != nil {
		log.Printf("Error updating helper %d: %v", helperID, res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to " + verb + " helper",
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Helper not found"})
	}

	return c.JSON(fiber.Map{"message": "Helper " + past + " successfully"})
}

// ApproveHelper marks a helper as active in the marketplace.
func ApproveHelper(c *fiber.Ctx) error {
	return setHelperActive(c, true, "approve", "approved")
}

// RejectHelper deactivates a helper.
func RejectHelper(c *fiber.Ctx) error {
	return setHelperActive(c, false, "reject", "rejected")
}

// DeleteUser permanently removes a user account.
func DeleteUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	if err := db.DB.Delete(&models.User{}, userID).Error; err != nil {
		log.Printf("Error deleting user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete user",
		})
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// DeleteHelper permanently removes a helper account.
func DeleteHelper(c *fiber.Ctx) error {
	helperID, err := c.ParamsInt("helperId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid helper ID"})
	}

	if err := db.DB.Delete(&models.Helper{}, helperID).Error; err != nil {
		log.Printf("Error deleting helper %d: %v", helperID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete helper",
		})
	}
	return c.JSON(fiber.Map{"message": "Helper deleted successfully"})
}
