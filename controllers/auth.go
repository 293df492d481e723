package controllers

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/urbanmaid/urbanmaid/db"
	"github.com/urbanmaid/urbanmaid/models"
	"github.com/urbanmaid/urbanmaid/redis"
	"github.com/urbanmaid/urbanmaid/utils"
)

const sessionTTL = 24 * time.Hour

type credentialsInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// issueSession records a server-side session in Redis and signs a JWT that
// carries the session id. Revoking the record revokes the token.
func issueSession(userID uint, role, email string) (string, error) {
	sessionID := utils.GenerateSessionID()
	if err := redis.SaveSession(sessionID, userID, role, sessionTTL); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"role":  role,
		"sid":   sessionID,
		"exp":   time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return token.SignedString([]byte(secret))
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
	})
}

// Register creates an account in the table matching the requested role and
// logs the new account in.
func Register(c *fiber.Ctx) error {
	input := new(credentialsInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please fill all required fields.",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	var accountID uint
	switch input.Role {
	case "helper":
		var existing models.Helper
		if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Helper already exists with this email.",
			})
		}
		// Profile fields are deliberately left empty at registration; the
		// helper completes them before becoming bookable.
		helper := models.Helper{Name: input.Name, Email: input.Email, Password: string(hashed)}
		if err := db.DB.Create(&helper).Error; err != nil {
			log.Printf("Error creating helper: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create helper",
			})
		}
		accountID = helper.ID
	case "admin":
		var existing models.Admin
		if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Admin already exists with this email.",
			})
		}
		admin := models.Admin{Name: input.Name, Email: input.Email, Password: string(hashed)}
		if err := db.DB.Create(&admin).Error; err != nil {
			log.Printf("Error creating admin: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create admin",
			})
		}
		accountID = admin.ID
	case "user":
		var existing models.User
		if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "User already exists with this email.",
			})
		}
		user := models.User{Name: input.Name, Email: input.Email, Password: string(hashed)}
		if err := db.DB.Create(&user).Error; err != nil {
			log.Printf("Error creating user: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create user",
			})
		}
		accountID = user.ID
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Role must be user, helper or admin.",
		})
	}

	token, err := issueSession(accountID, input.Role, input.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}
	setSessionCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    accountID,
			"name":  input.Name,
			"email": input.Email,
			"role":  input.Role,
		},
	})
}

// Login authenticates against the table matching the requested role.
func Login(c *fiber.Ctx) error {
	input := new(credentialsInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	var (
		accountID uint
		name      string
		hash      string
		role      string
	)
	switch input.Role {
	case "helper":
		var helper models.Helper
		if db.DB.Where("email = ?", input.Email).First(&helper).RowsAffected == 0 {
			return invalidCredentials(c)
		}
		accountID, name, hash, role = helper.ID, helper.Name, helper.Password, "helper"
	case "admin":
		var admin models.Admin
		if db.DB.Where("email = ?", input.Email).First(&admin).RowsAffected == 0 {
			return invalidCredentials(c)
		}
		accountID, name, hash, role = admin.ID, admin.Name, admin.Password, "admin"
	default:
		var user models.User
		if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
			return invalidCredentials(c)
		}
		accountID, name, hash, role = user.ID, user.Name, user.Password, "user"
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		return invalidCredentials(c)
	}

	token, err := issueSession(accountID, role, input.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}
	setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    accountID,
			"name":  name,
			"email": input.Email,
			"role":  role,
		},
	})
}

func invalidCredentials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Invalid email or password.",
	})
}

// Logout deletes the server-side session record, so the JWT stops working
// even though it has not expired.
func Logout(c *fiber.Ctx) error {
	sessionID, _ := c.Locals("sessionID").(string)
	if sessionID != "" {
		if err := redis.DeleteSession(sessionID); err != nil {
			log.Printf("Failed to delete session %s: %v", sessionID, err)
		}
	}
	c.Cookie(&fiber.Cookie{Name: "token", Value: "", Expires: time.Now().Add(-time.Hour), HTTPOnly: true})
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// Me returns the profile of the logged-in account.
func Me(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(string)

	switch role {
	case "helper":
		var helper models.Helper
		if err := db.DB.First(&helper, userID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Helper not found"})
		}
		helper.Password = ""
		return c.JSON(fiber.Map{
			"helper":              helper,
			"role":                role,
			"is_profile_complete": helper.IsProfileComplete(),
		})
	case "admin":
		var admin models.Admin
		if err := db.DB.First(&admin, userID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Admin not found"})
		}
		admin.Password = ""
		return c.JSON(fiber.Map{"admin": admin, "role": role})
	default:
		var user models.User
		if err := db.DB.First(&user, userID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		user.Password = ""
		return c.JSON(fiber.Map{"user": user, "role": role})
	}
}
