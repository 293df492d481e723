package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/urbanmaid/urbanmaid/cron"
	"github.com/urbanmaid/urbanmaid/db"
	"github.com/urbanmaid/urbanmaid/redis"
	"github.com/urbanmaid/urbanmaid/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to UrbanMaid!")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupHomeRoutes(app)
	routes.SetupCategoryRoutes(app)
	routes.SetupHelperRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupAdminRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
