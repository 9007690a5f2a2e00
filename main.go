package main

import (
	"log"

	"skillport/config"
	"skillport/database"
	authRoutes "skillport/routers/authRoutes"
	courseRoutes "skillport/routers/courseRoutes"
	paymentRoutes "skillport/routers/paymentRoutes"
	sandboxRoutes "skillport/routers/sandboxRoutes"
	studentRoutes "skillport/routers/studentRoutes"
	supportRoutes "skillport/routers/supportRoutes"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded thumbnails and other static assets
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	sandboxRoutes.SetupSandboxRoutes(app)
	supportRoutes.SetupSupportRoutes(app)

	scheduler := utils.StartPaymentScheduler()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
