package main

import (
	"log"

	"cinema_booking/config"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectMongo()
	database.ConnectRedis()

	helper.StartShowtimeScheduler()
	defer helper.StopShowtimeScheduler()
	helper.StartMovieStatusScheduler()
	defer helper.StopMovieStatusScheduler()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8002")))
}
