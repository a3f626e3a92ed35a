package router

import (
	"cinema_booking/handler"
	"cinema_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	movie := v1.Group("/movies", logger.New())
	movie.Get("/", handler.GetMovies)
	movie.Get("/:movieId", handler.GetMovieById)
	movie.Post("/", validate.CreateMovie(), handler.CreateMovie)
	movie.Put("/:movieId", validate.EditMovie("movieId"), handler.EditMovie)
	movie.Delete("/:movieId", handler.DeleteMovie)

	theater := v1.Group("/theaters", logger.New())
	theater.Get("/", handler.GetTheaters)
	theater.Get("/:theaterId", validate.GetById("theaterId"), handler.GetTheaterById)
	theater.Post("/", validate.CreateTheater(), handler.CreateTheater)
	theater.Put("/:theaterId", validate.GetById("theaterId"), validate.EditTheater(), handler.EditTheater)
	theater.Delete("/:theaterId", validate.GetById("theaterId"), handler.DeleteTheater)
	theater.Get("/:theaterId/rooms", validate.GetById("theaterId"), handler.GetRoomsByTheater)
	theater.Post("/:theaterId/rooms", validate.GetById("theaterId"), validate.CreateRoom(), handler.CreateRoom)

	seat := v1.Group("/seats", logger.New())
	seat.Post("/generate", validate.GenerateSeats(), handler.GenerateSeats)
	seat.Get("/room/:roomId", validate.GetById("roomId"), handler.GetSeatsByRoom)
	seat.Put("/:seatId", validate.GetById("seatId"), validate.EditSeat(), handler.EditSeat)
	seat.Post("/hold", validate.HoldSeats(), handler.HoldSeats)
	seat.Post("/release", validate.ReleaseSeats(), handler.ReleaseSeats)
	seat.Get("/ws/:showtimeId", websocket.New(handler.SeatWebsocket))

	showtime := v1.Group("/showtimes", logger.New())
	showtime.Get("/", handler.GetShowtimes)
	showtime.Post("/", handler.CreateShowtime)
	showtime.Patch("/update-prices", validate.UpdateShowtimePrices(), handler.UpdateShowtimePrices)
	showtime.Delete("/:showtimeId", handler.DeleteShowtime)

	promotion := v1.Group("/promotions", logger.New())
	promotion.Get("/", handler.GetPromotions)
	promotion.Get("/code/:code", handler.GetPromotionByCode)
	promotion.Post("/", validate.CreatePromotion(), handler.CreatePromotion)
	promotion.Put("/:promotionId", validate.EditPromotion("promotionId"), handler.EditPromotion)
	promotion.Delete("/:promotionId", handler.DeletePromotion)

	food := v1.Group("/foods", logger.New())
	food.Get("/", handler.GetFoodItems)
	food.Post("/", validate.CreateFoodItem(), handler.CreateFoodItem)
	food.Post("/bookings", validate.CreateFoodBooking(), handler.CreateFoodBooking)
	food.Get("/bookings/:foodBookingId", validate.GetById("foodBookingId"), handler.GetFoodBookingById)

	booking := v1.Group("/bookings", logger.New())
	booking.Post("/", validate.CreateBooking(), handler.CreateBooking)

	user := v1.Group("/users", logger.New())
	user.Get("/:userId/points", validate.GetById("userId"), handler.GetUserPoints)

	// Cổng thanh toán
	app.Post("/payments/payos", handler.CreatePaymentLink)
	app.Post("/payments/success", handler.ConfirmPaymentSuccess)
}
