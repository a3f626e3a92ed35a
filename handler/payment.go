package handler

import (
	"strconv"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)
	db := database.DB

	var exists int64
	if err := db.Raw(`SELECT COUNT(*) FROM users WHERE id = ?`, input.UserId).Scan(&exists).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể kiểm tra khách hàng", err)
	}
	if exists == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Khách hàng không tồn tại", nil)
	}

	var booking model.Booking
	res := db.Raw(`INSERT INTO bookings (user_id, showtime_id, seat_labels, total_price, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
		RETURNING id, user_id, showtime_id, seat_labels, total_price, status, created_at, updated_at`,
		input.UserId, input.ShowtimeId, input.SeatLabels, input.TotalPrice, constants.BOOKING_PENDING).Scan(&booking)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo booking", res.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tạo booking thành công",
		"booking": booking,
	})
}

// ConfirmPaymentSuccess xác nhận thanh toán đã hoàn tất: chuyển booking
// (và food booking nếu có) sang PAID, tích điểm cho khách.
// Nghiệp vụ nằm trong helper.ConfirmPayment.
func ConfirmPaymentSuccess(c *fiber.Ctx) error {
	var input model.ConfirmPaymentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	store := helper.NewSQLPaymentStore(database.DB)
	result, err := helper.ConfirmPayment(store, input)
	if err != nil {
		return utils.ErrorResponse(c, helper.StatusOf(err), err.Error(), nil)
	}

	// Gửi email xác nhận, không chặn response
	if user, err := store.GetUser(input.UserId); err == nil && user != nil && user.Email != "" {
		booking, _ := store.GetBooking(input.BookingId)
		seats := ""
		if booking != nil {
			seats = booking.SeatLabels
		}
		utils.SendPaymentConfirmationEmail(user.Email, utils.PaymentConfirmationData{
			CustomerName: user.Name,
			BookingCode:  strconv.FormatUint(uint64(input.BookingId), 10),
			TotalPaid:    result.TotalPaid,
			EarnedPoints: result.EarnedPoints,
			Seats:        seats,
		})
	}

	return c.JSON(fiber.Map{
		"message":      "Thanh toán thành công",
		"earnedPoints": result.EarnedPoints,
		"totalPaid":    result.TotalPaid,
	})
}

func GetUserPoints(c *fiber.Ctx) error {
	userId := c.Locals("inputId").(int)
	db := database.DB

	var user model.User
	res := db.Raw(`SELECT id, email, name, points FROM users WHERE id = ?`, userId).Scan(&user)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy dữ liệu", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Khách hàng không tồn tại", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"userId": user.ID,
		"points": user.Points,
	})
}
