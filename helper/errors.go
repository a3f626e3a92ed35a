package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Lỗi nghiệp vụ của luồng thanh toán và xếp lịch chiếu.
// Handler ánh xạ sang HTTP status qua StatusOf, message dùng làm body lỗi.
var (
	ErrMissingPaymentFields = errors.New("Thiếu bookingId hoặc userId")
	ErrBookingNotFound      = errors.New("Booking không tồn tại")
	ErrFoodBookingNotFound  = errors.New("Food booking không tồn tại")

	ErrInvalidShowtimeInput = errors.New("Thiếu thông tin bắt buộc")
	ErrMovieNotFound        = errors.New("Không tìm thấy thông tin phim")
	ErrRoomNotInTheater     = errors.New("Phòng không thuộc rạp này hoặc không tồn tại")
	ErrShowtimeConflict     = errors.New("Trùng lịch chiếu: phòng đã có suất chiếu trong khung giờ này")
)

// StatusOf ánh xạ lỗi nghiệp vụ sang HTTP status.
// Lỗi không nhận diện được coi là lỗi hệ thống (500).
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrMissingPaymentFields),
		errors.Is(err, ErrInvalidShowtimeInput),
		errors.Is(err, ErrMovieNotFound),
		errors.Is(err, ErrRoomNotInTheater):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrFoodBookingNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrShowtimeConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
