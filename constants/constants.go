package constants

// Thông báo lỗi chung
const (
	ERROR_INPUT              = "Dữ liệu đầu vào không hợp lệ"
	DATA_INPUT_IS_NOT_NUMBER = "Tham số phải là số"
	SERVER_ERROR             = "Lỗi hệ thống, vui lòng thử lại sau"
)

// Trạng thái booking / food booking
const (
	BOOKING_PENDING = "PENDING"
	BOOKING_PAID    = "PAID"
)

// Trạng thái phim
const (
	MOVIE_COMING_SOON = "COMING_SOON"
	MOVIE_NOW_SHOWING = "NOW_SHOWING"
	MOVIE_ENDED       = "ENDED"
)

// Trạng thái suất chiếu
const (
	SHOWTIME_SCHEDULED = "scheduled"
	SHOWTIME_ENDED     = "ended"
)

// Trạng thái khuyến mãi
const (
	PROMOTION_ACTIVE   = "active"
	PROMOTION_INACTIVE = "inactive"
	PROMOTION_EXPIRED  = "expired"
)

// Loại ghế
const (
	SEAT_REGULAR = "REGULAR"
	SEAT_VIP     = "VIP"
	SEAT_COUPLE  = "COUPLE"
)

// Tích điểm: 1 điểm cho mỗi 1000đ, tỷ lệ 5%
const (
	POINT_UNIT = 1000.0
	POINT_RATE = 0.05
)
