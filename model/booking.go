package model

// User giữ số dư điểm thưởng tích luỹ của khách hàng.
type User struct {
	DTO
	Email  string `gorm:"unique;not null" json:"email"`
	Name   string `json:"name"`
	Phone  string `gorm:"size:20" json:"phone"`
	Points int    `gorm:"default:0" json:"points"`
}

// Booking là đơn đặt vé. total_price lưu dạng numeric (đọc ra text),
// parse về float khi tính tiền — giá trị rỗng/null coi như 0.
type Booking struct {
	DTO
	UserId     uint   `gorm:"index" json:"userId"`
	ShowtimeId string `gorm:"size:32" json:"showtimeId"`
	SeatLabels string `json:"seatLabels"` // "A1,A2"
	TotalPrice string `gorm:"type:numeric(12,2)" json:"totalPrice"`
	Status     string `gorm:"size:10;default:'PENDING'" json:"status"` // PENDING, PAID
}

type CreateBookingInput struct {
	UserId     uint    `json:"userId" validate:"required,gt=0"`
	ShowtimeId string  `json:"showtimeId" validate:"required"`
	SeatLabels string  `json:"seatLabels" validate:"required"`
	TotalPrice float64 `json:"totalPrice" validate:"required,gt=0"`
}

type ConfirmPaymentInput struct {
	BookingId     uint  `json:"bookingId"`
	UserId        uint  `json:"userId"`
	UsedPoints    int   `json:"usedPoints"`
	FoodBookingId *uint `json:"foodBookingId"`
}

type CreatePaymentLinkInput struct {
	BookingId   uint   `json:"bookingId" validate:"required,gt=0"`
	Description string `json:"description"`
}

// PayOSConfig đọc từ biến môi trường PAYOS_*
type PayOSConfig struct {
	ClientId    string
	ApiKey      string
	ChecksumKey string
	CheckoutURL string
	ReturnURL   string
	CancelURL   string
}

type PayOSRequest struct {
	OrderCode   int64
	Amount      int64
	Description string
}
