package model

type FoodItem struct {
	DTO
	Name        string  `gorm:"not null" json:"name"`
	Category    string  `gorm:"size:30" json:"category"` // popcorn, drink, combo
	Price       float64 `gorm:"not null" json:"price"`
	ImageUrl    string  `json:"imageUrl"`
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`
}

// FoodBooking là đơn bắp nước đi kèm (0 hoặc 1 cho mỗi lần thanh toán).
// Cùng quy tắc chuyển trạng thái PENDING → PAID như Booking.
type FoodBooking struct {
	DTO
	UserId     uint   `gorm:"index" json:"userId"`
	BookingId  *uint  `gorm:"index" json:"bookingId"`
	Items      string `gorm:"type:text" json:"items"` // JSON [{foodItemId, quantity}]
	TotalPrice string `gorm:"type:numeric(12,2)" json:"totalPrice"`
	Status     string `gorm:"size:10;default:'PENDING'" json:"status"`
}

type FoodOrderLine struct {
	FoodItemId uint `json:"foodItemId" validate:"required,gt=0"`
	Quantity   int  `json:"quantity" validate:"required,gt=0"`
}

type CreateFoodItemInput struct {
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required,oneof=popcorn drink combo snack"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	ImageUrl string  `json:"imageUrl"`
}

type CreateFoodBookingInput struct {
	UserId    uint            `json:"userId" validate:"required,gt=0"`
	BookingId *uint           `json:"bookingId"`
	Items     []FoodOrderLine `json:"items" validate:"required,min=1,dive"`
}
