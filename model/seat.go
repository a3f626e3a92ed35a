package model

type Seat struct {
	DTO
	RoomId   uint   `gorm:"not null;index" json:"roomId"`
	Row      string `gorm:"size:2;not null" json:"row"`
	Column   int    `gorm:"not null" json:"column"`
	SeatType string `gorm:"size:10;default:'REGULAR'" json:"seatType"` // REGULAR, VIP, COUPLE
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type GenerateSeatsInput struct {
	RoomId     uint `json:"roomId" validate:"required,gt=0"`
	Rows       int  `json:"rows" validate:"required,min=1,max=26"`
	Columns    int  `json:"columns" validate:"required,min=1,max=30"`
	VipRowMin  int  `json:"vipRowMin" validate:"omitempty,min=1"`
	VipRowMax  int  `json:"vipRowMax" validate:"omitempty,min=1"`
	CoupleLast bool `json:"coupleLastRow"`
}

type EditSeatInput struct {
	SeatType *string `json:"seatType" validate:"omitempty,oneof=REGULAR VIP COUPLE"`
	IsActive *bool   `json:"isActive"`
}

type HoldSeatsInput struct {
	ShowtimeId string `json:"showtimeId" validate:"required"`
	SeatIds    []uint `json:"seatIds" validate:"required,min=1,dive,gt=0"`
	HeldBy     string `json:"heldBy"` // để trống nếu guest, server tự cấp session
}

type ReleaseSeatsInput struct {
	ShowtimeId string `json:"showtimeId" validate:"required"`
	SeatIds    []uint `json:"seatIds" validate:"required,min=1,dive,gt=0"`
	HeldBy     string `json:"heldBy" validate:"required"`
}

// SeatEvent được publish lên Redis mỗi khi ghế được giữ/nhả,
// websocket của suất chiếu sẽ phát lại cho client.
type SeatEvent struct {
	ShowtimeId string `json:"showtimeId"`
	SeatId     uint   `json:"seatId"`
	Status     string `json:"status"` // HELD, AVAILABLE
	HeldBy     string `json:"heldBy,omitempty"`
}
