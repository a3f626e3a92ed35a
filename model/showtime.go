package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Showtime lưu kèm snapshot phim/rạp/phòng tại thời điểm xếp lịch
// để đọc danh sách không phải join ngược về các service khác.
type Showtime struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Movie        MovieSnapshot      `bson:"movie" json:"movie"`
	Theater      TheaterSnapshot    `bson:"theater" json:"theater"`
	Room         RoomSnapshot       `bson:"room" json:"room"`
	Date         string             `bson:"date" json:"date"` // YYYY-MM-DD
	StartTime    time.Time          `bson:"startTime" json:"startTime"`
	EndTime      time.Time          `bson:"endTime" json:"endTime"`
	PriceRegular float64            `bson:"priceRegular" json:"priceRegular"`
	PriceVIP     float64            `bson:"priceVip" json:"priceVip"`
	ShowtimeType string             `bson:"showtimeType" json:"showtimeType"` // 2D, 3D, IMAX, 4DX
	Status       string             `bson:"status" json:"status"`             // scheduled, ended
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type MovieSnapshot struct {
	Id       string `bson:"id" json:"id"`
	Title    string `bson:"title" json:"title"`
	Duration int    `bson:"duration" json:"duration"`
}

type TheaterSnapshot struct {
	Id   uint   `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type RoomSnapshot struct {
	Id   uint   `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Type string `bson:"type" json:"type"`
}

type CreateShowtimeInput struct {
	TheaterId    uint    `json:"theaterId"`
	RoomId       uint    `json:"roomId"`
	MovieId      string  `json:"movieId"`
	Date         string  `json:"date"`      // YYYY-MM-DD
	StartTime    string  `json:"startTime"` // HH:MM
	PriceRegular float64 `json:"priceRegular"`
	PriceVIP     float64 `json:"priceVip"`
	ShowtimeType string  `json:"showtimeType"`
}

// MissingFields liệt kê các trường bắt buộc còn thiếu, trả trong lỗi 400.
func (in CreateShowtimeInput) MissingFields() []string {
	var missing []string
	if in.TheaterId == 0 {
		missing = append(missing, "theaterId")
	}
	if in.RoomId == 0 {
		missing = append(missing, "roomId")
	}
	if in.MovieId == "" {
		missing = append(missing, "movieId")
	}
	if in.Date == "" {
		missing = append(missing, "date")
	}
	if in.StartTime == "" {
		missing = append(missing, "startTime")
	}
	if in.PriceRegular == 0 {
		missing = append(missing, "priceRegular")
	}
	if in.PriceVIP == 0 {
		missing = append(missing, "priceVip")
	}
	if in.ShowtimeType == "" {
		missing = append(missing, "showtimeType")
	}
	return missing
}

type FilterShowtimeInput struct {
	Pagination
	MovieId   string `query:"movieId"`
	TheaterId uint   `query:"theaterId"`
	RoomId    uint   `query:"roomId"`
	Date      string `query:"date"`
	Status    string `query:"status"`
}

type UpdateShowtimePricesInput struct {
	ShowtimeIds  []string `json:"showtimeIds" validate:"required,min=1"`
	PriceRegular *float64 `json:"priceRegular" validate:"omitempty,gt=0"`
	PriceVIP     *float64 `json:"priceVip" validate:"omitempty,gt=0"`
}
