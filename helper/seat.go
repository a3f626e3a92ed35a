package helper

import (
	"cinema_booking/constants"
	"cinema_booking/model"
)

var rowLabels = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// BuildSeatGrid dựng sơ đồ ghế cho phòng: hàng đánh chữ A.., ghế đánh số 1..
// Các hàng trong [vipRowMin, vipRowMax] là ghế VIP, hàng cuối có thể là
// ghế đôi (COUPLE) nếu coupleLast bật.
func BuildSeatGrid(in model.GenerateSeatsInput) []model.Seat {
	seats := make([]model.Seat, 0, in.Rows*in.Columns)
	for r := 1; r <= in.Rows; r++ {
		seatType := constants.SEAT_REGULAR
		if in.VipRowMin > 0 && in.VipRowMax >= in.VipRowMin && r >= in.VipRowMin && r <= in.VipRowMax {
			seatType = constants.SEAT_VIP
		}
		if in.CoupleLast && r == in.Rows {
			seatType = constants.SEAT_COUPLE
		}
		for col := 1; col <= in.Columns; col++ {
			seats = append(seats, model.Seat{
				RoomId:   in.RoomId,
				Row:      string(rowLabels[r-1]),
				Column:   col,
				SeatType: seatType,
				IsActive: true,
			})
		}
	}
	return seats
}
