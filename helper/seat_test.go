package helper

import (
	"testing"

	"cinema_booking/constants"
	"cinema_booking/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildSeatGrid(t *testing.T) {
	seats := BuildSeatGrid(model.GenerateSeatsInput{
		RoomId:  10,
		Rows:    5,
		Columns: 8,
	})

	assert.Len(t, seats, 40)
	assert.Equal(t, "A", seats[0].Row)
	assert.Equal(t, 1, seats[0].Column)
	assert.Equal(t, "E", seats[39].Row)
	assert.Equal(t, 8, seats[39].Column)
	for _, s := range seats {
		assert.Equal(t, uint(10), s.RoomId)
		assert.Equal(t, constants.SEAT_REGULAR, s.SeatType)
		assert.True(t, s.IsActive)
	}
}

func TestBuildSeatGridVipRows(t *testing.T) {
	seats := BuildSeatGrid(model.GenerateSeatsInput{
		RoomId:    10,
		Rows:      6,
		Columns:   4,
		VipRowMin: 3,
		VipRowMax: 5,
	})

	byRow := map[string]string{}
	for _, s := range seats {
		byRow[s.Row] = s.SeatType
	}
	assert.Equal(t, constants.SEAT_REGULAR, byRow["A"])
	assert.Equal(t, constants.SEAT_REGULAR, byRow["B"])
	assert.Equal(t, constants.SEAT_VIP, byRow["C"])
	assert.Equal(t, constants.SEAT_VIP, byRow["D"])
	assert.Equal(t, constants.SEAT_VIP, byRow["E"])
	assert.Equal(t, constants.SEAT_REGULAR, byRow["F"])
}

func TestBuildSeatGridCoupleLastRow(t *testing.T) {
	seats := BuildSeatGrid(model.GenerateSeatsInput{
		RoomId:     10,
		Rows:       4,
		Columns:    3,
		VipRowMin:  2,
		VipRowMax:  4,
		CoupleLast: true,
	})

	byRow := map[string]string{}
	for _, s := range seats {
		byRow[s.Row] = s.SeatType
	}
	assert.Equal(t, constants.SEAT_VIP, byRow["B"])
	assert.Equal(t, constants.SEAT_VIP, byRow["C"])
	// Hàng cuối là ghế đôi, đè lên cả dải VIP
	assert.Equal(t, constants.SEAT_COUPLE, byRow["D"])
}
