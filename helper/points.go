package helper

import (
	"math"
	"strconv"
	"strings"

	"cinema_booking/constants"
)

// ParseAmount đọc total_price lưu dạng numeric/text về float.
// Giá trị rỗng, null hoặc không hợp lệ coi như 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// EarnedPoints tính điểm thưởng: 5% số tiền, quy ra 1 điểm / 1000đ,
// làm tròn nửa trên. Không bao giờ âm.
func EarnedPoints(amount float64) int {
	if math.IsNaN(amount) || amount <= 0 {
		return 0
	}
	p := math.Round(amount / constants.POINT_UNIT * constants.POINT_RATE)
	if p < 0 {
		return 0
	}
	return int(p)
}
