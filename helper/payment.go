package helper

import (
	"fmt"

	"cinema_booking/model"
)

// PaymentStore là mặt cắt dữ liệu mà luồng xác nhận thanh toán cần.
// Get* trả (nil, nil) khi không có bản ghi.
type PaymentStore interface {
	GetBooking(id uint) (*model.Booking, error)
	GetFoodBooking(id uint) (*model.FoodBooking, error)
	MarkBookingPaid(id uint) error
	MarkFoodBookingPaid(id uint) error
	AddUserPoints(userId uint, delta int) error
}

type PaymentResult struct {
	EarnedPoints int     `json:"earnedPoints"`
	TotalPaid    float64 `json:"totalPaid"`
}

// ConfirmPayment xác nhận thanh toán cho một booking (kèm food booking nếu có):
// cộng dồn số tiền, chuyển trạng thái PAID, tính điểm thưởng và cập nhật
// số dư điểm của khách (cộng điểm tích, trừ điểm đã dùng — một phép cập nhật).
//
// Các bước ghi là những câu lệnh độc lập, không bọc transaction: bước đã
// commit vẫn giữ nguyên khi bước sau lỗi.
func ConfirmPayment(store PaymentStore, input model.ConfirmPaymentInput) (*PaymentResult, error) {
	if input.BookingId == 0 || input.UserId == 0 {
		return nil, ErrMissingPaymentFields
	}

	booking, err := store.GetBooking(input.BookingId)
	if err != nil {
		return nil, fmt.Errorf("truy vấn booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	amount := ParseAmount(booking.TotalPrice)

	if input.FoodBookingId != nil {
		foodBooking, err := store.GetFoodBooking(*input.FoodBookingId)
		if err != nil {
			return nil, fmt.Errorf("truy vấn food booking: %w", err)
		}
		if foodBooking == nil {
			return nil, ErrFoodBookingNotFound
		}
		amount += ParseAmount(foodBooking.TotalPrice)

		if err := store.MarkFoodBookingPaid(foodBooking.ID); err != nil {
			return nil, fmt.Errorf("cập nhật food booking: %w", err)
		}
	}

	if err := store.MarkBookingPaid(booking.ID); err != nil {
		return nil, fmt.Errorf("cập nhật booking: %w", err)
	}

	earned := EarnedPoints(amount)

	// Không chặn số dư âm: usedPoints lớn hơn điểm hiện có vẫn trừ thẳng.
	if err := store.AddUserPoints(input.UserId, earned-input.UsedPoints); err != nil {
		return nil, fmt.Errorf("cập nhật điểm: %w", err)
	}

	return &PaymentResult{EarnedPoints: earned, TotalPaid: amount}, nil
}
