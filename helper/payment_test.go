package helper

import (
	"errors"
	"testing"

	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePaymentStore ghi lại thứ tự các lời gọi để kiểm tra luồng xác nhận.
type fakePaymentStore struct {
	bookings     map[uint]*model.Booking
	foodBookings map[uint]*model.FoodBooking
	points       map[uint]int
	calls        []string
	failMarkPaid bool
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{
		bookings:     map[uint]*model.Booking{},
		foodBookings: map[uint]*model.FoodBooking{},
		points:       map[uint]int{},
	}
}

func (f *fakePaymentStore) GetBooking(id uint) (*model.Booking, error) {
	f.calls = append(f.calls, "GetBooking")
	return f.bookings[id], nil
}

func (f *fakePaymentStore) GetFoodBooking(id uint) (*model.FoodBooking, error) {
	f.calls = append(f.calls, "GetFoodBooking")
	return f.foodBookings[id], nil
}

func (f *fakePaymentStore) MarkBookingPaid(id uint) error {
	f.calls = append(f.calls, "MarkBookingPaid")
	if f.failMarkPaid {
		return errors.New("db down")
	}
	f.bookings[id].Status = constants.BOOKING_PAID
	return nil
}

func (f *fakePaymentStore) MarkFoodBookingPaid(id uint) error {
	f.calls = append(f.calls, "MarkFoodBookingPaid")
	f.foodBookings[id].Status = constants.BOOKING_PAID
	return nil
}

func (f *fakePaymentStore) AddUserPoints(userId uint, delta int) error {
	f.calls = append(f.calls, "AddUserPoints")
	f.points[userId] += delta
	return nil
}

func booking(id, userId uint, totalPrice string) *model.Booking {
	b := &model.Booking{UserId: userId, TotalPrice: totalPrice, Status: constants.BOOKING_PENDING}
	b.ID = id
	return b
}

func TestConfirmPaymentMissingFields(t *testing.T) {
	store := newFakePaymentStore()

	_, err := ConfirmPayment(store, model.ConfirmPaymentInput{BookingId: 0, UserId: 7})
	assert.ErrorIs(t, err, ErrMissingPaymentFields)

	_, err = ConfirmPayment(store, model.ConfirmPaymentInput{BookingId: 3, UserId: 0})
	assert.ErrorIs(t, err, ErrMissingPaymentFields)

	// Không đụng vào store khi thiếu trường bắt buộc
	assert.Empty(t, store.calls)
	assert.Equal(t, fiber.StatusBadRequest, StatusOf(err))
}

func TestConfirmPaymentBookingNotFound(t *testing.T) {
	store := newFakePaymentStore()

	_, err := ConfirmPayment(store, model.ConfirmPaymentInput{BookingId: 99, UserId: 7})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, []string{"GetBooking"}, store.calls)
	assert.Equal(t, fiber.StatusNotFound, StatusOf(err))
}

func TestConfirmPaymentFoodBookingNotFound(t *testing.T) {
	store := newFakePaymentStore()
	store.bookings[3] = booking(3, 7, "100000")

	_, err := ConfirmPayment(store, model.ConfirmPaymentInput{
		BookingId:     3,
		UserId:        7,
		FoodBookingId: utils.Ptr(uint(50)),
	})
	assert.ErrorIs(t, err, ErrFoodBookingNotFound)
	assert.Equal(t, fiber.StatusNotFound, StatusOf(err))

	// Food booking không tồn tại phải chặn trước mọi thao tác ghi
	assert.Equal(t, constants.BOOKING_PENDING, store.bookings[3].Status)
	assert.NotContains(t, store.calls, "MarkBookingPaid")
	assert.NotContains(t, store.calls, "AddUserPoints")
}

func TestConfirmPaymentSuccess(t *testing.T) {
	store := newFakePaymentStore()
	store.bookings[3] = booking(3, 7, "100000")

	result, err := ConfirmPayment(store, model.ConfirmPaymentInput{BookingId: 3, UserId: 7})
	require.NoError(t, err)

	assert.Equal(t, 5, result.EarnedPoints)
	assert.Equal(t, 100000.0, result.TotalPaid)
	assert.Equal(t, constants.BOOKING_PAID, store.bookings[3].Status)
	assert.Equal(t, 5, store.points[7])
	assert.Equal(t, []string{"GetBooking", "MarkBookingPaid", "AddUserPoints"}, store.calls)
}

func TestConfirmPaymentWithFoodAndUsedPoints(t *testing.T) {
	store := newFakePaymentStore()
	store.bookings[3] = booking(3, 7, "100000")
	fb := &model.FoodBooking{UserId: 7, TotalPrice: "50000", Status: constants.BOOKING_PENDING}
	fb.ID = 50
	store.foodBookings[50] = fb

	result, err := ConfirmPayment(store, model.ConfirmPaymentInput{
		BookingId:     3,
		UserId:        7,
		UsedPoints:    10,
		FoodBookingId: utils.Ptr(uint(50)),
	})
	require.NoError(t, err)

	// 150000đ → 8 điểm tích, trừ 10 điểm đã dùng → -2
	assert.Equal(t, 8, result.EarnedPoints)
	assert.Equal(t, 150000.0, result.TotalPaid)
	assert.Equal(t, constants.BOOKING_PAID, store.bookings[3].Status)
	assert.Equal(t, constants.BOOKING_PAID, store.foodBookings[50].Status)
	assert.Equal(t, -2, store.points[7])
	assert.Equal(t, []string{"GetBooking", "GetFoodBooking", "MarkFoodBookingPaid", "MarkBookingPaid", "AddUserPoints"}, store.calls)
}

func TestConfirmPaymentNullTotalPrice(t *testing.T) {
	store := newFakePaymentStore()
	store.bookings[3] = booking(3, 7, "null")

	result, err := ConfirmPayment(store, model.ConfirmPaymentInput{BookingId: 3, UserId: 7})
	require.NoError(t, err)

	assert.Equal(t, 0, result.EarnedPoints)
	assert.Equal(t, 0.0, result.TotalPaid)
	assert.Equal(t, 0, store.points[7])
}

func TestConfirmPaymentMarkPaidError(t *testing.T) {
	store := newFakePaymentStore()
	store.bookings[3] = booking(3, 7, "100000")
	store.failMarkPaid = true

	_, err := ConfirmPayment(store, model.ConfirmPaymentInput{BookingId: 3, UserId: 7})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, StatusOf(err))
	assert.NotContains(t, store.calls, "AddUserPoints")
}
