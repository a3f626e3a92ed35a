package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HoldTimeout = 10 * time.Minute

const (
	SeatAvailable = "AVAILABLE"
	SeatHeld      = "HELD"
)

// GenerateSeats dựng sơ đồ ghế cho phòng rồi bắn các INSERT song song,
// join toàn bộ trước khi trả lời.
func GenerateSeats(c *fiber.Ctx) error {
	input := c.Locals("input").(model.GenerateSeatsInput)
	db := database.DB

	var exists int64
	if err := db.Raw(`SELECT COUNT(*) FROM rooms WHERE id = ?`, input.RoomId).Scan(&exists).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể kiểm tra phòng", err)
	}
	if exists == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phòng không tồn tại", nil)
	}

	seats := helper.BuildSeatGrid(input)

	var wg sync.WaitGroup
	errCh := make(chan error, len(seats))
	for _, seat := range seats {
		wg.Add(1)
		go func(s model.Seat) {
			defer wg.Done()
			if err := db.Exec(`INSERT INTO seats (room_id, "row", "column", seat_type, is_active, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, NOW(), NOW())`,
				s.RoomId, s.Row, s.Column, s.SeatType, s.IsActive).Error; err != nil {
				errCh <- err
			}
		}(seat)
	}
	wg.Wait()
	close(errCh)

	failed := 0
	var firstErr error
	for err := range errCh {
		if firstErr == nil {
			firstErr = err
		}
		failed++
	}
	if failed > 0 {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Tạo ghế thất bại (%d/%d)", failed, len(seats)), firstErr)
	}

	if err := db.Exec(`UPDATE rooms SET capacity = ?, updated_at = NOW() WHERE id = ?`,
		len(seats), input.RoomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật sức chứa phòng", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Tạo thành công %d ghế", len(seats)),
		"created": len(seats),
	})
}

func GetSeatsByRoom(c *fiber.Ctx) error {
	roomId := c.Locals("inputId").(int)
	db := database.DB

	seats := []model.Seat{}
	if err := db.Raw(`SELECT id, room_id, "row", "column", seat_type, is_active, created_at, updated_at
		FROM seats WHERE room_id = ? ORDER BY "row", "column"`, roomId).Scan(&seats).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy dữ liệu", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, seats)
}

func EditSeat(c *fiber.Ctx) error {
	seatId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditSeatInput)
	db := database.DB

	set := ""
	args := []any{}
	if input.SeatType != nil {
		set += "seat_type = ?"
		args = append(args, *input.SeatType)
	}
	if input.IsActive != nil {
		if set != "" {
			set += ", "
		}
		set += "is_active = ?"
		args = append(args, *input.IsActive)
	}
	if set == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không có trường nào để cập nhật", nil)
	}
	args = append(args, seatId)

	res := db.Exec(`UPDATE seats SET `+set+`, updated_at = NOW() WHERE id = ?`, args...)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật ghế", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Ghế không tồn tại", nil)
	}

	return c.JSON(fiber.Map{"message": "Cập nhật ghế thành công"})
}

func holdKey(showtimeId string, seatId uint) string {
	return fmt.Sprintf("hold:%s:%d", showtimeId, seatId)
}

func seatChannel(showtimeId string) string {
	return "seats:" + showtimeId
}

func publishSeatEvent(ctx context.Context, event model.SeatEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	database.Redis.Publish(ctx, seatChannel(event.ShowtimeId), payload)
}

// HoldSeats giữ ghế tạm thời trong Redis với TTL. Ghế đang bị giữ bởi
// session khác → nhả lại toàn bộ ghế vừa giữ và báo lỗi.
func HoldSeats(c *fiber.Ctx) error {
	input := c.Locals("input").(model.HoldSeatsInput)
	ctx := context.Background()

	heldBy := input.HeldBy
	if heldBy == "" {
		heldBy = "GUEST_" + uuid.New().String()
	}

	held := []uint{}
	for _, seatId := range input.SeatIds {
		ok, err := database.Redis.SetNX(ctx, holdKey(input.ShowtimeId, seatId), heldBy, HoldTimeout).Result()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể giữ ghế", err)
		}
		if !ok {
			for _, id := range held {
				database.Redis.Del(ctx, holdKey(input.ShowtimeId, id))
				publishSeatEvent(ctx, model.SeatEvent{ShowtimeId: input.ShowtimeId, SeatId: id, Status: SeatAvailable})
			}
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				fmt.Sprintf("Ghế %d đã được giữ bởi người khác", seatId), nil)
		}
		held = append(held, seatId)
		publishSeatEvent(ctx, model.SeatEvent{ShowtimeId: input.ShowtimeId, SeatId: seatId, Status: SeatHeld, HeldBy: heldBy})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"heldSeatIds": held,
		"heldBy":      heldBy,
		"expiresAt":   time.Now().Add(HoldTimeout),
	})
}

func ReleaseSeats(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ReleaseSeatsInput)
	ctx := context.Background()

	released := []uint{}
	for _, seatId := range input.SeatIds {
		key := holdKey(input.ShowtimeId, seatId)
		owner, err := database.Redis.Get(ctx, key).Result()
		if err != nil || owner != input.HeldBy {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				fmt.Sprintf("Ghế %d không được giữ bởi bạn", seatId), nil)
		}
		database.Redis.Del(ctx, key)
		released = append(released, seatId)
		publishSeatEvent(ctx, model.SeatEvent{ShowtimeId: input.ShowtimeId, SeatId: seatId, Status: SeatAvailable})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"releasedSeatIds": released,
	})
}
