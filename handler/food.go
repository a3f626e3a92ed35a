package handler

import (
	"encoding/json"
	"fmt"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateFoodItem(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateFoodItemInput)
	db := database.DB

	var item model.FoodItem
	res := db.Raw(`INSERT INTO food_items (name, category, price, image_url, is_available, created_at, updated_at)
		VALUES (?, ?, ?, ?, true, NOW(), NOW())
		RETURNING id, name, category, price, image_url, is_available, created_at, updated_at`,
		input.Name, input.Category, input.Price, input.ImageUrl).Scan(&item)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo món", res.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tạo món thành công",
		"food":    item,
	})
}

func GetFoodItems(c *fiber.Ctx) error {
	db := database.DB

	query := `SELECT id, name, category, price, image_url, is_available, created_at, updated_at
		FROM food_items WHERE is_available = true`
	args := []any{}
	if category := c.Query("category"); category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY category, name`

	items := []model.FoodItem{}
	if err := db.Raw(query, args...).Scan(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy dữ liệu", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

// CreateFoodBooking tạo đơn bắp nước PENDING, tính tổng tiền từ giá menu
// hiện tại nhân số lượng.
func CreateFoodBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateFoodBookingInput)
	db := database.DB

	var total float64
	for _, line := range input.Items {
		var price float64
		res := db.Raw(`SELECT price FROM food_items WHERE id = ? AND is_available = true`,
			line.FoodItemId).Scan(&price)
		if res.Error != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tra cứu món", res.Error)
		}
		if res.RowsAffected == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				fmt.Sprintf("Món %d không tồn tại hoặc đã ngừng bán", line.FoodItemId), nil)
		}
		total += price * float64(line.Quantity)
	}

	itemsJSON, err := json.Marshal(input.Items)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo đơn", err)
	}

	var booking model.FoodBooking
	res := db.Raw(`INSERT INTO food_bookings (user_id, booking_id, items, total_price, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
		RETURNING id, user_id, booking_id, items, total_price, status, created_at, updated_at`,
		input.UserId, input.BookingId, string(itemsJSON), total, constants.BOOKING_PENDING).Scan(&booking)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo đơn", res.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Tạo đơn bắp nước thành công",
		"foodBooking": booking,
	})
}

func GetFoodBookingById(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	db := database.DB

	var booking model.FoodBooking
	res := db.Raw(`SELECT id, user_id, booking_id, items, total_price, status, created_at, updated_at
		FROM food_bookings WHERE id = ?`, bookingId).Scan(&booking)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy dữ liệu", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Food booking không tồn tại", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}
