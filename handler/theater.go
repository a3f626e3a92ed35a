package handler

import (
	"context"

	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTheater(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTheaterInput)
	db := database.DB

	var theater model.Theater
	res := db.Raw(`INSERT INTO theaters (name, city, address, hotline, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, true, NOW(), NOW())
		RETURNING id, name, city, address, hotline, is_active, created_at, updated_at`,
		input.Name, input.City, input.Address, input.Hotline).Scan(&theater)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo rạp", res.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tạo rạp thành công",
		"theater": theater,
	})
}

func GetTheaters(c *fiber.Ctx) error {
	filterInput := new(model.FilterTheaterInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu đầu vào không hợp lệ", err)
	}
	db := database.DB

	query := `SELECT id, name, city, address, hotline, is_active, created_at, updated_at
		FROM theaters WHERE is_active = true`
	args := []any{}
	if filterInput.City != "" {
		query += ` AND city = ?`
		args = append(args, filterInput.City)
	}
	if filterInput.SearchKey != "" {
		query += ` AND name ILIKE ?`
		args = append(args, "%"+filterInput.SearchKey+"%")
	}
	query += ` ORDER BY name`

	if filterInput.Limit != nil && *filterInput.Limit > 0 && filterInput.Page != nil && *filterInput.Page >= 1 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, *filterInput.Limit, *filterInput.Limit*(*filterInput.Page-1))
	}

	theaters := []model.Theater{}
	if err := db.Raw(query, args...).Scan(&theaters).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy dữ liệu", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, theaters)
}

func GetTheaterById(c *fiber.Ctx) error {
	theaterId := c.Locals("inputId").(int)
	db := database.DB

	var theater model.Theater
	res := db.Raw(`SELECT id, name, city, address, hotline, is_active, created_at, updated_at
		FROM theaters WHERE id = ?`, theaterId).Scan(&theater)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy dữ liệu", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Rạp không tồn tại", nil)
	}

	if err := db.Raw(`SELECT id, theater_id, name, type, capacity, is_active, created_at, updated_at
		FROM rooms WHERE theater_id = ? ORDER BY name`, theaterId).Scan(&theater.Rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy danh sách phòng", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, theater)
}

func EditTheater(c *fiber.Ctx) error {
	theaterId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditTheaterInput)
	db := database.DB

	set := ""
	args := []any{}
	appendSet := func(col string, v any) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, v)
	}
	if input.Name != nil {
		appendSet("name", *input.Name)
	}
	if input.City != nil {
		appendSet("city", *input.City)
	}
	if input.Address != nil {
		appendSet("address", *input.Address)
	}
	if input.Hotline != nil {
		appendSet("hotline", *input.Hotline)
	}
	if input.IsActive != nil {
		appendSet("is_active", *input.IsActive)
	}
	if set == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không có trường nào để cập nhật", nil)
	}
	args = append(args, theaterId)

	res := db.Exec(`UPDATE theaters SET `+set+`, updated_at = NOW() WHERE id = ?`, args...)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật rạp", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Rạp không tồn tại", nil)
	}

	return c.JSON(fiber.Map{"message": "Cập nhật rạp thành công"})
}

func DeleteTheater(c *fiber.Ctx) error {
	theaterId := c.Locals("inputId").(int)
	db := database.DB

	res := db.Exec(`DELETE FROM theaters WHERE id = ?`, theaterId)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xoá rạp", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Rạp không tồn tại", nil)
	}

	return c.JSON(fiber.Map{"message": "Xoá rạp thành công"})
}

// GetRoomsByTheater là collaborator mà Schedule service dùng khi xếp lịch,
// đồng thời phơi ra cho client quản trị.
func GetRoomsByTheater(c *fiber.Ctx) error {
	theaterId := c.Locals("inputId").(int)

	directory := helper.NewSQLTheaterDirectory(database.DB)
	rooms, err := directory.FetchRoomsByTheater(context.Background(), uint(theaterId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy danh sách phòng", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

func CreateRoom(c *fiber.Ctx) error {
	theaterId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.CreateRoomInput)
	db := database.DB

	var exists int64
	if err := db.Raw(`SELECT COUNT(*) FROM theaters WHERE id = ?`, theaterId).Scan(&exists).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể kiểm tra rạp", err)
	}
	if exists == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Rạp không tồn tại", nil)
	}

	var room model.Room
	res := db.Raw(`INSERT INTO rooms (theater_id, name, type, capacity, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, true, NOW(), NOW())
		RETURNING id, theater_id, name, type, capacity, is_active, created_at, updated_at`,
		theaterId, input.Name, input.Type, input.Capacity).Scan(&room)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo phòng", res.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tạo phòng thành công",
		"room":    room,
	})
}
