package validate

import (
	"fmt"

	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
)

func GenerateSeats() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.GenerateSeatsInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Dải ghế VIP phải nằm trong số hàng
		if input.VipRowMin > 0 && input.VipRowMax >= input.VipRowMin && input.VipRowMax > input.Rows {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Dải hàng VIP vượt quá số hàng của phòng",
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditSeat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditSeatInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func HoldSeats() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.HoldSeatsInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if len(input.SeatIds) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Danh sách ghế cần giữ không được để trống",
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func ReleaseSeats() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ReleaseSeatsInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if len(input.SeatIds) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Danh sách ghế cần nhả không được để trống",
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}
