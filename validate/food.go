package validate

import (
	"fmt"

	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
)

func CreateFoodItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFoodItemInput
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

func CreateFoodBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFoodBookingInput
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
		if len(input.Items) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Đơn bắp nước phải có ít nhất một món",
			})
		}
		for _, line := range input.Items {
			if line.Quantity <= 0 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("Số lượng món %d không hợp lệ", line.FoodItemId),
				})
			}
		}

		c.Locals("input", input)
		return c.Next()
	}
}
