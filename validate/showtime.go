package validate

import (
	"fmt"

	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
)

func UpdateShowtimePrices() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateShowtimePricesInput
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
		if len(input.ShowtimeIds) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Danh sách suất chiếu không được để trống",
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}
