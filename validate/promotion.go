package validate

import (
	"context"
	"fmt"
	"time"

	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func CreatePromotion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePromotionInput
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

func EditPromotion(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		oid, err := primitive.ObjectIDFromHex(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Khuyến mãi không tồn tại", err)
		}

		var input model.EditPromotionInput
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

		// Kiểm tra khuyến mãi tồn tại
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var promotion model.Promotion
		if err := database.Promotions().FindOne(ctx, bson.M{"_id": oid}).Decode(&promotion); err != nil {
			if err == mongo.ErrNoDocuments {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Khuyến mãi không tồn tại", nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy dữ liệu", err)
		}

		c.Locals("input", input)
		c.Locals("promotion", promotion)
		return c.Next()
	}
}
