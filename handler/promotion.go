package handler

import (
	"context"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func CreatePromotion(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreatePromotionInput)

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	count, err := database.Promotions().CountDocuments(ctx, bson.M{"code": input.Code})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể kiểm tra mã khuyến mãi", err)
	}
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Mã khuyến mãi đã tồn tại", nil)
	}

	startDate, err := utils.ParseDate(input.StartDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "startDate sai định dạng (YYYY-MM-DD)", err)
	}
	endDate, err := utils.ParseDate(input.EndDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "endDate sai định dạng (YYYY-MM-DD)", err)
	}
	if endDate.Before(startDate) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "endDate phải sau startDate", nil)
	}

	now := time.Now()
	promotion := model.Promotion{
		Code:          input.Code,
		Name:          input.Name,
		Description:   input.Description,
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		StartDate:     startDate,
		EndDate:       endDate,
		MaxUsage:      input.MaxUsage,
		Status:        constants.PROMOTION_ACTIVE,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res, err := database.Promotions().InsertOne(ctx, promotion)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo khuyến mãi", err)
	}
	promotion.ID = res.InsertedID.(primitive.ObjectID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Tạo khuyến mãi thành công",
		"promotion": promotion,
	})
}

func GetPromotions(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := database.Promotions().Find(ctx, filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy dữ liệu", err)
	}
	promotions := []model.Promotion{}
	if err := cursor.All(ctx, &promotions); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể đọc dữ liệu", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promotions)
}

// GetPromotionByCode kiểm tra một mã khuyến mãi còn áp dụng được không.
func GetPromotionByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	var promotion model.Promotion
	if err := database.Promotions().FindOne(ctx, bson.M{"code": code}).Decode(&promotion); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Mã khuyến mãi không tồn tại", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy dữ liệu", err)
	}

	now := time.Now()
	if promotion.Status != constants.PROMOTION_ACTIVE ||
		now.Before(promotion.StartDate) || now.After(promotion.EndDate) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Mã khuyến mãi đã hết hạn hoặc chưa có hiệu lực", nil)
	}
	if promotion.MaxUsage > 0 && promotion.UsedCount >= promotion.MaxUsage {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Mã khuyến mãi đã hết lượt sử dụng", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promotion)
}

func EditPromotion(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditPromotionInput)
	promotion := c.Locals("promotion").(model.Promotion)

	if err := copier.CopyWithOption(&promotion, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật khuyến mãi", err)
	}
	promotion.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	if _, err := database.Promotions().ReplaceOne(ctx, bson.M{"_id": promotion.ID}, promotion); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật khuyến mãi", err)
	}

	return c.JSON(fiber.Map{
		"message":   "Cập nhật khuyến mãi thành công",
		"promotion": promotion,
	})
}

func DeletePromotion(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("promotionId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Khuyến mãi không tồn tại", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	res, err := database.Promotions().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xoá khuyến mãi", err)
	}
	if res.DeletedCount == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Khuyến mãi không tồn tại", nil)
	}

	return c.JSON(fiber.Map{"message": "Xoá khuyến mãi thành công"})
}
