package handler

import (
	"context"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateShowtime xếp một suất chiếu mới. Toàn bộ nghiệp vụ (kiểm tra phim,
// phòng thuộc rạp, xung đột khung giờ) nằm trong helper.ScheduleShowtime.
func CreateShowtime(c *fiber.Ctx) error {
	var input model.CreateShowtimeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	showtime, err := helper.ScheduleShowtime(ctx,
		helper.NewMongoMovieCatalog(database.Movies()),
		helper.NewSQLTheaterDirectory(database.DB),
		helper.NewMongoShowtimeStore(database.Showtimes()),
		input,
	)
	if err != nil {
		return utils.ErrorResponse(c, helper.StatusOf(err), err.Error(), nil)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Tạo lịch chiếu thành công",
		"showtime": showtime,
	})
}

func GetShowtimes(c *fiber.Ctx) error {
	filterInput := new(model.FilterShowtimeInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	filter := bson.M{}
	if filterInput.MovieId != "" {
		filter["movie.id"] = filterInput.MovieId
	}
	if filterInput.TheaterId > 0 {
		filter["theater.id"] = filterInput.TheaterId
	}
	if filterInput.RoomId > 0 {
		filter["room.id"] = filterInput.RoomId
	}
	if filterInput.Date != "" {
		filter["date"] = filterInput.Date
	}
	if filterInput.Status != "" {
		filter["status"] = filterInput.Status
	}

	total, err := database.Showtimes().CountDocuments(ctx, filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể đếm dữ liệu", err)
	}
	if total == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không có lịch chiếu nào", nil)
	}

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	if skip, limit := utils.PageWindow(filterInput.Limit, filterInput.Page); limit > 0 {
		opts = opts.SetSkip(skip).SetLimit(limit)
	}

	cursor, err := database.Showtimes().Find(ctx, filter, opts)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy dữ liệu", err)
	}
	showtimes := []model.Showtime{}
	if err := cursor.All(ctx, &showtimes); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể đọc dữ liệu", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       showtimes,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: total,
	})
}

// UpdateShowtimePrices cập nhật giá vé hàng loạt cho các suất được chọn.
func UpdateShowtimePrices(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UpdateShowtimePricesInput)

	if input.PriceRegular == nil && input.PriceVIP == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cần ít nhất một giá mới (priceRegular hoặc priceVip)", nil)
	}

	ids := make([]primitive.ObjectID, 0, len(input.ShowtimeIds))
	for _, id := range input.ShowtimeIds {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "showtimeId không hợp lệ: "+id, err)
		}
		ids = append(ids, oid)
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.PriceRegular != nil {
		set["priceRegular"] = *input.PriceRegular
	}
	if input.PriceVIP != nil {
		set["priceVip"] = *input.PriceVIP
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	res, err := database.Showtimes().UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": set},
	)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật giá", err)
	}

	return c.JSON(fiber.Map{
		"message":  "Cập nhật giá thành công",
		"modified": res.ModifiedCount,
	})
}

func DeleteShowtime(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("showtimeId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Lịch chiếu không tồn tại", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	res, err := database.Showtimes().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xoá lịch chiếu", err)
	}
	if res.DeletedCount == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Lịch chiếu không tồn tại", nil)
	}

	return c.JSON(fiber.Map{"message": "Xoá lịch chiếu thành công"})
}
