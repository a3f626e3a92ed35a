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
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoTimeout = 10 * time.Second

func CreateMovie(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateMovieInput)

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	releaseDate, err := utils.ParseDate(input.ReleaseDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "releaseDate sai định dạng (YYYY-MM-DD)", err)
	}

	status := constants.MOVIE_COMING_SOON
	if !releaseDate.After(time.Now().In(utils.ICT)) {
		status = constants.MOVIE_NOW_SHOWING
	}

	now := time.Now()
	movie := model.Movie{
		Title:       input.Title,
		Slug:        helper.GenerateUniqueMovieSlug(ctx, database.Movies(), input.Title),
		Description: input.Description,
		Genres:      input.Genres,
		Duration:    input.Duration,
		Director:    input.Director,
		Cast:        input.Cast,
		PosterUrl:   input.PosterUrl,
		TrailerUrl:  input.TrailerUrl,
		Rating:      input.Rating,
		ReleaseDate: releaseDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.EndDate != "" {
		endDate, err := utils.ParseDate(input.EndDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "endDate sai định dạng (YYYY-MM-DD)", err)
		}
		movie.EndDate = &endDate
	}

	res, err := database.Movies().InsertOne(ctx, movie)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo phim", err)
	}
	movie.ID = res.InsertedID.(primitive.ObjectID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tạo phim thành công",
		"movie":   movie,
	})
}

func GetMovies(c *fiber.Ctx) error {
	filterInput := new(model.FilterMovieInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	filter := bson.M{}
	if filterInput.Status != "" {
		filter["status"] = filterInput.Status
	}
	if filterInput.Genre != "" {
		filter["genres"] = filterInput.Genre
	}
	if filterInput.SearchKey != "" {
		filter["title"] = bson.M{"$regex": filterInput.SearchKey, "$options": "i"}
	}

	total, err := database.Movies().CountDocuments(ctx, filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể đếm dữ liệu", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "releaseDate", Value: -1}})
	if skip, limit := utils.PageWindow(filterInput.Limit, filterInput.Page); limit > 0 {
		opts = opts.SetSkip(skip).SetLimit(limit)
	}

	cursor, err := database.Movies().Find(ctx, filter, opts)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy dữ liệu", err)
	}
	movies := []model.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể đọc dữ liệu", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       movies,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: total,
	})
}

func GetMovieById(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("movieId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phim không tồn tại", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	var movie model.Movie
	if err := database.Movies().FindOne(ctx, bson.M{"_id": oid}).Decode(&movie); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Phim không tồn tại", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lấy dữ liệu", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func EditMovie(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditMovieInput)
	movie := c.Locals("movie").(model.Movie)

	if err := copier.CopyWithOption(&movie, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật phim", err)
	}
	movie.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	if _, err := database.Movies().ReplaceOne(ctx, bson.M{"_id": movie.ID}, movie); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật phim", err)
	}

	return c.JSON(fiber.Map{
		"message": "Cập nhật phim thành công",
		"movie":   movie,
	})
}

func DeleteMovie(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("movieId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phim không tồn tại", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	res, err := database.Movies().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể xoá phim", err)
	}
	if res.DeletedCount == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phim không tồn tại", nil)
	}

	return c.JSON(fiber.Map{"message": "Xoá phim thành công"})
}
