package utils

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   message,
		"details": errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}
	return query
}

// PageWindow quy đổi limit/page sang skip+limit cho truy vấn Mongo.
func PageWindow(limit, page *int) (int64, int64) {
	if limit == nil || *limit <= 0 || page == nil || *page < 1 {
		return 0, 0
	}
	return int64(*limit) * int64(*page-1), int64(*limit)
}

func Ptr[T any](v T) *T {
	return &v
}
