package helper

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var movieScheduler gocron.Scheduler

// AutoUpdateMovieStatus chuyển trạng thái phim theo ngày khởi chiếu/kết thúc:
// COMING_SOON → NOW_SHOWING khi đến ngày chiếu, NOW_SHOWING → ENDED khi qua
// ngày kết thúc.
func AutoUpdateMovieStatus() {
	log.Println("[CRON] AutoUpdateMovieStatus triggered")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := time.Now().In(utils.ICT).Truncate(24 * time.Hour)

	res, err := database.Movies().UpdateMany(ctx,
		bson.M{
			"status":      constants.MOVIE_COMING_SOON,
			"releaseDate": bson.M{"$lte": today},
		},
		bson.M{"$set": bson.M{"status": constants.MOVIE_NOW_SHOWING, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Printf("Lỗi cập nhật trạng thái phim: %v", err)
		return
	}
	if res.ModifiedCount > 0 {
		log.Printf("Chuyển %d phim sang NOW_SHOWING", res.ModifiedCount)
	}

	res, err = database.Movies().UpdateMany(ctx,
		bson.M{
			"status":  constants.MOVIE_NOW_SHOWING,
			"endDate": bson.M{"$lt": today},
		},
		bson.M{"$set": bson.M{"status": constants.MOVIE_ENDED, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Printf("Lỗi cập nhật trạng thái phim: %v", err)
		return
	}
	if res.ModifiedCount > 0 {
		log.Printf("Chuyển %d phim sang ENDED", res.ModifiedCount)
	}
}

func StartMovieStatusScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(utils.ICT),
	)
	if err != nil {
		log.Fatal(err)
	}

	movieScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateMovieStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Movie status scheduler started (00:05 ICT)")
}

func StopMovieStatusScheduler() {
	if movieScheduler != nil {
		_ = movieScheduler.Shutdown()
	}
}

// GenerateUniqueMovieSlug tạo slug từ tên phim, thêm hậu tố -1, -2...
// nếu đã có phim trùng slug.
func GenerateUniqueMovieSlug(ctx context.Context, col *mongo.Collection, title string) string {
	base := slug.Make(title)
	result := base
	i := 1

	for {
		count, err := col.CountDocuments(ctx, bson.M{"slug": result})
		if err != nil || count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
