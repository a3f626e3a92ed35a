package helper

import (
	"context"
	"log"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

var scheduler *cron.Cron

func StartShowtimeScheduler() {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Chạy mỗi 5 phút
	_, err := scheduler.AddFunc("*/5 * * * *", updateExpiredShowtimes)
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler: %v", err)
		return
	}

	scheduler.Start()
	log.Println("Scheduler suất chiếu đã khởi động (mỗi 5 phút)")
}

func updateExpiredShowtimes() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := database.Showtimes().UpdateMany(ctx,
		bson.M{
			"status":  constants.SHOWTIME_SCHEDULED,
			"endTime": bson.M{"$lt": time.Now()},
		},
		bson.M{"$set": bson.M{
			"status":    constants.SHOWTIME_ENDED,
			"updatedAt": time.Now(),
		}},
	)
	if err != nil {
		log.Printf("Lỗi cập nhật suất chiếu: %v", err)
		return
	}

	if res.ModifiedCount > 0 {
		log.Printf("Đã cập nhật %d suất chiếu thành 'ended'", res.ModifiedCount)
	}
}

// Dừng scheduler khi tắt server
func StopShowtimeScheduler() {
	if scheduler != nil {
		scheduler.Stop()
		log.Println("Scheduler suất chiếu đã dừng")
	}
}
