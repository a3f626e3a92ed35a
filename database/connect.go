package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cinema_booking/config"
	"cinema_booking/model"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB    *gorm.DB        // Postgres: theaters, rooms, seats, users, bookings, food
	Mongo *mongo.Database // MongoDB: movies, promotions, showtimes
	Redis *redis.Client   // giữ ghế + pub/sub trạng thái ghế
)

// ConnectDB mở kết nối Postgres và migrate các bảng quan hệ.
func ConnectDB() {
	var err error
	p := config.ConfigDefault("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Theater{},
		&model.Room{},
		&model.Seat{},
		&model.User{},
		&model.Booking{},
		&model.FoodItem{},
		&model.FoodBooking{},
	)
	fmt.Println("Database Migrated")

	// khởi tạo dữ liệu
	SeedData(DB)
}

// ConnectMongo mở kết nối MongoDB cho các service dạng document.
func ConnectMongo() {
	uri := config.ConfigDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := config.ConfigDefault("MONGO_DB", "cinema_booking")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		panic("failed to connect MongoDB: " + err.Error())
	}
	if err := client.Ping(ctx, nil); err != nil {
		panic("failed to ping MongoDB: " + err.Error())
	}

	Mongo = client.Database(dbName)
	fmt.Println("✅ MongoDB connected successfully")
}

// ConnectRedis khởi tạo client Redis dùng cho giữ ghế.
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Redis.Ping(ctx).Err(); err != nil {
		fmt.Println("⚠️ Redis chưa sẵn sàng:", err)
		return
	}
	fmt.Println("✅ Redis connected successfully")
}

func Movies() *mongo.Collection     { return Mongo.Collection("movies") }
func Promotions() *mongo.Collection { return Mongo.Collection("promotions") }
func Showtimes() *mongo.Collection  { return Mongo.Collection("showtimes") }
