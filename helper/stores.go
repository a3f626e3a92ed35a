package helper

import (
	"context"
	"errors"
	"time"

	"cinema_booking/constants"
	"cinema_booking/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SQLPaymentStore đọc/ghi bảng bookings, food_bookings, users
// bằng SQL tham số hoá trên pool Postgres.
type SQLPaymentStore struct {
	db *gorm.DB
}

func NewSQLPaymentStore(db *gorm.DB) *SQLPaymentStore {
	return &SQLPaymentStore{db: db}
}

func (s *SQLPaymentStore) GetBooking(id uint) (*model.Booking, error) {
	var b model.Booking
	res := s.db.Raw(`SELECT id, user_id, showtime_id, seat_labels, total_price, status
		FROM bookings WHERE id = ?`, id).Scan(&b)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &b, nil
}

func (s *SQLPaymentStore) GetFoodBooking(id uint) (*model.FoodBooking, error) {
	var fb model.FoodBooking
	res := s.db.Raw(`SELECT id, user_id, booking_id, items, total_price, status
		FROM food_bookings WHERE id = ?`, id).Scan(&fb)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &fb, nil
}

func (s *SQLPaymentStore) MarkBookingPaid(id uint) error {
	return s.db.Exec(`UPDATE bookings SET status = ?, updated_at = NOW() WHERE id = ?`,
		constants.BOOKING_PAID, id).Error
}

func (s *SQLPaymentStore) MarkFoodBookingPaid(id uint) error {
	return s.db.Exec(`UPDATE food_bookings SET status = ?, updated_at = NOW() WHERE id = ?`,
		constants.BOOKING_PAID, id).Error
}

func (s *SQLPaymentStore) AddUserPoints(userId uint, delta int) error {
	return s.db.Exec(`UPDATE users SET points = points + ?, updated_at = NOW() WHERE id = ?`,
		delta, userId).Error
}

// GetUser dùng sau khi xác nhận thành công để lấy email gửi thông báo.
func (s *SQLPaymentStore) GetUser(id uint) (*model.User, error) {
	var u model.User
	res := s.db.Raw(`SELECT id, email, name, phone, points FROM users WHERE id = ?`, id).Scan(&u)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &u, nil
}

// SQLTheaterDirectory tra cứu rạp/phòng cho Schedule service.
type SQLTheaterDirectory struct {
	db *gorm.DB
}

func NewSQLTheaterDirectory(db *gorm.DB) *SQLTheaterDirectory {
	return &SQLTheaterDirectory{db: db}
}

func (d *SQLTheaterDirectory) FetchTheaterById(ctx context.Context, theaterId uint) (*model.TheaterSnapshot, error) {
	var t model.TheaterSnapshot
	res := d.db.WithContext(ctx).Raw(`SELECT id, name FROM theaters WHERE id = ?`, theaterId).Scan(&t)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &t, nil
}

func (d *SQLTheaterDirectory) FetchRoomsByTheater(ctx context.Context, theaterId uint) ([]model.RoomRef, error) {
	var rooms []model.RoomRef
	err := d.db.WithContext(ctx).Raw(`SELECT id, name, type FROM rooms
		WHERE theater_id = ? AND is_active = true`, theaterId).Scan(&rooms).Error
	return rooms, err
}

// MongoMovieCatalog đọc collection movies.
type MongoMovieCatalog struct {
	col *mongo.Collection
}

func NewMongoMovieCatalog(col *mongo.Collection) *MongoMovieCatalog {
	return &MongoMovieCatalog{col: col}
}

func (c *MongoMovieCatalog) FetchMovieById(ctx context.Context, id string) (*model.MovieRef, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// id sai định dạng coi như không tìm thấy phim
		return nil, nil
	}
	var m model.Movie
	if err := c.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &model.MovieRef{Id: id, Title: m.Title, Duration: m.Duration}, nil
}

// MongoShowtimeStore đọc/ghi collection showtimes.
type MongoShowtimeStore struct {
	col *mongo.Collection
}

func NewMongoShowtimeStore(col *mongo.Collection) *MongoShowtimeStore {
	return &MongoShowtimeStore{col: col}
}

// CountOverlapping đếm suất cùng phòng cùng ngày có khung giờ giao với
// [start, end): existing.startTime < end AND existing.endTime > start.
func (s *MongoShowtimeStore) CountOverlapping(ctx context.Context, roomId uint, date string, start, end time.Time) (int64, error) {
	filter := bson.M{
		"room.id":   roomId,
		"date":      date,
		"startTime": bson.M{"$lt": end},
		"endTime":   bson.M{"$gt": start},
	}
	return s.col.CountDocuments(ctx, filter)
}

func (s *MongoShowtimeStore) Insert(ctx context.Context, st *model.Showtime) error {
	now := time.Now()
	st.CreatedAt = now
	st.UpdatedAt = now
	res, err := s.col.InsertOne(ctx, st)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		st.ID = oid
	}
	return nil
}
