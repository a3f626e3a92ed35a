package helper

import (
	"context"
	"testing"
	"time"

	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMovieCatalog struct {
	movies map[string]*model.MovieRef
}

func (f *fakeMovieCatalog) FetchMovieById(ctx context.Context, id string) (*model.MovieRef, error) {
	return f.movies[id], nil
}

type fakeTheaterDirectory struct {
	theaters map[uint]*model.TheaterSnapshot
	rooms    map[uint][]model.RoomRef
}

func (f *fakeTheaterDirectory) FetchTheaterById(ctx context.Context, theaterId uint) (*model.TheaterSnapshot, error) {
	return f.theaters[theaterId], nil
}

func (f *fakeTheaterDirectory) FetchRoomsByTheater(ctx context.Context, theaterId uint) ([]model.RoomRef, error) {
	return f.rooms[theaterId], nil
}

// fakeShowtimeStore coi một suất đã có sẵn trong phòng và đếm chồng lấn
// theo cùng quy tắc nửa mở [start, end).
type fakeShowtimeStore struct {
	existingStart time.Time
	existingEnd   time.Time
	existingRoom  uint
	existingDate  string
	inserted      *model.Showtime
}

func (f *fakeShowtimeStore) CountOverlapping(ctx context.Context, roomId uint, date string, start, end time.Time) (int64, error) {
	if f.existingRoom == roomId && f.existingDate == date &&
		f.existingStart.Before(end) && f.existingEnd.After(start) {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeShowtimeStore) Insert(ctx context.Context, st *model.Showtime) error {
	f.inserted = st
	return nil
}

func scheduleFixture() (*fakeMovieCatalog, *fakeTheaterDirectory, *fakeShowtimeStore) {
	catalog := &fakeMovieCatalog{movies: map[string]*model.MovieRef{
		"68b0f2a1c3d4e5f6a7b8c9d0": {Id: "68b0f2a1c3d4e5f6a7b8c9d0", Title: "Mai", Duration: 120},
	}}
	theaters := &fakeTheaterDirectory{
		theaters: map[uint]*model.TheaterSnapshot{1: {Id: 1, Name: "CGV Vincom"}},
		rooms: map[uint][]model.RoomRef{
			1: {{Id: 10, Name: "P1", Type: "2D"}, {Id: 11, Name: "P2", Type: "IMAX"}},
		},
	}
	store := &fakeShowtimeStore{}
	return catalog, theaters, store
}

func validInput() model.CreateShowtimeInput {
	return model.CreateShowtimeInput{
		TheaterId:    1,
		RoomId:       10,
		MovieId:      "68b0f2a1c3d4e5f6a7b8c9d0",
		Date:         "2026-09-01",
		StartTime:    "18:00",
		PriceRegular: 90000,
		PriceVIP:     120000,
		ShowtimeType: "2D",
	}
}

func TestScheduleShowtimeMissingFields(t *testing.T) {
	catalog, theaters, store := scheduleFixture()

	_, err := ScheduleShowtime(context.Background(), catalog, theaters, store, model.CreateShowtimeInput{})
	assert.ErrorIs(t, err, ErrInvalidShowtimeInput)
	assert.Contains(t, err.Error(), "theaterId")
	assert.Contains(t, err.Error(), "movieId")
	assert.Equal(t, fiber.StatusBadRequest, StatusOf(err))
	assert.Nil(t, store.inserted)
}

func TestScheduleShowtimeMovieNotFound(t *testing.T) {
	catalog, theaters, store := scheduleFixture()
	input := validInput()
	input.MovieId = "68b0f2a1c3d4e5f6a7b8c9ff"

	_, err := ScheduleShowtime(context.Background(), catalog, theaters, store, input)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.Equal(t, fiber.StatusBadRequest, StatusOf(err))
}

func TestScheduleShowtimeRoomNotInTheater(t *testing.T) {
	catalog, theaters, store := scheduleFixture()
	input := validInput()
	input.RoomId = 99

	_, err := ScheduleShowtime(context.Background(), catalog, theaters, store, input)
	assert.ErrorIs(t, err, ErrRoomNotInTheater)
	assert.Equal(t, fiber.StatusBadRequest, StatusOf(err))
}

func TestScheduleShowtimeConflict(t *testing.T) {
	catalog, theaters, store := scheduleFixture()

	// Suất đã có: 17:00–19:00 cùng phòng cùng ngày, suất mới 18:00 đè lên
	store.existingRoom = 10
	store.existingDate = "2026-09-01"
	store.existingStart, _ = utils.ParseDateTime("2026-09-01", "17:00")
	store.existingEnd, _ = utils.ParseDateTime("2026-09-01", "19:00")

	_, err := ScheduleShowtime(context.Background(), catalog, theaters, store, validInput())
	assert.ErrorIs(t, err, ErrShowtimeConflict)
	assert.Equal(t, fiber.StatusConflict, StatusOf(err))
	assert.Nil(t, store.inserted)
}

func TestScheduleShowtimeTouchingEdgesAllowed(t *testing.T) {
	catalog, theaters, store := scheduleFixture()

	// Suất đã có kết thúc đúng 18:00, suất mới bắt đầu 18:00 → không trùng
	store.existingRoom = 10
	store.existingDate = "2026-09-01"
	store.existingStart, _ = utils.ParseDateTime("2026-09-01", "16:00")
	store.existingEnd, _ = utils.ParseDateTime("2026-09-01", "18:00")

	showtime, err := ScheduleShowtime(context.Background(), catalog, theaters, store, validInput())
	require.NoError(t, err)
	assert.NotNil(t, store.inserted)
	assert.Equal(t, constants.SHOWTIME_SCHEDULED, showtime.Status)
}

func TestScheduleShowtimeOtherRoomSameSlot(t *testing.T) {
	catalog, theaters, store := scheduleFixture()

	// Cùng khung giờ nhưng khác phòng → xếp bình thường
	store.existingRoom = 11
	store.existingDate = "2026-09-01"
	store.existingStart, _ = utils.ParseDateTime("2026-09-01", "18:00")
	store.existingEnd, _ = utils.ParseDateTime("2026-09-01", "20:00")

	_, err := ScheduleShowtime(context.Background(), catalog, theaters, store, validInput())
	require.NoError(t, err)
}

func TestScheduleShowtimeSuccess(t *testing.T) {
	catalog, theaters, store := scheduleFixture()

	showtime, err := ScheduleShowtime(context.Background(), catalog, theaters, store, validInput())
	require.NoError(t, err)

	assert.Equal(t, "Mai", showtime.Movie.Title)
	assert.Equal(t, 120, showtime.Movie.Duration)
	assert.Equal(t, "CGV Vincom", showtime.Theater.Name)
	assert.Equal(t, "P1", showtime.Room.Name)
	assert.Equal(t, "2026-09-01", showtime.Date)

	// endTime = startTime + thời lượng phim
	assert.Equal(t, 2*time.Hour, showtime.EndTime.Sub(showtime.StartTime))
	assert.Equal(t, 18, showtime.StartTime.In(utils.ICT).Hour())
	assert.Equal(t, constants.SHOWTIME_SCHEDULED, showtime.Status)
	assert.Equal(t, store.inserted, showtime)
}
