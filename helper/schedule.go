package helper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"
)

// MovieCatalog tra cứu phim từ Movie service. Trả (nil, nil) khi không có.
type MovieCatalog interface {
	FetchMovieById(ctx context.Context, id string) (*model.MovieRef, error)
}

// TheaterDirectory tra cứu rạp/phòng từ Theater service.
type TheaterDirectory interface {
	FetchTheaterById(ctx context.Context, theaterId uint) (*model.TheaterSnapshot, error)
	FetchRoomsByTheater(ctx context.Context, theaterId uint) ([]model.RoomRef, error)
}

// ShowtimeStore đếm suất chiếu chồng lấn và lưu suất mới.
type ShowtimeStore interface {
	CountOverlapping(ctx context.Context, roomId uint, date string, start, end time.Time) (int64, error)
	Insert(ctx context.Context, st *model.Showtime) error
}

// ScheduleShowtime xếp một suất chiếu mới: kiểm tra phim, kiểm tra phòng
// thuộc rạp, tính endTime từ thời lượng phim rồi từ chối nếu khung
// [startTime, endTime) chồng lấn suất đã có của cùng phòng trong ngày.
// Hai suất chạm mép (end == start suất kế) không tính là trùng.
func ScheduleShowtime(ctx context.Context, catalog MovieCatalog, theaters TheaterDirectory, store ShowtimeStore, input model.CreateShowtimeInput) (*model.Showtime, error) {
	if missing := input.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShowtimeInput, strings.Join(missing, ", "))
	}

	movie, err := catalog.FetchMovieById(ctx, input.MovieId)
	if err != nil {
		return nil, fmt.Errorf("tra cứu phim: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	rooms, err := theaters.FetchRoomsByTheater(ctx, input.TheaterId)
	if err != nil {
		return nil, fmt.Errorf("tra cứu phòng: %w", err)
	}
	var room *model.RoomRef
	for i := range rooms {
		if rooms[i].Id == input.RoomId {
			room = &rooms[i]
			break
		}
	}
	if room == nil {
		return nil, ErrRoomNotInTheater
	}

	startTime, err := utils.ParseDateTime(input.Date, input.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: date/startTime sai định dạng", ErrInvalidShowtimeInput)
	}
	endTime := startTime.Add(time.Duration(movie.Duration) * time.Minute)

	conflict, err := store.CountOverlapping(ctx, input.RoomId, input.Date, startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("kiểm tra xung đột lịch chiếu: %w", err)
	}
	if conflict > 0 {
		return nil, ErrShowtimeConflict
	}

	theater, err := theaters.FetchTheaterById(ctx, input.TheaterId)
	if err != nil {
		return nil, fmt.Errorf("tra cứu rạp: %w", err)
	}
	theaterSnap := model.TheaterSnapshot{Id: input.TheaterId}
	if theater != nil {
		theaterSnap = *theater
	}

	showtime := &model.Showtime{
		Movie:        model.MovieSnapshot{Id: movie.Id, Title: movie.Title, Duration: movie.Duration},
		Theater:      theaterSnap,
		Room:         model.RoomSnapshot{Id: room.Id, Name: room.Name, Type: room.Type},
		Date:         input.Date,
		StartTime:    startTime,
		EndTime:      endTime,
		PriceRegular: input.PriceRegular,
		PriceVIP:     input.PriceVIP,
		ShowtimeType: input.ShowtimeType,
		Status:       constants.SHOWTIME_SCHEDULED,
	}
	if err := store.Insert(ctx, showtime); err != nil {
		return nil, fmt.Errorf("lưu lịch chiếu: %w", err)
	}
	return showtime, nil
}
