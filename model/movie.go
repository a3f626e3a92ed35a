package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Genres      []string           `bson:"genres" json:"genres"`
	Duration    int                `bson:"duration" json:"duration"` // phút
	Director    string             `bson:"director" json:"director"`
	Cast        []string           `bson:"cast" json:"cast"`
	PosterUrl   string             `bson:"posterUrl" json:"posterUrl"`
	TrailerUrl  string             `bson:"trailerUrl" json:"trailerUrl"`
	Rating      string             `bson:"rating" json:"rating"` // P, C13, C16, C18
	ReleaseDate time.Time          `bson:"releaseDate" json:"releaseDate"`
	EndDate     *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Status      string             `bson:"status" json:"status"` // COMING_SOON, NOW_SHOWING, ENDED
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MovieRef là phần thông tin phim mà Schedule service cần khi xếp lịch.
type MovieRef struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"`
}

type CreateMovieInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Genres      []string `json:"genres" validate:"required,min=1"`
	Duration    int      `json:"duration" validate:"required,gt=0"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	PosterUrl   string   `json:"posterUrl"`
	TrailerUrl  string   `json:"trailerUrl"`
	Rating      string   `json:"rating" validate:"omitempty,oneof=P C13 C16 C18"`
	ReleaseDate string   `json:"releaseDate" validate:"required"` // YYYY-MM-DD
	EndDate     string   `json:"endDate"`
}

type EditMovieInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Genres      *[]string `json:"genres"`
	Duration    *int      `json:"duration" validate:"omitempty,gt=0"`
	Director    *string   `json:"director"`
	Cast        *[]string `json:"cast"`
	PosterUrl   *string   `json:"posterUrl"`
	TrailerUrl  *string   `json:"trailerUrl"`
	Rating      *string   `json:"rating" validate:"omitempty,oneof=P C13 C16 C18"`
	Status      *string   `json:"status" validate:"omitempty,oneof=COMING_SOON NOW_SHOWING ENDED"`
}

type FilterMovieInput struct {
	Pagination
	Status    string `query:"status"`
	Genre     string `query:"genre"`
	SearchKey string `query:"searchKey"`
}
