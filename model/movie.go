// model/movie.go
package model

import "time"

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Movie is the catalog record. Older revisions of the system disagreed on
// field names (price vs dailyRentalRate) and on which media fields exist;
// this is the consolidated shape, optional fields explicit.
type Movie struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	GenreID         int64     `json:"genre_id"`
	GenreName       string    `json:"genre_name,omitempty"`
	NumberInStock   int       `json:"number_in_stock"`
	DailyRentalRate float64   `json:"daily_rental_rate"`
	Likes           int       `json:"likes"`
	CoverPath       *string   `json:"cover_path,omitempty"`
	TrailerPath     *string   `json:"trailer_path,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
