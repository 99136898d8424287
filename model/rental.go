// model/rental.go
package model

import "time"

// Rental embeds snapshots of the user and movie taken at open time. The
// snapshots are deliberate denormalization for historical record-keeping:
// later edits to the live User or Movie must not rewrite past rentals.
type Rental struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	UserName         string     `json:"user_name"`
	UserPhone        string     `json:"user_phone"`
	MovieID          int64      `json:"movie_id"`
	MovieTitle       string     `json:"movie_title"`
	MovieDescription string     `json:"movie_description"`
	RentalFee        float64    `json:"rental_fee"`
	DateOut          time.Time  `json:"date_out"`
	DateReturned     *time.Time `json:"date_returned,omitempty"`
}
