package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	IsGold       bool      `json:"is_gold"`
	Points       int       `json:"points"`
	Age          int       `json:"age"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterReq represents user registration payload
// swagger:model RegisterReq
type RegisterReq struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5,max=255"`
	Age      int    `json:"age" validate:"omitempty,gte=0,lte=130"`
}

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegistrationStat is one bucket of the admin per-month signup report.
type RegistrationStat struct {
	Month time.Month `json:"month"`
	Year  int        `json:"year"`
	Total int64      `json:"total"`
}

// WatchlistItem is a movie reference on a user's watchlist.
type WatchlistItem struct {
	MovieID int64     `json:"movie_id"`
	Title   string    `json:"title"`
	AddedAt time.Time `json:"added_at"`
}
