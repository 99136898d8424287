package rental

type OpenRentalReq struct {
	UserID  int64 `json:"user_id" validate:"required,gt=0"`
	MovieID int64 `json:"movie_id" validate:"required,gt=0"`
	// RentalFee optionally carries a fee the surrounding workflow already
	// quoted; when absent the ledger quotes at open time.
	RentalFee *float64 `json:"rental_fee" validate:"omitempty,gte=0"`
}

type ReturnReq struct {
	UserID  int64 `json:"user_id" validate:"required,gt=0"`
	MovieID int64 `json:"movie_id" validate:"required,gt=0"`
}
