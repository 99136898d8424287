package movie

type MovieReq struct {
	Title           string  `json:"title" validate:"required,min=5,max=255"`
	Description     string  `json:"description" validate:"omitempty,max=2000"`
	GenreID         int64   `json:"genre_id" validate:"required,gt=0"`
	NumberInStock   int     `json:"number_in_stock" validate:"gte=0,lte=255"`
	DailyRentalRate float64 `json:"daily_rental_rate" validate:"gte=0,lte=255"`
	CoverPath       *string `json:"cover_path" validate:"omitempty,max=512"`
	TrailerPath     *string `json:"trailer_path" validate:"omitempty,max=512"`
}
