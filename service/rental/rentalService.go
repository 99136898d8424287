package rentalsvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"movierental/model"
	rrepo "movierental/repository/rental"
	"movierental/util/metrics"
)

// errors used by controllers

type ErrCode string

const (
	ErrUserNotFound    ErrCode = "USER_NOT_FOUND"
	ErrMovieNotFound   ErrCode = "MOVIE_NOT_FOUND"
	ErrRentalNotFound  ErrCode = "RENTAL_NOT_FOUND"
	ErrOutOfStock      ErrCode = "OUT_OF_STOCK"
	ErrAlreadyReturned ErrCode = "ALREADY_RETURNED"
	ErrConflict        ErrCode = "CONFLICT"
	ErrUnavailable     ErrCode = "UNAVAILABLE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// maxPenaltyDays bounds the late-return point penalty: a return after more
// than this many whole days keeps the points earned at open time.
const maxPenaltyDays = 30

// pointsPerRental is earned at open and paid back on a timely return.
const pointsPerRental = 2

type Repo = rrepo.Repo

// Service is the rental ledger: it owns the open/return lifecycle and the
// pricing of a rental, over a user, a movie, and the rentals table.
type Service interface {
	// Quote prices a rental without side effects.
	Quote(ctx context.Context, userID, movieID int64) (float64, error)

	// Open creates a rental: snapshot, stock decrement, points reward.
	// A non-nil requestedFee overrides the quoted fee.
	Open(ctx context.Context, userID, movieID int64, requestedFee *float64) (*model.Rental, error)

	// Return closes the unique open rental for the pair.
	Return(ctx context.Context, userID, movieID int64) (*model.Rental, error)

	// History
	ListAll(ctx context.Context) ([]model.Rental, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Rental, error)
	Detail(ctx context.Context, rentalID int64) (*model.Rental, error)
}

type service struct {
	r     Repo
	price Policy
	now   func() time.Time
}

func New(r Repo, price Policy) Service {
	return &service{r: r, price: price, now: time.Now}
}

func (s *service) Quote(ctx context.Context, userID, movieID int64) (float64, error) {
	user, err := s.r.GetUser(ctx, userID)
	if err != nil {
		return 0, mapLookupErr(err, ErrUserNotFound)
	}
	movie, err := s.r.GetMovie(ctx, movieID)
	if err != nil {
		return 0, mapLookupErr(err, ErrMovieNotFound)
	}
	return s.price(user.Points, movie.DailyRentalRate), nil
}

func (s *service) Open(ctx context.Context, userID, movieID int64, requestedFee *float64) (*model.Rental, error) {
	var rental *model.Rental
	err := withRetry(ctx, func() error {
		rental = nil
		return s.r.WithinTx(ctx, func(tx *sql.Tx) error {
			user, err := s.r.LockUser(ctx, tx, userID)
			if err != nil {
				return mapLookupErr(err, ErrUserNotFound)
			}
			movie, err := s.r.LockMovie(ctx, tx, movieID)
			if err != nil {
				return mapLookupErr(err, ErrMovieNotFound)
			}

			ok, err := s.r.DecrementStock(ctx, tx, movieID)
			if err != nil {
				return err
			}
			if !ok {
				return makeErr(ErrOutOfStock)
			}

			fee := s.price(user.Points, movie.DailyRentalRate)
			if requestedFee != nil {
				fee = *requestedFee
			}

			rn := &model.Rental{
				UserID:           user.ID,
				UserName:         user.Name,
				UserPhone:        user.Phone,
				MovieID:          movie.ID,
				MovieTitle:       movie.Title,
				MovieDescription: movie.Description,
				RentalFee:        fee,
			}
			if err := s.r.InsertRental(ctx, tx, rn); err != nil {
				return err
			}
			if err := s.r.AddHolding(ctx, tx, user.ID, movie.ID, rn.ID); err != nil {
				return err
			}
			if err := s.r.AdjustPoints(ctx, tx, user.ID, pointsPerRental); err != nil {
				return err
			}
			rental = rn
			return nil
		})
	})
	if err != nil {
		metrics.LedgerErrorsTotal.WithLabelValues("open", string(Code(err))).Inc()
		return nil, err
	}
	metrics.RentalsOpenedTotal.Inc()
	return rental, nil
}

func (s *service) Return(ctx context.Context, userID, movieID int64) (*model.Rental, error) {
	var rental *model.Rental
	err := withRetry(ctx, func() error {
		rental = nil
		return s.r.WithinTx(ctx, func(tx *sql.Tx) error {
			open, err := s.r.OpenRentalsForUpdate(ctx, tx, userID, movieID)
			if err != nil {
				return err
			}
			switch {
			case len(open) > 1:
				return makeErr(ErrConflict)
			case len(open) == 0:
				returned, err := s.r.HasReturnedRental(ctx, tx, userID, movieID)
				if err != nil {
					return err
				}
				if returned {
					return makeErr(ErrAlreadyReturned)
				}
				return makeErr(ErrRentalNotFound)
			}
			rn := open[0]

			now := s.now().UTC()
			ok, err := s.r.MarkReturned(ctx, tx, rn.ID, now)
			if err != nil {
				return err
			}
			if !ok {
				return makeErr(ErrAlreadyReturned)
			}
			rn.DateReturned = &now

			// Whole days out, truncated toward zero. Stale returns keep
			// the points earned at open time.
			rentalDays := int(now.Sub(rn.DateOut).Hours() / 24)
			if rentalDays <= maxPenaltyDays {
				if err := s.r.AdjustPoints(ctx, tx, userID, -pointsPerRental); err != nil {
					return err
				}
			}

			if err := s.r.IncrementStock(ctx, tx, movieID); err != nil {
				return err
			}
			if err := s.r.RemoveHolding(ctx, tx, userID, movieID); err != nil {
				return err
			}
			rental = &rn
			return nil
		})
	})
	if err != nil {
		metrics.LedgerErrorsTotal.WithLabelValues("return", string(Code(err))).Inc()
		return nil, err
	}
	metrics.RentalsReturnedTotal.Inc()
	return rental, nil
}

func (s *service) ListAll(ctx context.Context) ([]model.Rental, error) {
	return s.r.ListAll(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]model.Rental, error) {
	return s.r.ListByUser(ctx, userID)
}

func (s *service) Detail(ctx context.Context, rentalID int64) (*model.Rental, error) {
	rn, err := s.r.ByID(ctx, rentalID)
	if err != nil {
		return nil, mapLookupErr(err, ErrRentalNotFound)
	}
	return rn, nil
}

func mapLookupErr(err error, missing ErrCode) error {
	if errors.Is(err, sql.ErrNoRows) {
		return makeErr(missing)
	}
	return err
}
