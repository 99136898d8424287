// repository/rental/repo.go
package rentalrepo

import (
	"context"
	"database/sql"
	"time"

	"movierental/model"
)

// Repo holds the ledger's queries. Everything that participates in an
// open/return transition takes the caller's *sql.Tx so the whole mutation
// commits or rolls back as one unit.
type Repo interface {
	WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error

	// Users & movies
	GetUser(ctx context.Context, userID int64) (*model.User, error)
	GetMovie(ctx context.Context, movieID int64) (*model.Movie, error)
	LockUser(ctx context.Context, tx *sql.Tx, userID int64) (*model.User, error)
	LockMovie(ctx context.Context, tx *sql.Tx, movieID int64) (*model.Movie, error)
	AdjustPoints(ctx context.Context, tx *sql.Tx, userID int64, delta int) error

	// Stock
	DecrementStock(ctx context.Context, tx *sql.Tx, movieID int64) (bool, error)
	IncrementStock(ctx context.Context, tx *sql.Tx, movieID int64) error

	// Holdings
	AddHolding(ctx context.Context, tx *sql.Tx, userID, movieID, rentalID int64) error
	RemoveHolding(ctx context.Context, tx *sql.Tx, userID, movieID int64) error

	// Rentals
	InsertRental(ctx context.Context, tx *sql.Tx, r *model.Rental) error
	OpenRentalsForUpdate(ctx context.Context, tx *sql.Tx, userID, movieID int64) ([]model.Rental, error)
	HasReturnedRental(ctx context.Context, tx *sql.Tx, userID, movieID int64) (bool, error)
	MarkReturned(ctx context.Context, tx *sql.Tx, rentalID int64, at time.Time) (bool, error)

	// History
	ListAll(ctx context.Context) ([]model.Rental, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Rental, error)
	ByID(ctx context.Context, rentalID int64) (*model.Rental, error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Users & movies

const userCols = `id, name, phone, email, password_hash, is_admin, is_gold, points, age, created_at`

func scanUser(s interface{ Scan(...any) error }) (*model.User, error) {
	u := &model.User{}
	err := s.Scan(&u.ID, &u.Name, &u.Phone, &u.Email, &u.PasswordHash,
		&u.IsAdmin, &u.IsGold, &u.Points, &u.Age, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, userID))
}

func (r *repo) LockUser(ctx context.Context, tx *sql.Tx, userID int64) (*model.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE id = $1 FOR UPDATE`
	return scanUser(tx.QueryRowContext(ctx, q, userID))
}

const movieCols = `id, title, description, genre_id, number_in_stock, daily_rental_rate`

func scanLedgerMovie(s interface{ Scan(...any) error }) (*model.Movie, error) {
	m := &model.Movie{}
	err := s.Scan(&m.ID, &m.Title, &m.Description, &m.GenreID, &m.NumberInStock, &m.DailyRentalRate)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repo) GetMovie(ctx context.Context, movieID int64) (*model.Movie, error) {
	const q = `SELECT ` + movieCols + ` FROM movies WHERE id = $1`
	return scanLedgerMovie(r.db.QueryRowContext(ctx, q, movieID))
}

func (r *repo) LockMovie(ctx context.Context, tx *sql.Tx, movieID int64) (*model.Movie, error) {
	const q = `SELECT ` + movieCols + ` FROM movies WHERE id = $1 FOR UPDATE`
	return scanLedgerMovie(tx.QueryRowContext(ctx, q, movieID))
}

func (r *repo) AdjustPoints(ctx context.Context, tx *sql.Tx, userID int64, delta int) error {
	// No floor: points are allowed to go negative.
	const q = `
		UPDATE users
		SET points = points + $2
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, userID, delta)
	return err
}

// Stock

func (r *repo) DecrementStock(ctx context.Context, tx *sql.Tx, movieID int64) (bool, error) {
	// Guard: only decrement while stock remains, so concurrent opens
	// cannot oversell.
	const q = `
		UPDATE movies
		SET number_in_stock = number_in_stock - 1
		WHERE id = $1
		AND number_in_stock > 0`
	res, err := tx.ExecContext(ctx, q, movieID)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) IncrementStock(ctx context.Context, tx *sql.Tx, movieID int64) error {
	const q = `
		UPDATE movies
		SET number_in_stock = number_in_stock + 1
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, movieID)
	return err
}

// Holdings

func (r *repo) AddHolding(ctx context.Context, tx *sql.Tx, userID, movieID, rentalID int64) error {
	const q = `
		INSERT INTO user_movies (user_id, movie_id, rental_id)
		VALUES ($1, $2, $3)`
	_, err := tx.ExecContext(ctx, q, userID, movieID, rentalID)
	return err
}

func (r *repo) RemoveHolding(ctx context.Context, tx *sql.Tx, userID, movieID int64) error {
	const q = `
		DELETE FROM user_movies
		WHERE user_id = $1
		AND movie_id = $2`
	_, err := tx.ExecContext(ctx, q, userID, movieID)
	return err
}

// Rentals

const rentalCols = `id, user_id, user_name, user_phone, movie_id, movie_title, movie_description, rental_fee, date_out, date_returned`

func scanRental(s interface{ Scan(...any) error }) (*model.Rental, error) {
	var rn model.Rental
	err := s.Scan(&rn.ID, &rn.UserID, &rn.UserName, &rn.UserPhone,
		&rn.MovieID, &rn.MovieTitle, &rn.MovieDescription,
		&rn.RentalFee, &rn.DateOut, &rn.DateReturned)
	if err != nil {
		return nil, err
	}
	return &rn, nil
}

func (r *repo) InsertRental(ctx context.Context, tx *sql.Tx, rn *model.Rental) error {
	const q = `
		INSERT INTO rentals (user_id, user_name, user_phone, movie_id, movie_title, movie_description, rental_fee)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, date_out`
	return tx.QueryRowContext(ctx, q,
		rn.UserID, rn.UserName, rn.UserPhone,
		rn.MovieID, rn.MovieTitle, rn.MovieDescription, rn.RentalFee,
	).Scan(&rn.ID, &rn.DateOut)
}

func (r *repo) OpenRentalsForUpdate(ctx context.Context, tx *sql.Tx, userID, movieID int64) ([]model.Rental, error) {
	const q = `
		SELECT ` + rentalCols + `
		FROM rentals
		WHERE user_id = $1
		AND movie_id = $2
		AND date_returned IS NULL
		ORDER BY id
		FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, userID, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rental
	for rows.Next() {
		rn, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rn)
	}
	return out, rows.Err()
}

func (r *repo) HasReturnedRental(ctx context.Context, tx *sql.Tx, userID, movieID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1
			FROM rentals
			WHERE user_id = $1
			AND movie_id = $2
			AND date_returned IS NOT NULL
		)`
	var ok bool
	err := tx.QueryRowContext(ctx, q, userID, movieID).Scan(&ok)
	return ok, err
}

func (r *repo) MarkReturned(ctx context.Context, tx *sql.Tx, rentalID int64, at time.Time) (bool, error) {
	// Compare-and-set on date_returned: only the transition NULL -> set
	// succeeds, so concurrent returns race for exactly one winner.
	const q = `
		UPDATE rentals
		SET date_returned = $2
		WHERE id = $1
		AND date_returned IS NULL`
	res, err := tx.ExecContext(ctx, q, rentalID, at)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

// History

func (r *repo) ListAll(ctx context.Context) ([]model.Rental, error) {
	return r.list(ctx, `
		SELECT `+rentalCols+`
		FROM rentals
		ORDER BY date_out DESC, id DESC`)
}

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]model.Rental, error) {
	return r.list(ctx, `
		SELECT `+rentalCols+`
		FROM rentals
		WHERE user_id = $1
		ORDER BY date_out DESC, id DESC`, userID)
}

func (r *repo) ByID(ctx context.Context, rentalID int64) (*model.Rental, error) {
	const q = `SELECT ` + rentalCols + ` FROM rentals WHERE id = $1`
	return scanRental(r.db.QueryRowContext(ctx, q, rentalID))
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.Rental, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rental
	for rows.Next() {
		rn, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rn)
	}
	return out, rows.Err()
}
