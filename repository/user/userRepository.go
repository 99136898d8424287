package userrepo

import (
	"context"
	"database/sql"
	"time"

	"movierental/model"
)

type Repo interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
	RegistrationStats(ctx context.Context) ([]model.RegistrationStat, error)

	AddToWatchlist(ctx context.Context, userID, movieID int64) error
	RemoveFromWatchlist(ctx context.Context, userID, movieID int64) (bool, error)
	Watchlist(ctx context.Context, userID int64) ([]model.WatchlistItem, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, phone, email, password_hash, is_admin, is_gold, points, age, created_at
        FROM users
        WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Phone, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.IsGold, &u.Points, &u.Age, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) RegistrationStats(ctx context.Context) ([]model.RegistrationStat, error) {
	const q = `
		SELECT EXTRACT(YEAR FROM created_at)::INT  AS yr,
		       EXTRACT(MONTH FROM created_at)::INT AS mo,
		       COUNT(*)                            AS total
		FROM users
		GROUP BY yr, mo
		ORDER BY yr, mo`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RegistrationStat
	for rows.Next() {
		var yr, mo int
		var s model.RegistrationStat
		if err := rows.Scan(&yr, &mo, &s.Total); err != nil {
			return nil, err
		}
		s.Year = yr
		s.Month = time.Month(mo)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *repo) AddToWatchlist(ctx context.Context, userID, movieID int64) error {
	const q = `
		INSERT INTO watchlist (user_id, movie_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, movie_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, q, userID, movieID)
	return err
}

func (r *repo) RemoveFromWatchlist(ctx context.Context, userID, movieID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM watchlist
		WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) Watchlist(ctx context.Context, userID int64) ([]model.WatchlistItem, error) {
	const q = `
		SELECT w.movie_id, m.title, w.added_at
		FROM watchlist w
		JOIN movies m ON m.id = w.movie_id
		WHERE w.user_id = $1
		ORDER BY w.added_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.WatchlistItem
	for rows.Next() {
		var it model.WatchlistItem
		if err := rows.Scan(&it.MovieID, &it.Title, &it.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
