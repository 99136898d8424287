package movierepo

import (
	"context"
	"database/sql"

	"movierental/model"
)

type Repo interface {
	Create(ctx context.Context, m *model.Movie) error
	Update(ctx context.Context, m *model.Movie) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]model.Movie, error)
	ByID(ctx context.Context, id int64) (*model.Movie, error)
	ByTitle(ctx context.Context, title string) ([]model.Movie, error)
	ByMinRate(ctx context.Context, rate float64) ([]model.Movie, error)
	Like(ctx context.Context, id int64) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const movieCols = `
	m.id, m.title, m.description, m.genre_id, g.name, m.number_in_stock,
	m.daily_rental_rate, m.likes, m.cover_path, m.trailer_path, m.created_at`

func scanMovie(s interface{ Scan(...any) error }) (*model.Movie, error) {
	var m model.Movie
	err := s.Scan(
		&m.ID, &m.Title, &m.Description, &m.GenreID, &m.GenreName, &m.NumberInStock,
		&m.DailyRentalRate, &m.Likes, &m.CoverPath, &m.TrailerPath, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repo) Create(ctx context.Context, m *model.Movie) error {
	const q = `
		INSERT INTO movies (title, description, genre_id, number_in_stock, daily_rental_rate, cover_path, trailer_path)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		m.Title, m.Description, m.GenreID, m.NumberInStock, m.DailyRentalRate, m.CoverPath, m.TrailerPath,
	).Scan(&m.ID, &m.CreatedAt)
}

func (r *repo) Update(ctx context.Context, m *model.Movie) (bool, error) {
	const q = `
		UPDATE movies
		SET title = $2,
			description = $3,
			genre_id = $4,
			number_in_stock = $5,
			daily_rental_rate = $6,
			cover_path = COALESCE($7, cover_path),
			trailer_path = COALESCE($8, trailer_path)
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		m.ID, m.Title, m.Description, m.GenreID, m.NumberInStock, m.DailyRentalRate, m.CoverPath, m.TrailerPath)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM movies
		WHERE id = $1`,
		id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) List(ctx context.Context) ([]model.Movie, error) {
	return r.query(ctx, `
		SELECT `+movieCols+`
		FROM movies m
		JOIN genres g ON g.id = m.genre_id
		ORDER BY m.title`)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Movie, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+movieCols+`
		FROM movies m
		JOIN genres g ON g.id = m.genre_id
		WHERE m.id = $1`,
		id)
	return scanMovie(row)
}

func (r *repo) ByTitle(ctx context.Context, title string) ([]model.Movie, error) {
	return r.query(ctx, `
		SELECT `+movieCols+`
		FROM movies m
		JOIN genres g ON g.id = m.genre_id
		WHERE m.title = $1
		ORDER BY m.id`, title)
}

func (r *repo) ByMinRate(ctx context.Context, rate float64) ([]model.Movie, error) {
	return r.query(ctx, `
		SELECT `+movieCols+`
		FROM movies m
		JOIN genres g ON g.id = m.genre_id
		WHERE m.daily_rental_rate >= $1
		ORDER BY m.daily_rental_rate, m.id`, rate)
}

func (r *repo) Like(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE movies
		SET likes = likes + 1
		WHERE id = $1`,
		id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) query(ctx context.Context, q string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}
