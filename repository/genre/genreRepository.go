package genrerepo

import (
	"context"
	"database/sql"

	"movierental/model"
)

type Repo interface {
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]model.Genre, error)
	ByID(ctx context.Context, id int64) (*model.Genre, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, name string) (int64, error) {
	const q = `
		INSERT INTO genres (name)
		VALUES ($1)
		RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) Update(ctx context.Context, id int64, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE genres
		SET name = $2
		WHERE id = $1`,
		id, name)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM genres
		WHERE id = $1`,
		id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) List(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name
		FROM genres
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Genre, error) {
	var g model.Genre
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM genres
		WHERE id = $1`,
		id).Scan(&g.ID, &g.Name)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
