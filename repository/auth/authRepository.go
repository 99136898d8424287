package auth

import (
	"context"
	"database/sql"

	"movierental/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO users(name, phone, email, password_hash, is_admin, age)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at`,
		u.Name, u.Phone, u.Email, u.PasswordHash, u.IsAdmin, u.Age,
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, phone, email, password_hash, is_admin, is_gold, points, age, created_at
        FROM users
        WHERE lower(email) = lower($1)`,
		email,
	).Scan(&u.ID, &u.Name, &u.Phone, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.IsGold, &u.Points, &u.Age, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
