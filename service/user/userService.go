package usersvc

import (
	"context"
	"database/sql"
	"errors"

	"movierental/model"
	movierepo "movierental/repository/movie"
	userrepo "movierental/repository/user"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrMovieNotFound = errors.New("movie not found")
	ErrNotOnList     = errors.New("movie not in watchlist")
)

type Service interface {
	Me(ctx context.Context, userID int64) (*model.User, error)
	RegistrationStats(ctx context.Context) ([]model.RegistrationStat, error)

	AddToWatchlist(ctx context.Context, userID, movieID int64) error
	RemoveFromWatchlist(ctx context.Context, userID, movieID int64) error
	Watchlist(ctx context.Context, userID int64) ([]model.WatchlistItem, error)
}

type service struct {
	ur userrepo.Repo
	mr movierepo.Repo
}

func New(ur userrepo.Repo, mr movierepo.Repo) Service { return &service{ur: ur, mr: mr} }

func (s *service) Me(ctx context.Context, userID int64) (*model.User, error) {
	u, err := s.ur.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) RegistrationStats(ctx context.Context) ([]model.RegistrationStat, error) {
	return s.ur.RegistrationStats(ctx)
}

func (s *service) AddToWatchlist(ctx context.Context, userID, movieID int64) error {
	if _, err := s.mr.ByID(ctx, movieID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMovieNotFound
		}
		return err
	}
	return s.ur.AddToWatchlist(ctx, userID, movieID)
}

func (s *service) RemoveFromWatchlist(ctx context.Context, userID, movieID int64) error {
	removed, err := s.ur.RemoveFromWatchlist(ctx, userID, movieID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotOnList
	}
	return nil
}

func (s *service) Watchlist(ctx context.Context, userID int64) ([]model.WatchlistItem, error) {
	return s.ur.Watchlist(ctx, userID)
}
