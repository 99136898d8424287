package moviesvc

import (
	"context"
	"database/sql"
	"errors"

	"movierental/model"
	genrerepo "movierental/repository/genre"
	movierepo "movierental/repository/movie"
)

var (
	ErrNotFound     = errors.New("movie not found")
	ErrInvalidGenre = errors.New("invalid genre")
)

type Service interface {
	Create(ctx context.Context, m *model.Movie) error
	Update(ctx context.Context, m *model.Movie) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Movie, error)
	Detail(ctx context.Context, id int64) (*model.Movie, error)
	Search(ctx context.Context, title string, minRate *float64) ([]model.Movie, error)
	Like(ctx context.Context, id int64) error
}

type service struct {
	mr movierepo.Repo
	gr genrerepo.Repo
}

func New(mr movierepo.Repo, gr genrerepo.Repo) Service { return &service{mr: mr, gr: gr} }

func (s *service) Create(ctx context.Context, m *model.Movie) error {
	if m.Title == "" || m.NumberInStock < 0 || m.DailyRentalRate < 0 {
		return errors.New("invalid payload")
	}
	if err := s.checkGenre(ctx, m.GenreID); err != nil {
		return err
	}
	return s.mr.Create(ctx, m)
}

func (s *service) Update(ctx context.Context, m *model.Movie) error {
	if m.Title == "" || m.NumberInStock < 0 || m.DailyRentalRate < 0 {
		return errors.New("invalid payload")
	}
	if err := s.checkGenre(ctx, m.GenreID); err != nil {
		return err
	}
	ok, err := s.mr.Update(ctx, m)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ok, err := s.mr.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]model.Movie, error) { return s.mr.List(ctx) }

func (s *service) Detail(ctx context.Context, id int64) (*model.Movie, error) {
	m, err := s.mr.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// Search matches by exact title, or by minimum daily rate when no title is
// given. One of the two filters must be present.
func (s *service) Search(ctx context.Context, title string, minRate *float64) ([]model.Movie, error) {
	switch {
	case title != "":
		return s.mr.ByTitle(ctx, title)
	case minRate != nil:
		return s.mr.ByMinRate(ctx, *minRate)
	}
	return nil, errors.New("invalid search parameters")
}

func (s *service) Like(ctx context.Context, id int64) error {
	ok, err := s.mr.Like(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *service) checkGenre(ctx context.Context, genreID int64) error {
	if _, err := s.gr.ByID(ctx, genreID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidGenre
		}
		return err
	}
	return nil
}
