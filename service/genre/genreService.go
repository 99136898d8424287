package genresvc

import (
	"context"
	"errors"

	"movierental/model"
	genrerepo "movierental/repository/genre"
)

var ErrNotFound = errors.New("genre not found")

type Service interface {
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Genre, error)
	Detail(ctx context.Context, id int64) (*model.Genre, error)
}

type service struct{ r genrerepo.Repo }

func New(r genrerepo.Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errors.New("invalid payload")
	}
	return s.r.Create(ctx, name)
}

func (s *service) Update(ctx context.Context, id int64, name string) error {
	ok, err := s.r.Update(ctx, id, name)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]model.Genre, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id int64) (*model.Genre, error) {
	g, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return g, nil
}
