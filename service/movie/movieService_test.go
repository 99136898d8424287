// service/movie/movie_service_test.go
package moviesvc_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"movierental/model"
	moviesvc "movierental/service/movie"
)

type movieRepoMock struct {
	createFn    func(ctx context.Context, m *model.Movie) error
	updateFn    func(ctx context.Context, m *model.Movie) (bool, error)
	deleteFn    func(ctx context.Context, id int64) (bool, error)
	listFn      func(ctx context.Context) ([]model.Movie, error)
	byIDFn      func(ctx context.Context, id int64) (*model.Movie, error)
	byTitleFn   func(ctx context.Context, title string) ([]model.Movie, error)
	byMinRateFn func(ctx context.Context, rate float64) ([]model.Movie, error)
	likeFn      func(ctx context.Context, id int64) (bool, error)
}

func (m *movieRepoMock) Create(ctx context.Context, mv *model.Movie) error { return m.createFn(ctx, mv) }
func (m *movieRepoMock) Update(ctx context.Context, mv *model.Movie) (bool, error) {
	return m.updateFn(ctx, mv)
}
func (m *movieRepoMock) Delete(ctx context.Context, id int64) (bool, error) {
	return m.deleteFn(ctx, id)
}
func (m *movieRepoMock) List(ctx context.Context) ([]model.Movie, error) { return m.listFn(ctx) }
func (m *movieRepoMock) ByID(ctx context.Context, id int64) (*model.Movie, error) {
	return m.byIDFn(ctx, id)
}
func (m *movieRepoMock) ByTitle(ctx context.Context, title string) ([]model.Movie, error) {
	return m.byTitleFn(ctx, title)
}
func (m *movieRepoMock) ByMinRate(ctx context.Context, rate float64) ([]model.Movie, error) {
	return m.byMinRateFn(ctx, rate)
}
func (m *movieRepoMock) Like(ctx context.Context, id int64) (bool, error) { return m.likeFn(ctx, id) }

type genreRepoMock struct {
	byIDFn func(ctx context.Context, id int64) (*model.Genre, error)
}

func (g *genreRepoMock) Create(ctx context.Context, name string) (int64, error) { return 0, nil }
func (g *genreRepoMock) Update(ctx context.Context, id int64, name string) (bool, error) {
	return false, nil
}
func (g *genreRepoMock) Delete(ctx context.Context, id int64) (bool, error) { return false, nil }
func (g *genreRepoMock) List(ctx context.Context) ([]model.Genre, error)    { return nil, nil }
func (g *genreRepoMock) ByID(ctx context.Context, id int64) (*model.Genre, error) {
	return g.byIDFn(ctx, id)
}

func genreExists(id int64) *genreRepoMock {
	return &genreRepoMock{byIDFn: func(ctx context.Context, got int64) (*model.Genre, error) {
		if got != id {
			return nil, sql.ErrNoRows
		}
		return &model.Genre{ID: id, Name: "Drama"}, nil
	}}
}

func TestCreate_Validation(t *testing.T) {
	s := moviesvc.New(&movieRepoMock{}, genreExists(1))
	if err := s.Create(context.Background(), &model.Movie{Title: "", GenreID: 1}); err == nil {
		t.Fatal("expected error for empty title")
	}
	if err := s.Create(context.Background(), &model.Movie{Title: "Metropolis", GenreID: 1, DailyRentalRate: -1}); err == nil {
		t.Fatal("expected error for negative rate")
	}
	if err := s.Create(context.Background(), &model.Movie{Title: "Metropolis", GenreID: 1, NumberInStock: -1}); err == nil {
		t.Fatal("expected error for negative stock")
	}
}

func TestCreate_InvalidGenre(t *testing.T) {
	s := moviesvc.New(&movieRepoMock{}, genreExists(1))
	err := s.Create(context.Background(), &model.Movie{Title: "Metropolis", GenreID: 99, DailyRentalRate: 3})
	if !errors.Is(err, moviesvc.ErrInvalidGenre) {
		t.Fatalf("got %v; want ErrInvalidGenre", err)
	}
}

func TestCreate_Success(t *testing.T) {
	m := &movieRepoMock{
		createFn: func(ctx context.Context, mv *model.Movie) error {
			mv.ID = 42
			return nil
		},
	}
	s := moviesvc.New(m, genreExists(1))
	mv := &model.Movie{Title: "Metropolis", GenreID: 1, NumberInStock: 3, DailyRentalRate: 2.5}
	if err := s.Create(context.Background(), mv); err != nil || mv.ID != 42 {
		t.Fatalf("got id=%v err=%v; want 42 nil", mv.ID, err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	m := &movieRepoMock{
		updateFn: func(ctx context.Context, mv *model.Movie) (bool, error) { return false, nil },
	}
	s := moviesvc.New(m, genreExists(1))
	err := s.Update(context.Background(), &model.Movie{ID: 9, Title: "Metropolis", GenreID: 1, DailyRentalRate: 3})
	if !errors.Is(err, moviesvc.ErrNotFound) {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}

func TestSearch(t *testing.T) {
	m := &movieRepoMock{
		byTitleFn: func(ctx context.Context, title string) ([]model.Movie, error) {
			return []model.Movie{{ID: 1, Title: title}}, nil
		},
		byMinRateFn: func(ctx context.Context, rate float64) ([]model.Movie, error) {
			return []model.Movie{{ID: 2, DailyRentalRate: rate}}, nil
		},
	}
	s := moviesvc.New(m, genreExists(1))

	byTitle, err := s.Search(context.Background(), "Metropolis", nil)
	if err != nil || len(byTitle) != 1 || byTitle[0].ID != 1 {
		t.Fatalf("title search got %v %v", byTitle, err)
	}

	rate := 2.0
	byRate, err := s.Search(context.Background(), "", &rate)
	if err != nil || len(byRate) != 1 || byRate[0].ID != 2 {
		t.Fatalf("rate search got %v %v", byRate, err)
	}

	if _, err := s.Search(context.Background(), "", nil); err == nil {
		t.Fatal("expected error for empty search")
	}
}

func TestDetail_NotFound(t *testing.T) {
	m := &movieRepoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Movie, error) { return nil, sql.ErrNoRows },
	}
	s := moviesvc.New(m, genreExists(1))
	if _, err := s.Detail(context.Background(), 5); !errors.Is(err, moviesvc.ErrNotFound) {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}
