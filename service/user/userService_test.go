package usersvc

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"movierental/model"
)

type userRepoMock struct {
	byIDFn   func(ctx context.Context, id int64) (*model.User, error)
	addFn    func(ctx context.Context, userID, movieID int64) error
	removeFn func(ctx context.Context, userID, movieID int64) (bool, error)
	listFn   func(ctx context.Context, userID int64) ([]model.WatchlistItem, error)
	statsFn  func(ctx context.Context) ([]model.RegistrationStat, error)
}

func (m *userRepoMock) ByID(ctx context.Context, id int64) (*model.User, error) {
	return m.byIDFn(ctx, id)
}
func (m *userRepoMock) RegistrationStats(ctx context.Context) ([]model.RegistrationStat, error) {
	return m.statsFn(ctx)
}
func (m *userRepoMock) AddToWatchlist(ctx context.Context, userID, movieID int64) error {
	return m.addFn(ctx, userID, movieID)
}
func (m *userRepoMock) RemoveFromWatchlist(ctx context.Context, userID, movieID int64) (bool, error) {
	return m.removeFn(ctx, userID, movieID)
}
func (m *userRepoMock) Watchlist(ctx context.Context, userID int64) ([]model.WatchlistItem, error) {
	return m.listFn(ctx, userID)
}

type movieLookupMock struct {
	byIDFn func(ctx context.Context, id int64) (*model.Movie, error)
}

func (m *movieLookupMock) Create(ctx context.Context, mv *model.Movie) error          { return nil }
func (m *movieLookupMock) Update(ctx context.Context, mv *model.Movie) (bool, error)  { return false, nil }
func (m *movieLookupMock) Delete(ctx context.Context, id int64) (bool, error)         { return false, nil }
func (m *movieLookupMock) List(ctx context.Context) ([]model.Movie, error)            { return nil, nil }
func (m *movieLookupMock) ByTitle(ctx context.Context, t string) ([]model.Movie, error) { return nil, nil }
func (m *movieLookupMock) ByMinRate(ctx context.Context, r float64) ([]model.Movie, error) {
	return nil, nil
}
func (m *movieLookupMock) Like(ctx context.Context, id int64) (bool, error) { return false, nil }
func (m *movieLookupMock) ByID(ctx context.Context, id int64) (*model.Movie, error) {
	return m.byIDFn(ctx, id)
}

func TestMe_NotFound(t *testing.T) {
	ur := &userRepoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) { return nil, sql.ErrNoRows },
	}
	svc := New(ur, &movieLookupMock{})

	_, err := svc.Me(context.Background(), 5)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddToWatchlist_MovieMissing(t *testing.T) {
	svc := New(&userRepoMock{}, &movieLookupMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Movie, error) { return nil, sql.ErrNoRows },
	})

	err := svc.AddToWatchlist(context.Background(), 1, 99)
	require.ErrorIs(t, err, ErrMovieNotFound)
}

func TestRemoveFromWatchlist(t *testing.T) {
	removed := false
	ur := &userRepoMock{
		removeFn: func(ctx context.Context, userID, movieID int64) (bool, error) {
			return removed, nil
		},
	}
	svc := New(ur, &movieLookupMock{})

	err := svc.RemoveFromWatchlist(context.Background(), 1, 7)
	require.ErrorIs(t, err, ErrNotOnList)

	removed = true
	require.NoError(t, svc.RemoveFromWatchlist(context.Background(), 1, 7))
}
