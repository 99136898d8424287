package user

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	usersvc "movierental/service/user"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc usersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type watchlistReq struct {
	MovieID int64 `json:"movie_id" validate:"required,gt=0"`
}

// GET /v1/users/me
func (h *Controller) Me(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	u, err := h.Svc.Me(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, usersvc.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		h.Log.Error("me", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, u)
}

// GET /v1/users/stats
func (h *Controller) RegistrationStats(c echo.Context) error {
	stats, err := h.Svc.RegistrationStats(c.Request().Context())
	if err != nil {
		h.Log.Error("user stats", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": stats})
}

// GET /v1/users/watchlist
func (h *Controller) Watchlist(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	items, err := h.Svc.Watchlist(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("watchlist", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": items})
}

// POST /v1/users/watchlist
func (h *Controller) AddToWatchlist(c echo.Context) error {
	var req watchlistReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(int64)

	if err := h.Svc.AddToWatchlist(c.Request().Context(), uid, req.MovieID); err != nil {
		if errors.Is(err, usersvc.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		}
		h.Log.Error("watchlist add", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "movie added to your watchlist"})
}

// DELETE /v1/users/watchlist/:movieId
func (h *Controller) RemoveFromWatchlist(c echo.Context) error {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil || movieID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, _ := c.Get("user_id").(int64)

	if err := h.Svc.RemoveFromWatchlist(c.Request().Context(), uid, movieID); err != nil {
		if errors.Is(err, usersvc.ErrNotOnList) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not in watchlist"})
		}
		h.Log.Error("watchlist remove", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "movie removed from your watchlist"})
}
