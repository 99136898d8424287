package movie

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"movierental/model"
	moviesvc "movierental/service/movie"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc moviesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/movies
func (h *Controller) Create(c echo.Context) error {
	var req MovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	m := toModel(req)
	if err := h.Svc.Create(c.Request().Context(), m); err != nil {
		if errors.Is(err, moviesvc.ErrInvalidGenre) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid genre"})
		}
		h.Log.Error("movie create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, m)
}

// PUT /v1/movies/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req MovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	m := toModel(req)
	m.ID = id
	if err := h.Svc.Update(c.Request().Context(), m); err != nil {
		switch {
		case errors.Is(err, moviesvc.ErrInvalidGenre):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid genre"})
		case errors.Is(err, moviesvc.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		}
		h.Log.Error("movie update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, m)
}

// DELETE /v1/movies/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, moviesvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		}
		h.Log.Error("movie delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

// GET /v1/movies
func (h *Controller) List(c echo.Context) error {
	movies, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("movie list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": movies})
}

// GET /v1/movies/search?title=...&min_rate=...
func (h *Controller) Search(c echo.Context) error {
	title := c.QueryParam("title")
	var minRate *float64
	if s := c.QueryParam("min_rate"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid min_rate"})
		}
		minRate = &v
	}
	if title == "" && minRate == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid search parameters"})
	}

	movies, err := h.Svc.Search(c.Request().Context(), title, minRate)
	if err != nil {
		h.Log.Error("movie search", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if len(movies) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "no movies found matching the criteria"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": movies})
}

// GET /v1/movies/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	m, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, moviesvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		}
		h.Log.Error("movie detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, m)
}

// POST /v1/movies/:id/like
func (h *Controller) Like(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Like(c.Request().Context(), id); err != nil {
		if errors.Is(err, moviesvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
		}
		h.Log.Error("movie like", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "liked"})
}

func toModel(req MovieReq) *model.Movie {
	return &model.Movie{
		Title:           req.Title,
		Description:     req.Description,
		GenreID:         req.GenreID,
		NumberInStock:   req.NumberInStock,
		DailyRentalRate: req.DailyRentalRate,
		CoverPath:       req.CoverPath,
		TrailerPath:     req.TrailerPath,
	}
}
