package rental

import (
	"log/slog"
	"net/http"
	"strconv"

	rs "movierental/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/rentals
func (h *Controller) Open(c echo.Context) error {
	var req OpenRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	rn, err := h.Svc.Open(c.Request().Context(), req.UserID, req.MovieID, req.RentalFee)
	if err != nil {
		h.Log.Error("rental open", "err", err)
		return errStatus(c, err)
	}
	return c.JSON(http.StatusCreated, rn)
}

// GET /v1/rentals/quote/:movieId/:userId
func (h *Controller) Quote(c echo.Context) error {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil || movieID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid movie id"})
	}
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}

	fee, err := h.Svc.Quote(c.Request().Context(), userID, movieID)
	if err != nil {
		h.Log.Error("rental quote", "err", err)
		return errStatus(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"rental_fee": fee})
}

// GET /v1/rentals
func (h *Controller) List(c echo.Context) error {
	rentals, err := h.Svc.ListAll(c.Request().Context())
	if err != nil {
		h.Log.Error("rental list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rentals})
}

// GET /v1/rentals/my
func (h *Controller) MyHistory(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	rentals, err := h.Svc.ListByUser(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("rental history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rentals})
}

// GET /v1/rentals/users/:id
func (h *Controller) ByUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	rentals, err := h.Svc.ListByUser(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("rental by user", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rentals})
}

// GET /v1/rentals/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	rn, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("rental detail", "err", err)
		return errStatus(c, err)
	}
	return c.JSON(http.StatusOK, rn)
}

// errStatus maps ledger error codes to HTTP responses.
func errStatus(c echo.Context, err error) error {
	switch rs.Code(err) {
	case rs.ErrUserNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	case rs.ErrMovieNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "movie not found"})
	case rs.ErrRentalNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
	case rs.ErrOutOfStock:
		return c.JSON(http.StatusConflict, echo.Map{"message": "movie not in stock"})
	case rs.ErrAlreadyReturned:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "return already processed"})
	case rs.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{"message": "ambiguous open rental"})
	case rs.ErrUnavailable:
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "temporarily unavailable, retry"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
