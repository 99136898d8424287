// Returns are a separate surface from rentals, mirroring the catalog API's
// POST /returns endpoint.
package returns

import (
	"log/slog"
	"net/http"

	rentalctrl "movierental/app/echoServer/controller/rental"
	rs "movierental/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/returns
func (h *Controller) Return(c echo.Context) error {
	var req rentalctrl.ReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	rn, err := h.Svc.Return(c.Request().Context(), req.UserID, req.MovieID)
	if err != nil {
		h.Log.Error("rental return", "err", err)
		switch rs.Code(err) {
		case rs.ErrRentalNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
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
	return c.JSON(http.StatusOK, rn)
}
