package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"equiprent.GO/service/lifecycle"
)

// RespondError maps lifecycle sentinels to HTTP statuses. Validation and
// transition rejections are client errors; anything else is internal.
func RespondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, lifecycle.ErrValidation), errors.Is(err, lifecycle.ErrInvalidTransition):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
