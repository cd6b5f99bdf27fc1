package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/service"
	"github.com/RaghunadhSahitDruvam/vibecart/pkg/logging"
)

// respondError maps the service error taxonomy onto HTTP statuses:
// validation 400, not found 404, conflict 409, everything else 500.
func respondError(c echo.Context, handler string, err error) error {
	l := logging.FromContext(c.Request().Context()).With("handler", handler)

	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(handler+"_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		l.Warn(handler+"_error", "status", 404, "error", err)
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrConflict):
		l.Warn(handler+"_error", "status", 409, "error", err)
		return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": err.Error()})
	default:
		l.Error(handler+"_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "internal error"})
	}
}
