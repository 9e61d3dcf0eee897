// Package httperr renders handler errors as {"detail": ...} bodies.
package httperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/crud_services/pkg/apperr"
	"github.com/Skotchmaster/crud_services/pkg/logging"
)

type Response struct {
	Detail any `json:"detail"`
}

// Handler is an echo.HTTPErrorHandler. *echo.HTTPError keeps its code and
// message, *apperr.ValidationError becomes 422 with per-field detail, and
// anything else is a 500 whose cause is only logged.
func Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, detail := resolve(err)
	if code >= http.StatusInternalServerError {
		logging.FromContext(c.Request().Context()).Error("unhandled_error", "status", code, "error", err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, Response{Detail: detail})
	}
	if werr != nil {
		logging.FromContext(c.Request().Context()).Error("error_response_failed", "error", werr)
	}
}

func resolve(err error) (int, any) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ve.Fields
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			var inner *echo.HTTPError
			if errors.As(he.Internal, &inner) {
				he = inner
			}
		}
		if he.Code >= http.StatusInternalServerError {
			return he.Code, http.StatusText(he.Code)
		}
		return he.Code, he.Message
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
