// Package server builds the echo instance shared by the services.
package server

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	pkgdb "github.com/Skotchmaster/crud_services/pkg/db"
	"github.com/Skotchmaster/crud_services/pkg/httperr"
	"github.com/Skotchmaster/crud_services/pkg/logging"
	loggingmw "github.com/Skotchmaster/crud_services/pkg/middleware/logging"
	"github.com/Skotchmaster/crud_services/pkg/validation"
)

// New returns an echo instance with recovery, request ids, request logging,
// {"detail": ...} error rendering, body validation and health endpoints.
func New(logger *slog.Logger, db *gorm.DB) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httperr.Handler
	e.Validator = validation.New()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(loggingmw.RequestLogger(logger))

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if err := pkgdb.Ping(c.Request().Context(), db); err != nil {
			logging.FromContext(c.Request().Context()).Warn("health_ready_failed", "error", err)
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	return e
}
