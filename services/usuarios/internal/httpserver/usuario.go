package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/crud_services/pkg/apperr"
	"github.com/Skotchmaster/crud_services/pkg/logging"
	"github.com/Skotchmaster/crud_services/pkg/pagination"
	"github.com/Skotchmaster/crud_services/pkg/validation"
	"github.com/Skotchmaster/crud_services/services/usuarios/internal/service"
	"github.com/Skotchmaster/crud_services/services/usuarios/internal/transport"
)

const notFoundMessage = "Usuario no encontrado"

type UsuarioHTTP struct {
	Svc *service.UsuarioService
}

// parseID returns ok=false for well-formed ids that cannot exist (< 1).
func parseID(c echo.Context) (id uint, ok bool, err error) {
	n, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false, apperr.Invalid(apperr.FieldError{
			Loc:  []string{"path", "usuario_id"},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		})
	}
	if n < 1 {
		return 0, false, nil
	}
	return uint(n), true, nil
}

func (h *UsuarioHTTP) CreateUsuario(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "usuario.create")

	var req transport.CreateUsuarioRequest
	if err := validation.BindBody(c, &req); err != nil {
		l.Warn("create_usuario_error", "status", 422, "reason", "invalid body", "error", err)
		return err
	}

	u, err := h.Svc.CreateUsuario(ctx, req)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			l.Warn("create_usuario_error", "status", 422, "reason", "invalid body", "error", err)
			return err
		}
		if errors.Is(err, apperr.ErrConflict) {
			l.Warn("create_usuario_error", "status", 409, "reason", "email already exists", "error", err)
			return echo.NewHTTPError(http.StatusConflict, "Ya existe un usuario con ese email")
		}
		l.Error("create_usuario_error", "status", 500, "reason", "cannot add usuario to db", "error", err)
		return err
	}

	l.Info("create_usuario_success", "id", u.ID)
	return c.JSON(http.StatusOK, u)
}

func (h *UsuarioHTTP) ListUsuarios(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "usuario.list")

	w, err := pagination.FromQuery(c)
	if err != nil {
		l.Warn("list_usuarios_error", "status", 422, "reason", "invalid pagination", "error", err)
		return err
	}

	items, err := h.Svc.ListUsuarios(ctx, w)
	if err != nil {
		l.Error("list_usuarios_error", "status", 500, "reason", "cannot list usuarios", "error", err)
		return err
	}

	l.Info("list_usuarios_success", "offset", w.Offset, "limit", w.Limit, "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *UsuarioHTTP) GetUsuario(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "usuario.get")

	id, ok, err := parseID(c)
	if err != nil {
		l.Warn("get_usuario_error", "status", 422, "reason", "id is not integer", "error", err)
		return err
	}
	if !ok {
		l.Warn("get_usuario_error", "status", 404, "reason", "id out of range")
		return echo.NewHTTPError(http.StatusNotFound, notFoundMessage)
	}

	u, err := h.Svc.GetUsuario(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			l.Warn("get_usuario_error", "status", 404, "reason", "usuario not found", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, notFoundMessage)
		}
		l.Error("get_usuario_error", "status", 500, "reason", "cannot get usuario", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, u)
}

func (h *UsuarioHTTP) DeleteUsuario(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "usuario.delete")

	id, ok, err := parseID(c)
	if err != nil {
		l.Warn("delete_usuario_error", "status", 422, "reason", "id is not integer", "error", err)
		return err
	}
	if !ok {
		l.Warn("delete_usuario_error", "status", 404, "reason", "id out of range")
		return echo.NewHTTPError(http.StatusNotFound, notFoundMessage)
	}

	if err := h.Svc.DeleteUsuario(ctx, id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			l.Warn("delete_usuario_error", "status", 404, "reason", "usuario not found", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, notFoundMessage)
		}
		l.Error("delete_usuario_error", "status", 500, "reason", "cannot delete usuario from db", "error", err)
		return err
	}

	l.Info("delete_usuario_success", "id", id)
	return c.JSON(http.StatusOK, transport.DeleteResponse{OK: true})
}
