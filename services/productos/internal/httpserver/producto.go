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
	"github.com/Skotchmaster/crud_services/services/productos/internal/service"
	"github.com/Skotchmaster/crud_services/services/productos/internal/transport"
)

const notFoundMessage = "Producto no encontrado"

type ProductoHTTP struct {
	Svc *service.ProductoService
}

// parseID returns ok=false for well-formed ids that cannot exist (< 1).
func parseID(c echo.Context) (id uint, ok bool, err error) {
	n, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false, apperr.Invalid(apperr.FieldError{
			Loc:  []string{"path", "producto_id"},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		})
	}
	if n < 1 {
		return 0, false, nil
	}
	return uint(n), true, nil
}

func (h *ProductoHTTP) CreateProducto(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "producto.create")

	var req transport.CreateProductoRequest
	if err := validation.BindBody(c, &req); err != nil {
		l.Warn("create_producto_error", "status", 422, "reason", "invalid body", "error", err)
		return err
	}

	prod, err := h.Svc.CreateProducto(ctx, req)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			l.Warn("create_producto_error", "status", 422, "reason", "invalid body", "error", err)
			return err
		}
		if errors.Is(err, apperr.ErrConflict) {
			l.Warn("create_producto_error", "status", 409, "reason", "constraint violation", "error", err)
			return echo.NewHTTPError(http.StatusConflict, "El producto viola una restricción de unicidad")
		}
		l.Error("create_producto_error", "status", 500, "reason", "cannot add producto to db", "error", err)
		return err
	}

	l.Info("create_producto_success", "id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductoHTTP) ListProductos(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "producto.list")

	w, err := pagination.FromQuery(c)
	if err != nil {
		l.Warn("list_productos_error", "status", 422, "reason", "invalid pagination", "error", err)
		return err
	}

	items, err := h.Svc.ListProductos(ctx, w)
	if err != nil {
		l.Error("list_productos_error", "status", 500, "reason", "cannot list productos", "error", err)
		return err
	}

	l.Info("list_productos_success", "offset", w.Offset, "limit", w.Limit, "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *ProductoHTTP) GetProducto(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "producto.get")

	id, ok, err := parseID(c)
	if err != nil {
		l.Warn("get_producto_error", "status", 422, "reason", "id is not integer", "error", err)
		return err
	}
	if !ok {
		l.Warn("get_producto_error", "status", 404, "reason", "id out of range")
		return echo.NewHTTPError(http.StatusNotFound, notFoundMessage)
	}

	prod, err := h.Svc.GetProducto(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			l.Warn("get_producto_error", "status", 404, "reason", "producto not found", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, notFoundMessage)
		}
		l.Error("get_producto_error", "status", 500, "reason", "cannot get producto", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, prod)
}

func (h *ProductoHTTP) DeleteProducto(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "producto.delete")

	id, ok, err := parseID(c)
	if err != nil {
		l.Warn("delete_producto_error", "status", 422, "reason", "id is not integer", "error", err)
		return err
	}
	if !ok {
		l.Warn("delete_producto_error", "status", 404, "reason", "id out of range")
		return echo.NewHTTPError(http.StatusNotFound, notFoundMessage)
	}

	if err := h.Svc.DeleteProducto(ctx, id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			l.Warn("delete_producto_error", "status", 404, "reason", "producto not found", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, notFoundMessage)
		}
		l.Error("delete_producto_error", "status", 500, "reason", "cannot delete producto from db", "error", err)
		return err
	}

	l.Info("delete_producto_success", "id", id)
	return c.JSON(http.StatusOK, transport.DeleteResponse{OK: true})
}
