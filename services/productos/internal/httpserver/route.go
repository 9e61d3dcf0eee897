package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/crud_services/pkg/db/session"
	"github.com/Skotchmaster/crud_services/pkg/server"
)

type Deps struct {
	ProductoHandler *ProductoHTTP
	DB              *gorm.DB
	Logger          *slog.Logger
}

func New(d *Deps) *echo.Echo {
	e := server.New(d.Logger, d.DB)
	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	productos := e.Group("/productos", session.Middleware(d.DB))
	productos.POST("/", d.ProductoHandler.CreateProducto)
	productos.POST("", d.ProductoHandler.CreateProducto)
	productos.GET("/", d.ProductoHandler.ListProductos)
	productos.GET("", d.ProductoHandler.ListProductos)
	productos.GET("/:id", d.ProductoHandler.GetProducto)
	productos.DELETE("/:id", d.ProductoHandler.DeleteProducto)
}
