package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/crud_services/pkg/db/session"
	"github.com/Skotchmaster/crud_services/pkg/server"
)

type Deps struct {
	UsuarioHandler *UsuarioHTTP
	DB             *gorm.DB
	Logger         *slog.Logger
}

func New(d *Deps) *echo.Echo {
	e := server.New(d.Logger, d.DB)
	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	usuarios := e.Group("/usuarios", session.Middleware(d.DB))
	usuarios.POST("/", d.UsuarioHandler.CreateUsuario)
	usuarios.POST("", d.UsuarioHandler.CreateUsuario)
	usuarios.GET("/", d.UsuarioHandler.ListUsuarios)
	usuarios.GET("", d.UsuarioHandler.ListUsuarios)
	usuarios.GET("/:id", d.UsuarioHandler.GetUsuario)
	usuarios.DELETE("/:id", d.UsuarioHandler.DeleteUsuario)
}
