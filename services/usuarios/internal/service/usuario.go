package service

import (
	"context"

	"github.com/Skotchmaster/crud_services/pkg/db/session"
	"github.com/Skotchmaster/crud_services/pkg/events"
	"github.com/Skotchmaster/crud_services/pkg/logging"
	"github.com/Skotchmaster/crud_services/pkg/pagination"
	"github.com/Skotchmaster/crud_services/pkg/validation"
	"github.com/Skotchmaster/crud_services/services/usuarios/internal/models"
	"github.com/Skotchmaster/crud_services/services/usuarios/internal/repo"
	"github.com/Skotchmaster/crud_services/services/usuarios/internal/transport"
)

const entity = "usuario"

type UsuarioService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *UsuarioService) CreateUsuario(ctx context.Context, req transport.CreateUsuarioRequest) (*models.Usuario, error) {
	l := logging.FromContext(ctx).With("svc", "usuario.create")

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	u := &models.Usuario{
		Nombre:    *req.Nombre,
		Email:     *req.Email,
		Edad:      req.Edad,
		Direccion: req.Direccion,
	}
	if err := s.Repo.CreateUsuario(ctx, u); err != nil {
		l.Debug("create_usuario_failed", "error", err)
		return nil, err
	}

	s.publish(ctx, events.Created(entity, u.ID))
	return u, nil
}

func (s *UsuarioService) ListUsuarios(ctx context.Context, w pagination.Window) ([]models.Usuario, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return s.Repo.ListUsuarios(ctx, w.Offset, w.Limit)
}

func (s *UsuarioService) GetUsuario(ctx context.Context, id uint) (*models.Usuario, error) {
	return s.Repo.GetUsuario(ctx, id)
}

func (s *UsuarioService) DeleteUsuario(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteUsuario(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, events.Deleted(entity, id))
	return nil
}

// publish sends ev after the request's session has been released.
func (s *UsuarioService) publish(ctx context.Context, ev events.Event) {
	if s.Events == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	session.AfterRelease(ctx, func() {
		if err := s.Events.Publish(ctx, ev); err != nil {
			logging.FromContext(ctx).Error("event_publish_failed", "type", ev.Type, "id", ev.ID, "error", err)
		}
	})
}
