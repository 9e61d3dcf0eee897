package service

import (
	"context"

	"github.com/Skotchmaster/crud_services/pkg/db/session"
	"github.com/Skotchmaster/crud_services/pkg/events"
	"github.com/Skotchmaster/crud_services/pkg/logging"
	"github.com/Skotchmaster/crud_services/pkg/pagination"
	"github.com/Skotchmaster/crud_services/pkg/validation"
	"github.com/Skotchmaster/crud_services/services/productos/internal/models"
	"github.com/Skotchmaster/crud_services/services/productos/internal/repo"
	"github.com/Skotchmaster/crud_services/services/productos/internal/transport"
)

const entity = "producto"

type ProductoService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *ProductoService) CreateProducto(ctx context.Context, req transport.CreateProductoRequest) (*models.Producto, error) {
	l := logging.FromContext(ctx).With("svc", "producto.create")

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	prod := &models.Producto{
		Nombre:    *req.Nombre,
		Peso:      req.Peso,
		Precio:    *req.Precio,
		Categoria: *req.Categoria,
	}
	if err := s.Repo.CreateProducto(ctx, prod); err != nil {
		l.Debug("create_producto_failed", "error", err)
		return nil, err
	}

	s.publish(ctx, events.Created(entity, prod.ID))
	return prod, nil
}

func (s *ProductoService) ListProductos(ctx context.Context, w pagination.Window) ([]models.Producto, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return s.Repo.ListProductos(ctx, w.Offset, w.Limit)
}

func (s *ProductoService) GetProducto(ctx context.Context, id uint) (*models.Producto, error) {
	return s.Repo.GetProducto(ctx, id)
}

func (s *ProductoService) DeleteProducto(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProducto(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, events.Deleted(entity, id))
	return nil
}

// publish sends ev after the request's session has been released.
func (s *ProductoService) publish(ctx context.Context, ev events.Event) {
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
