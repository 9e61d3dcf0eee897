package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/crud_services/pkg/apperr"
	"github.com/Skotchmaster/crud_services/pkg/db/session"
	"github.com/Skotchmaster/crud_services/services/productos/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) conn(ctx context.Context) *gorm.DB {
	return session.FromContext(ctx, r.DB)
}

func (r *GormRepo) CreateProducto(ctx context.Context, prod *models.Producto) error {
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(prod).Error
	})
	return apperr.FromStore(err)
}

func (r *GormRepo) ListProductos(ctx context.Context, offset, limit int) ([]models.Producto, error) {
	items := make([]models.Producto, 0, limit)
	if err := r.conn(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, apperr.FromStore(err)
	}
	return items, nil
}

func (r *GormRepo) GetProducto(ctx context.Context, id uint) (*models.Producto, error) {
	var prod models.Producto
	if err := r.conn(ctx).First(&prod, id).Error; err != nil {
		return nil, apperr.FromStore(err)
	}
	return &prod, nil
}

func (r *GormRepo) DeleteProducto(ctx context.Context, id uint) error {
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var prod models.Producto
		if err := tx.First(&prod, id).Error; err != nil {
			return err
		}
		return tx.Delete(&prod).Error
	})
	return apperr.FromStore(err)
}
