package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/crud_services/pkg/apperr"
	"github.com/Skotchmaster/crud_services/pkg/db/session"
	"github.com/Skotchmaster/crud_services/services/usuarios/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) conn(ctx context.Context) *gorm.DB {
	return session.FromContext(ctx, r.DB)
}

// CreateUsuario inserts u. A duplicate email surfaces as apperr.ErrConflict
// and the transaction is rolled back.
func (r *GormRepo) CreateUsuario(ctx context.Context, u *models.Usuario) error {
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(u).Error
	})
	return apperr.FromStore(err)
}

func (r *GormRepo) ListUsuarios(ctx context.Context, offset, limit int) ([]models.Usuario, error) {
	items := make([]models.Usuario, 0, limit)
	if err := r.conn(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, apperr.FromStore(err)
	}
	return items, nil
}

func (r *GormRepo) GetUsuario(ctx context.Context, id uint) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.conn(ctx).First(&u, id).Error; err != nil {
		return nil, apperr.FromStore(err)
	}
	return &u, nil
}

func (r *GormRepo) DeleteUsuario(ctx context.Context, id uint) error {
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.Usuario
		if err := tx.First(&u, id).Error; err != nil {
			return err
		}
		return tx.Delete(&u).Error
	})
	return apperr.FromStore(err)
}
