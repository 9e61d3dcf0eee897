package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/crud_services/pkg/apperr"
	pkgdb "github.com/Skotchmaster/crud_services/pkg/db"
	"github.com/Skotchmaster/crud_services/services/productos/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	ctx := context.Background()
	db, err := pkgdb.Open(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, pkgdb.Migrate(ctx, db, &models.Producto{}))
	t.Cleanup(func() { _ = pkgdb.Close(db) })

	return &GormRepo{DB: db}
}

func seed(t *testing.T, r *GormRepo, n int) []models.Producto {
	t.Helper()

	out := make([]models.Producto, 0, n)
	for i := 0; i < n; i++ {
		p := models.Producto{Nombre: fmt.Sprintf("p%d", i), Precio: float64(i) + 0.5, Categoria: "cat"}
		require.NoError(t, r.CreateProducto(context.Background(), &p))
		out = append(out, p)
	}
	return out
}

func TestCreateAndGet(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	peso := 0.25
	p := models.Producto{Nombre: "Mouse", Peso: &peso, Precio: 9.99, Categoria: "electronics"}
	require.NoError(t, r.CreateProducto(ctx, &p))
	require.NotZero(t, p.ID)

	got, err := r.GetProducto(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, *got)
}

func TestCreate_AssignsFreshIDs(t *testing.T) {
	r := newTestRepo(t)

	items := seed(t, r, 3)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.NotEqual(t, items[1].ID, items[2].ID)
}

func TestGet_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetProducto(context.Background(), 404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestList_Window(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	items := seed(t, r, 5)

	got, err := r.ListProductos(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, items[1].ID, got[0].ID)
	assert.Equal(t, items[2].ID, got[1].ID)

	all, err := r.ListProductos(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	none, err := r.ListProductos(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestList_OffsetPastEnd(t *testing.T) {
	r := newTestRepo(t)
	seed(t, r, 2)

	got, err := r.ListProductos(context.Background(), 2, 100)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDelete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	items := seed(t, r, 2)

	require.NoError(t, r.DeleteProducto(ctx, items[0].ID))

	_, err := r.GetProducto(ctx, items[0].ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	still, err := r.GetProducto(ctx, items[1].ID)
	require.NoError(t, err)
	assert.Equal(t, items[1], *still)

	assert.ErrorIs(t, r.DeleteProducto(ctx, items[0].ID), apperr.ErrNotFound)
}
