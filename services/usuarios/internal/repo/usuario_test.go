package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/crud_services/pkg/apperr"
	pkgdb "github.com/Skotchmaster/crud_services/pkg/db"
	"github.com/Skotchmaster/crud_services/services/usuarios/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	ctx := context.Background()
	db, err := pkgdb.Open(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, pkgdb.Migrate(ctx, db, &models.Usuario{}))
	t.Cleanup(func() { _ = pkgdb.Close(db) })

	return &GormRepo{DB: db}
}

func TestCreateUsuario_DuplicateEmail(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first := models.Usuario{Nombre: "Ana", Email: "ana@example.com"}
	require.NoError(t, r.CreateUsuario(ctx, &first))

	second := models.Usuario{Nombre: "Otra Ana", Email: "ana@example.com"}
	err := r.CreateUsuario(ctx, &second)
	require.ErrorIs(t, err, apperr.ErrConflict)

	var count int64
	require.NoError(t, r.DB.Model(&models.Usuario{}).Where("email = ?", "ana@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := r.GetUsuario(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Nombre)
}

func TestCreateAndGetUsuario_Optionals(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	edad := 31
	dir := "Calle Mayor 1"
	u := models.Usuario{Nombre: "Luis", Email: "luis@example.com", Edad: &edad, Direccion: &dir}
	require.NoError(t, r.CreateUsuario(ctx, &u))

	got, err := r.GetUsuario(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, *got)

	bare := models.Usuario{Nombre: "Eva", Email: "eva@example.com"}
	require.NoError(t, r.CreateUsuario(ctx, &bare))
	got, err = r.GetUsuario(ctx, bare.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Edad)
	assert.Nil(t, got.Direccion)
}

func TestListAndDeleteUsuarios(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, email := range []string{"a@x.io", "b@x.io", "c@x.io"} {
		require.NoError(t, r.CreateUsuario(ctx, &models.Usuario{Nombre: email, Email: email}))
	}

	items, err := r.ListUsuarios(ctx, 1, 100)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b@x.io", items[0].Email)

	require.NoError(t, r.DeleteUsuario(ctx, items[0].ID))
	assert.ErrorIs(t, r.DeleteUsuario(ctx, items[0].ID), apperr.ErrNotFound)

	_, err = r.GetUsuario(ctx, items[0].ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	items, err = r.ListUsuarios(ctx, 10, 100)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateUsuario_EmailReusableAfterDelete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	u := models.Usuario{Nombre: "Ana", Email: "ana@example.com"}
	require.NoError(t, r.CreateUsuario(ctx, &u))
	require.NoError(t, r.DeleteUsuario(ctx, u.ID))

	again := models.Usuario{Nombre: "Ana", Email: "ana@example.com"}
	require.NoError(t, r.CreateUsuario(ctx, &again))
	assert.NotZero(t, again.ID)
}
