package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-unison/internal/domain"
	"github.com/jhoicas/inventario-unison/internal/domain/entity"
	"github.com/jhoicas/inventario-unison/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-unison/internal/testutil"
)

func TestUserRepo_FindByName(t *testing.T) {
	repo := sqlite.NewUserRepository(testutil.OpenBootstrappedDB(t))
	ctx := context.Background()

	u, err := repo.FindByName(ctx, "almacen")
	require.NoError(t, err)
	assert.Equal(t, "almacen", u.Name)
	assert.Equal(t, entity.RoleWarehouses, u.Role)
	assert.Nil(t, u.LastLogin, "nunca inició sesión")

	_, err = repo.FindByName(ctx, "ALMACEN")
	assert.ErrorIs(t, err, domain.ErrNotFound, "la búsqueda es exacta")

	_, err = repo.FindByName(ctx, "nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_RolDesconocido(t *testing.T) {
	db := testutil.OpenBootstrappedDB(t)
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `INSERT INTO usuarios (NOMBRE, "CONTRASEÑA", rol) VALUES ('invitado', 'x', 'VISITA')`)
	require.NoError(t, err)

	u, err := sqlite.NewUserRepository(db).FindByName(ctx, "invitado")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleNone, u.Role)
}

func TestUserRepo_UpdateLastLoginYHash(t *testing.T) {
	repo := sqlite.NewUserRepository(testutil.OpenBootstrappedDB(t))
	ctx := context.Background()
	u, err := repo.FindByName(ctx, "Admin")
	require.NoError(t, err)

	at := time.Date(2025, 11, 3, 18, 0, 0, 0, time.Local)
	require.NoError(t, repo.UpdateLastLogin(ctx, u.ID, at))
	require.NoError(t, repo.UpdatePasswordHash(ctx, u.ID, "nuevo-hash"))

	got, err := repo.FindByName(ctx, "Admin")
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.True(t, at.Equal(*got.LastLogin))
	assert.Equal(t, "nuevo-hash", got.PasswordHash)

	assert.ErrorIs(t, repo.UpdateLastLogin(ctx, 999, at), domain.ErrNotFound)
}
