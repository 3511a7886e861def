// Package testutil reúne ayudas para tests que necesitan una base SQLite real.
package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-unison/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-unison/pkg/password"
)

// Hasher bcrypt con costo mínimo para que los tests sean rápidos.
func Hasher() *password.Hasher {
	return password.NewHasher(bcrypt.MinCost)
}

// OpenInMemoryDB abre una base en memoria compartida con nombre único y la cierra con t.Cleanup.
// El esquema queda vacío.
func OpenInMemoryDB(t *testing.T) *sqlite.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "_" + uuid.NewString()
	db, err := sqlite.Open(context.Background(), sqlite.Options{
		Path: "file:" + name + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// OpenBootstrappedDB abre una base en memoria con el esquema creado y las cuentas fijas sembradas.
func OpenBootstrappedDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := OpenInMemoryDB(t)
	if _, err := sqlite.NewBootstrapper(db, Hasher()).Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap test db: %v", err)
	}
	return db
}
