package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-unison/pkg/password"
)

func TestHasher_HashYVerify(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)
	hash, err := h.Hash("admin123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"), "debe ser bcrypt")

	ok, legacy := h.Verify(hash, "admin123")
	assert.True(t, ok)
	assert.False(t, legacy)

	ok, _ = h.Verify(hash, "otra")
	assert.False(t, ok)
}

func TestHasher_Legado(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)
	stored := password.LegacyHash("almacen11")
	require.True(t, password.IsLegacy(stored))

	ok, legacy := h.Verify(stored, "almacen11")
	assert.True(t, ok)
	assert.True(t, legacy)

	ok, legacy = h.Verify(strings.ToUpper(stored), "almacen11")
	assert.True(t, ok, "el hex en mayúsculas también coincide")
	assert.True(t, legacy)

	ok, _ = h.Verify(stored, "almacen12")
	assert.False(t, ok)
}

func TestHasher_HashVacioOCorrupto(t *testing.T) {
	h := password.NewHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, h.Cost)

	for _, stored := range []string{"", "   ", "no-es-un-hash"} {
		ok, legacy := h.Verify(stored, "")
		assert.False(t, ok, stored)
		assert.False(t, legacy, stored)
	}
}

func TestIsLegacy(t *testing.T) {
	assert.False(t, password.IsLegacy("abc"))
	assert.False(t, password.IsLegacy(strings.Repeat("z", 64)))
	assert.True(t, password.IsLegacy(strings.Repeat("a", 64)))
}
