// Package password cifra y verifica contraseñas con bcrypt.
// También reconoce los hashes SHA-256 hex sin sal de la base original.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hasher cifra contraseñas con el costo indicado.
type Hasher struct {
	Cost int
}

// NewHasher usa bcrypt.DefaultCost cuando cost es cero.
func NewHasher(cost int) *Hasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{Cost: cost}
}

// Hash devuelve el hash bcrypt de plain.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compara plain con el hash guardado. legacy es verdadero cuando el hash
// es el SHA-256 antiguo y conviene reemplazarlo. Un hash vacío o corrupto nunca coincide.
func (h *Hasher) Verify(stored, plain string) (ok, legacy bool) {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return false, false
	}
	if IsLegacy(stored) {
		got := LegacyHash(plain)
		return subtle.ConstantTimeCompare([]byte(got), []byte(strings.ToLower(stored))) == 1, true
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil, false
}

// LegacyHash calcula el SHA-256 hex que guardaba el sistema original.
func LegacyHash(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// IsLegacy informa si el hash tiene forma de SHA-256 hex.
func IsLegacy(stored string) bool {
	if len(stored) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(stored)
	return err == nil
}
