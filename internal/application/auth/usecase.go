package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/inventario-unison/internal/application/dto"
	"github.com/jhoicas/inventario-unison/internal/application/session"
	"github.com/jhoicas/inventario-unison/internal/domain"
	"github.com/jhoicas/inventario-unison/internal/domain/repository"
)

// PasswordHasher hashea y verifica contraseñas. legacy indica un hash antiguo que debe re-hashearse.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(stored, plain string) (ok, legacy bool)
}

// AuthUseCase verifica credenciales y abre la sesión del usuario.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher PasswordHasher
	now    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, hasher PasswordHasher) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, now: time.Now}
}

// Verify comprueba usuario y contraseña. Usuario inexistente y contraseña incorrecta devuelven
// el mismo domain.ErrInvalidCredentials. Si el hash es legado se actualiza a bcrypt.
func (uc *AuthUseCase) Verify(ctx context.Context, in dto.LoginRequest) (*session.Session, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", domain.ReasonRequired)
	}
	if in.Password == "" {
		return nil, domain.NewValidationError("password", domain.ReasonRequired)
	}

	user, err := uc.users.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	ok, legacy := uc.hasher.Verify(user.PasswordHash, in.Password)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if legacy {
		// un fallo al re-hashear no impide el login; se reintenta en el próximo
		if hash, err := uc.hasher.Hash(in.Password); err == nil {
			_ = uc.users.UpdatePasswordHash(ctx, user.ID, hash)
		}
	}
	if err := uc.users.UpdateLastLogin(ctx, user.ID, uc.now()); err != nil {
		return nil, err
	}
	return session.New(user.Name, user.Role), nil
}
