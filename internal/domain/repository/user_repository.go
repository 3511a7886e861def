package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-unison/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// FindByName devuelve domain.ErrNotFound si no hay coincidencia exacta.
	FindByName(ctx context.Context, name string) (*entity.User, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}
