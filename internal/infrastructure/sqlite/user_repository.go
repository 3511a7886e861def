package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/inventario-unison/internal/domain"
	"github.com/jhoicas/inventario-unison/internal/domain/entity"
	"github.com/jhoicas/inventario-unison/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la tabla usuarios.
type UserRepo struct {
	db *DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

type userRow struct {
	ID        int64          `db:"id"`
	Name      string         `db:"nombre"`
	Hash      sql.NullString `db:"hash"`
	LastLogin sql.NullString `db:"last_login"`
	Role      sql.NullString `db:"rol"`
}

// FindByName busca por nombre exacto (distingue mayúsculas).
func (r *UserRepo) FindByName(ctx context.Context, name string) (*entity.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT ID AS id, NOMBRE AS nombre, "CONTRASEÑA" AS hash,
		       "ULTIMO INICIO DE SESION" AS last_login, rol
		FROM usuarios WHERE NOMBRE = ?`
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user by name: %w", err)
	}
	return &entity.User{
		ID:           row.ID,
		Name:         row.Name,
		PasswordHash: row.Hash.String,
		Role:         entity.ParseRole(row.Role.String),
		LastLogin:    parseTimestamp(row.LastLogin),
	}, nil
}

// UpdateLastLogin sella la fecha del último inicio de sesión.
func (r *UserRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.db.inTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE usuarios SET "ULTIMO INICIO DE SESION" = ? WHERE ID = ?`, formatTimestamp(at), id)
		if err != nil {
			return fmt.Errorf("update last login: %w", err)
		}
		return requireAffected(res)
	})
}

// UpdatePasswordHash reemplaza el hash guardado (migración de SHA-256 a bcrypt).
func (r *UserRepo) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	return r.db.inTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE usuarios SET "CONTRASEÑA" = ? WHERE ID = ?`, hash, id)
		if err != nil {
			return fmt.Errorf("update password hash: %w", err)
		}
		return requireAffected(res)
	})
}

// requireAffected traduce "0 filas" a ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
