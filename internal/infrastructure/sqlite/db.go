// Package sqlite implementa los puertos de persistencia sobre un archivo SQLite local.
package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const defaultTimeout = 5 * time.Second

// Options configuración de la conexión.
type Options struct {
	// Path ruta del archivo o DSN "file:" completo (ej. "file:test?mode=memory&cache=shared").
	Path string
	// Timeout por operación; cero usa el valor por defecto.
	Timeout time.Duration
}

// DB envuelve *sqlx.DB con el timeout por operación que usan los repositorios.
type DB struct {
	*sqlx.DB
	timeout time.Duration
}

// Open abre (o crea) la base SQLite con claves foráneas activas en cada conexión.
// El pool se limita a una conexión: SQLite admite un solo escritor.
func Open(ctx context.Context, opts Options) (*DB, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("sqlite: ruta de base de datos vacía")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	d, err := sqlx.Open("sqlite3", buildDSN(opts.Path, timeout))
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	d.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := d.PingContext(pingCtx); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	// journal_mode puede no aplicar (ej. en memoria); se ignora el error.
	_, _ = d.ExecContext(pingCtx, `PRAGMA journal_mode=WAL`)

	return &DB{DB: d, timeout: timeout}, nil
}

// buildDSN agrega los parámetros del driver mattn/go-sqlite3 a la ruta.
func buildDSN(path string, timeout time.Duration) string {
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_foreign_keys=1&_busy_timeout=%d", dsn, sep, timeout.Milliseconds())
}

func (d *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.timeout)
}
