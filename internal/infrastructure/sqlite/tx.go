package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// inTx ejecuta fn dentro de una transacción: Commit si fn termina sin error, Rollback en otro caso.
// La conexión se libera siempre antes de volver.
func (d *DB) inTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("confirmar transacción: %w", err)
	}
	return nil
}
