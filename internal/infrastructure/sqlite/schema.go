package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/inventario-unison/internal/domain/entity"
)

// PasswordHasher es lo mínimo que necesita el bootstrap para sembrar cuentas.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// FixedAccount cuenta sembrada por el bootstrap.
type FixedAccount struct {
	Name     string
	Password string
	Role     entity.Role
}

// FixedAccounts son las tres cuentas base del sistema.
var FixedAccounts = []FixedAccount{
	{Name: "Admin", Password: "admin123", Role: entity.RoleAdmin},
	{Name: "almacen", Password: "almacen11", Role: entity.RoleWarehouses},
	{Name: "productos", Password: "producto19", Role: entity.RoleProducts},
}

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS usuarios (
		ID INTEGER PRIMARY KEY AUTOINCREMENT,
		NOMBRE TEXT UNIQUE NOT NULL,
		"CONTRASEÑA" TEXT NOT NULL,
		"ULTIMO INICIO DE SESION" TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS almacenes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre TEXT UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS productos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre TEXT NOT NULL,
		precio REAL,
		cantidad INTEGER,
		departamento TEXT,
		almacen INTEGER REFERENCES almacenes(id)
	)`,
}

// additiveColumn columna que se agrega solo si falta.
type additiveColumn struct {
	Table, Column, Type string
}

var additiveColumns = []additiveColumn{
	{"usuarios", "rol", "TEXT"},
	{"productos", "fecha_ultima_modificacion", "TEXT"},
	{"productos", "ultimo_usuario_en_modificar", "TEXT"},
	{"almacenes", "fecha_ultima_modificacion", "TEXT"},
	{"almacenes", "ultimo_usuario_en_modificar", "TEXT"},
}

var (
	identifierRe = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_ ]*$`)
	columnTypeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z ]*$`)
)

// BootstrapReport resume lo que hizo el bootstrap.
type BootstrapReport struct {
	AddedColumns   []string // "tabla.columna"
	SeededAccounts []string
}

// Bootstrapper crea el esquema de forma idempotente. Nunca elimina datos.
type Bootstrapper struct {
	db     *DB
	hasher PasswordHasher
}

// NewBootstrapper construye el bootstrapper.
func NewBootstrapper(db *DB, hasher PasswordHasher) *Bootstrapper {
	return &Bootstrapper{db: db, hasher: hasher}
}

// Bootstrap ejecuta EnsureSchema y SeedFixedAccounts.
func (b *Bootstrapper) Bootstrap(ctx context.Context) (*BootstrapReport, error) {
	added, err := b.EnsureSchema(ctx)
	if err != nil {
		return nil, err
	}
	seeded, err := b.SeedFixedAccounts(ctx)
	if err != nil {
		return nil, err
	}
	return &BootstrapReport{AddedColumns: added, SeededAccounts: seeded}, nil
}

// EnsureSchema crea las tablas ausentes y agrega las columnas aditivas que falten.
// Devuelve las columnas agregadas en esta llamada.
func (b *Bootstrapper) EnsureSchema(ctx context.Context) ([]string, error) {
	var added []string
	err := b.db.inTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, stmt := range createStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("crear tabla: %w", err)
			}
		}
		for _, c := range additiveColumns {
			ok, err := ensureColumn(ctx, tx, c.Table, c.Column, c.Type)
			if err != nil {
				return err
			}
			if ok {
				added = append(added, c.Table+"."+c.Column)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// EnsureColumn agrega la columna solo si no existe. Informa si la agregó.
func (b *Bootstrapper) EnsureColumn(ctx context.Context, table, column, columnType string) (bool, error) {
	var added bool
	err := b.db.inTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error
		added, err = ensureColumn(ctx, tx, table, column, columnType)
		return err
	})
	return added, err
}

// SeedFixedAccounts inserta las cuentas base si no existen (insert-or-ignore: nunca cambia una
// contraseña existente) y asigna a cada una su rol fijo.
func (b *Bootstrapper) SeedFixedAccounts(ctx context.Context) ([]string, error) {
	var seeded []string
	err := b.db.inTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, acc := range FixedAccounts {
			var exists int
			if err := tx.GetContext(ctx, &exists,
				`SELECT COUNT(*) FROM usuarios WHERE NOMBRE = ?`, acc.Name); err != nil {
				return fmt.Errorf("verificar usuario %s: %w", acc.Name, err)
			}
			if exists == 0 {
				hash, err := b.hasher.Hash(acc.Password)
				if err != nil {
					return fmt.Errorf("cifrar contraseña de %s: %w", acc.Name, err)
				}
				res, err := tx.ExecContext(ctx,
					`INSERT OR IGNORE INTO usuarios (NOMBRE, "CONTRASEÑA") VALUES (?, ?)`, acc.Name, hash)
				if err != nil {
					return fmt.Errorf("insertar usuario %s: %w", acc.Name, err)
				}
				if n, _ := res.RowsAffected(); n > 0 {
					seeded = append(seeded, acc.Name)
				}
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE usuarios SET rol = ? WHERE NOMBRE = ?`, string(acc.Role), acc.Name); err != nil {
				return fmt.Errorf("asignar rol a %s: %w", acc.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seeded, nil
}

type columnInfo struct {
	CID     int            `db:"cid"`
	Name    string         `db:"name"`
	Type    string         `db:"type"`
	NotNull int            `db:"notnull"`
	Default sql.NullString `db:"dflt_value"`
	PK      int            `db:"pk"`
}

func ensureColumn(ctx context.Context, tx *sqlx.Tx, table, column, columnType string) (bool, error) {
	if !identifierRe.MatchString(table) || !identifierRe.MatchString(column) {
		return false, fmt.Errorf("identificador inválido: %q.%q", table, column)
	}
	if !columnTypeRe.MatchString(columnType) {
		return false, fmt.Errorf("tipo de columna inválido: %q", columnType)
	}

	var cols []columnInfo
	if err := tx.SelectContext(ctx, &cols, fmt.Sprintf(`PRAGMA table_info("%s")`, table)); err != nil {
		return false, fmt.Errorf("leer columnas de %s: %w", table, err)
	}
	if len(cols) == 0 {
		return false, fmt.Errorf("tabla %s no existe", table)
	}
	for _, c := range cols {
		if strings.EqualFold(c.Name, column) {
			return false, nil
		}
	}
	stmt := fmt.Sprintf(`ALTER TABLE "%s" ADD COLUMN "%s" %s`, table, column, columnType)
	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		return false, fmt.Errorf("agregar columna %s.%s: %w", table, column, err)
	}
	return true, nil
}
