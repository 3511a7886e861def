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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre la tabla almacenes.
type WarehouseRepo struct {
	db *DB
}

// NewWarehouseRepository construye el adaptador de persistencia para almacenes.
func NewWarehouseRepository(db *DB) *WarehouseRepo {
	return &WarehouseRepo{db: db}
}

const warehouseColumns = `id, nombre, fecha_ultima_modificacion, ultimo_usuario_en_modificar`

type warehouseRow struct {
	ID             int64          `db:"id"`
	Name           string         `db:"nombre"`
	LastModified   sql.NullString `db:"fecha_ultima_modificacion"`
	LastModifiedBy sql.NullString `db:"ultimo_usuario_en_modificar"`
}

func (row warehouseRow) toEntity() *entity.Warehouse {
	return &entity.Warehouse{
		ID:             row.ID,
		Name:           row.Name,
		LastModified:   parseTimestamp(row.LastModified),
		LastModifiedBy: row.LastModifiedBy.String,
	}
}

// Create persiste un almacén nuevo y devuelve su ID.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) (int64, error) {
	var id int64
	err := r.db.inTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO almacenes (nombre, fecha_ultima_modificacion, ultimo_usuario_en_modificar)
			VALUES (?, ?, ?)`,
			w.Name, stampValue(w.LastModified), w.LastModifiedBy,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert warehouse: %w", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	w.ID = id
	return id, nil
}

// GetByID obtiene un almacén por ID.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	return r.getOne(ctx, `SELECT `+warehouseColumns+` FROM almacenes WHERE id = ?`, id)
}

// GetByName obtiene un almacén por nombre exacto.
func (r *WarehouseRepo) GetByName(ctx context.Context, name string) (*entity.Warehouse, error) {
	return r.getOne(ctx, `SELECT `+warehouseColumns+` FROM almacenes WHERE nombre = ?`, name)
}

func (r *WarehouseRepo) getOne(ctx context.Context, query string, arg any) (*entity.Warehouse, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var row warehouseRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return row.toEntity(), nil
}

// Update actualiza nombre y sello de auditoría.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	return r.db.inTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE almacenes SET nombre = ?, fecha_ultima_modificacion = ?, ultimo_usuario_en_modificar = ?
			WHERE id = ?`,
			w.Name, stampValue(w.LastModified), w.LastModifiedBy, w.ID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("update warehouse: %w", err)
		}
		return requireAffected(res)
	})
}

// List devuelve los almacenes que cumplen el filtro, en el orden de la base.
func (r *WarehouseRepo) List(ctx context.Context, f repository.WarehouseFilter) ([]*entity.Warehouse, error) {
	where, args := newWhereBuilder().
		contains("nombre", f.Name).
		contains("ultimo_usuario_en_modificar", f.LastModifiedBy).
		contains("fecha_ultima_modificacion", f.LastModifiedDate).
		build()
	return r.list(ctx, `SELECT `+warehouseColumns+` FROM almacenes`+where, args...)
}

// ListNames devuelve los almacenes ordenados por nombre.
func (r *WarehouseRepo) ListNames(ctx context.Context) ([]*entity.Warehouse, error) {
	return r.list(ctx, `SELECT `+warehouseColumns+` FROM almacenes ORDER BY nombre`)
}

func (r *WarehouseRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Warehouse, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var rows []warehouseRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	list := make([]*entity.Warehouse, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

// Delete elimina un almacén. Falla con ErrWarehouseInUse si algún producto lo referencia,
// aunque la tabla productos no declare la clave foránea.
func (r *WarehouseRepo) Delete(ctx context.Context, id int64) error {
	return r.db.inTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var refs int
		if err := tx.GetContext(ctx, &refs, `SELECT COUNT(*) FROM productos WHERE almacen = ?`, id); err != nil {
			return fmt.Errorf("count warehouse references: %w", err)
		}
		if refs > 0 {
			return domain.ErrWarehouseInUse
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM almacenes WHERE id = ?`, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrWarehouseInUse
			}
			return fmt.Errorf("delete warehouse: %w", err)
		}
		return requireAffected(res)
	})
}

// stampValue convierte el sello de fecha a texto (NULL si falta).
func stampValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTimestamp(*t)
}
