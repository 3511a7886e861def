package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/inventario-unison/internal/domain"
	"github.com/jhoicas/inventario-unison/internal/domain/entity"
	"github.com/jhoicas/inventario-unison/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la tabla productos.
type ProductRepo struct {
	db *DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productSelect = `
	SELECT p.id, p.nombre, p.precio, p.cantidad, p.departamento, p.almacen,
	       a.nombre AS nombre_almacen,
	       p.fecha_ultima_modificacion, p.ultimo_usuario_en_modificar
	FROM productos p
	LEFT JOIN almacenes a ON p.almacen = a.id`

type productRow struct {
	ID             int64          `db:"id"`
	Name           string         `db:"nombre"`
	Price          sql.NullString `db:"precio"`
	Quantity       sql.NullString `db:"cantidad"`
	Department     sql.NullString `db:"departamento"`
	WarehouseID    sql.NullInt64  `db:"almacen"`
	WarehouseName  sql.NullString `db:"nombre_almacen"`
	LastModified   sql.NullString `db:"fecha_ultima_modificacion"`
	LastModifiedBy sql.NullString `db:"ultimo_usuario_en_modificar"`
}

func (row productRow) toEntity() *entity.Product {
	return &entity.Product{
		ID:             row.ID,
		Name:           row.Name,
		Price:          parseNullDecimal(row.Price),
		Quantity:       parseNullInt(row.Quantity),
		Department:     nullString(row.Department),
		WarehouseID:    nullInt(row.WarehouseID),
		WarehouseName:  nullString(row.WarehouseName),
		LastModified:   parseTimestamp(row.LastModified),
		LastModifiedBy: row.LastModifiedBy.String,
	}
}

// Create persiste un producto nuevo. Los campos opcionales nil se guardan como NULL.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) (int64, error) {
	var id int64
	err := r.db.inTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO productos (nombre, precio, cantidad, departamento, almacen,
			                       fecha_ultima_modificacion, ultimo_usuario_en_modificar)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.Name, p.Price, p.Quantity, p.Department, p.WarehouseID,
			stampValue(p.LastModified), p.LastModifiedBy,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.NewValidationError("warehouse", domain.ReasonUnknown)
			}
			return fmt.Errorf("insert product: %w", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

// GetByID obtiene un producto por ID, con el nombre de su almacén.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var row productRow
	if err := r.db.GetContext(ctx, &row, productSelect+` WHERE p.id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toEntity(), nil
}

// Update reemplaza todos los campos editables y el sello de auditoría.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return r.db.inTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE productos SET
				nombre = ?, precio = ?, cantidad = ?, departamento = ?, almacen = ?,
				fecha_ultima_modificacion = ?, ultimo_usuario_en_modificar = ?
			WHERE id = ?`,
			p.Name, p.Price, p.Quantity, p.Department, p.WarehouseID,
			stampValue(p.LastModified), p.LastModifiedBy, p.ID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.NewValidationError("warehouse", domain.ReasonUnknown)
			}
			return fmt.Errorf("update product: %w", err)
		}
		return requireAffected(res)
	})
}

// List devuelve los productos que cumplen el filtro, en el orden de la base.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	where, args := newWhereBuilder().
		contains("p.nombre", f.Name).
		contains("p.departamento", f.Department).
		contains("a.nombre", f.WarehouseName).
		atLeast("p.precio", f.PriceMin).
		atMost("p.precio", f.PriceMax).
		contains("p.ultimo_usuario_en_modificar", f.LastModifiedBy).
		contains("p.fecha_ultima_modificacion", f.LastModifiedDate).
		build()

	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, productSelect+where, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	return r.db.inTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM productos WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		return requireAffected(res)
	})
}
