package repository

import (
	"context"

	"github.com/jhoicas/inventario-unison/internal/domain/entity"
)

// WarehouseFilter campos de búsqueda avanzada de almacenes. Un campo vacío no agrega condición.
type WarehouseFilter struct {
	Name             string
	LastModifiedBy   string
	LastModifiedDate string // subcadena, ej. "2025-11"
}

// IsEmpty informa si ningún campo está poblado.
func (f WarehouseFilter) IsEmpty() bool {
	return blank(f.Name) && blank(f.LastModifiedBy) && blank(f.LastModifiedDate)
}

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(ctx context.Context, w *entity.Warehouse) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	GetByName(ctx context.Context, name string) (*entity.Warehouse, error)
	Update(ctx context.Context, w *entity.Warehouse) error
	List(ctx context.Context, f WarehouseFilter) ([]*entity.Warehouse, error)
	// ListNames devuelve los almacenes ordenados por nombre (opciones del formulario de producto).
	ListNames(ctx context.Context) ([]*entity.Warehouse, error)
	// Delete devuelve domain.ErrWarehouseInUse si algún producto lo referencia.
	Delete(ctx context.Context, id int64) error
}
