package dto

import (
	"time"

	"github.com/jhoicas/inventario-unison/internal/domain/repository"
)

// WarehouseInput valores del formulario de almacén.
type WarehouseInput struct {
	Name string `json:"name"`
}

// WarehouseFilterRequest valores del diálogo de filtros de almacenes.
type WarehouseFilterRequest struct {
	Name             string `json:"name"`
	LastModifiedBy   string `json:"last_modified_by"`
	LastModifiedDate string `json:"last_modified_date"`
}

// ToFilter convierte la petición al filtro del repositorio.
func (r WarehouseFilterRequest) ToFilter() repository.WarehouseFilter {
	return repository.WarehouseFilter{
		Name:             r.Name,
		LastModifiedBy:   r.LastModifiedBy,
		LastModifiedDate: r.LastModifiedDate,
	}
}

// WarehouseResponse salida de un almacén.
type WarehouseResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	LastModified   *time.Time `json:"last_modified,omitempty"`
	LastModifiedBy string     `json:"last_modified_by"`
}

// WarehouseListResponse listado de almacenes.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Meta  ListMeta            `json:"meta"`
}
