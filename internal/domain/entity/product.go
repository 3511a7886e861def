package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. Los campos opcionales son NULL
// en la base cuando el usuario los deja en blanco.
type Product struct {
	ID             int64
	Name           string
	Price          decimal.NullDecimal
	Quantity       *int64
	Department     *string
	WarehouseID    *int64
	WarehouseName  *string // solo lectura, viene del JOIN con almacenes
	LastModified   *time.Time
	LastModifiedBy string
}
