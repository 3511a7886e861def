package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductInput valores crudos del formulario de producto. Warehouse es el nombre del almacén elegido.
type ProductInput struct {
	Name       string `json:"name"`
	Price      string `json:"price"`
	Quantity   string `json:"quantity"`
	Department string `json:"department"`
	Warehouse  string `json:"warehouse"`
}

// ProductFilterRequest valores del diálogo de filtros de productos. Los límites de precio
// llegan como texto y se validan en el caso de uso.
type ProductFilterRequest struct {
	Name             string `json:"name"`
	Department       string `json:"department"`
	Warehouse        string `json:"warehouse"`
	PriceMin         string `json:"price_min"`
	PriceMax         string `json:"price_max"`
	LastModifiedBy   string `json:"last_modified_by"`
	LastModifiedDate string `json:"last_modified_date"`
}

// ProductResponse salida de un producto. Los campos opcionales son nil cuando están vacíos.
type ProductResponse struct {
	ID             int64               `json:"id"`
	Name           string              `json:"name"`
	Price          decimal.NullDecimal `json:"price"`
	Quantity       *int64              `json:"quantity"`
	Department     *string             `json:"department"`
	WarehouseID    *int64              `json:"warehouse_id"`
	WarehouseName  string              `json:"warehouse_name"`
	LastModified   *time.Time          `json:"last_modified,omitempty"`
	LastModifiedBy string              `json:"last_modified_by"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}
