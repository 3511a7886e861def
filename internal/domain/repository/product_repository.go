package repository

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-unison/internal/domain/entity"
)

// ProductFilter campos de búsqueda avanzada de productos. Los textos se comparan con LIKE %v%;
// los límites de precio son comparaciones >= y <=.
type ProductFilter struct {
	Name             string
	Department       string
	WarehouseName    string
	LastModifiedBy   string
	LastModifiedDate string
	PriceMin         *decimal.Decimal
	PriceMax         *decimal.Decimal
}

// IsEmpty informa si ningún campo está poblado.
func (f ProductFilter) IsEmpty() bool {
	return blank(f.Name) && blank(f.Department) && blank(f.WarehouseName) &&
		blank(f.LastModifiedBy) && blank(f.LastModifiedDate) &&
		f.PriceMin == nil && f.PriceMax == nil
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
