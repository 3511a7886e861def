package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/inventario-unison/internal/application/dto"
	"github.com/jhoicas/inventario-unison/internal/application/session"
	"github.com/jhoicas/inventario-unison/internal/domain"
	"github.com/jhoicas/inventario-unison/internal/domain/entity"
	"github.com/jhoicas/inventario-unison/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD y búsqueda avanzada de productos.
type ProductUseCase struct {
	repo       repository.ProductRepository
	warehouses repository.WarehouseRepository
	now        func() time.Time
}

// NewProductUseCase construye el caso de uso. warehouses resuelve el almacén elegido por nombre.
func NewProductUseCase(repo repository.ProductRepository, warehouses repository.WarehouseRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, warehouses: warehouses, now: time.Now}
}

// Create crea un producto. Nombre y almacén son obligatorios; los opcionales en blanco quedan NULL.
func (uc *ProductUseCase) Create(ctx context.Context, sess *session.Session, in dto.ProductInput) (*dto.ProductResponse, error) {
	if err := sess.Authorize(entity.ResourceProduct); err != nil {
		return nil, err
	}
	product, err := uc.fromInput(ctx, in)
	if err != nil {
		return nil, err
	}
	uc.stamp(sess, product)
	if _, err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID (domain.ErrNotFound si no existe).
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza los campos del producto y vuelve a sellarlo con la sesión.
func (uc *ProductUseCase) Update(ctx context.Context, sess *session.Session, id int64, in dto.ProductInput) (*dto.ProductResponse, error) {
	if err := sess.Authorize(entity.ResourceProduct); err != nil {
		return nil, err
	}
	product, err := uc.fromInput(ctx, in)
	if err != nil {
		return nil, err
	}
	product.ID = id
	uc.stamp(sess, product)
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List aplica la búsqueda avanzada. Un límite de precio no numérico es error de validación
// y no se consulta la base.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	min, err := bound("price_min", in.PriceMin)
	if err != nil {
		return nil, err
	}
	max, err := bound("price_max", in.PriceMax)
	if err != nil {
		return nil, err
	}
	filter := repository.ProductFilter{
		Name:             in.Name,
		Department:       in.Department,
		WarehouseName:    in.Warehouse,
		LastModifiedBy:   in.LastModifiedBy,
		LastModifiedDate: in.LastModifiedDate,
		PriceMin:         min,
		PriceMax:         max,
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Meta:  dto.ListMeta{Total: len(items), Filtered: !filter.IsEmpty()},
	}, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, sess *session.Session, id int64) error {
	if err := sess.Authorize(entity.ResourceProduct); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// fromInput valida el formulario y resuelve el almacén por nombre.
func (uc *ProductUseCase) fromInput(ctx context.Context, in dto.ProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", domain.ReasonRequired)
	}
	warehouseName := strings.TrimSpace(in.Warehouse)
	if warehouseName == "" {
		return nil, domain.NewValidationError("warehouse", domain.ReasonRequired)
	}
	price, err := optionalDecimal("price", in.Price)
	if err != nil {
		return nil, err
	}
	quantity, err := optionalInt("quantity", in.Quantity)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.warehouses.GetByName(ctx, warehouseName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("warehouse", domain.ReasonUnknown)
		}
		return nil, err
	}
	return &entity.Product{
		Name:          name,
		Price:         price,
		Quantity:      quantity,
		Department:    optionalText(in.Department),
		WarehouseID:   &warehouse.ID,
		WarehouseName: &warehouse.Name,
	}, nil
}

func (uc *ProductUseCase) stamp(sess *session.Session, p *entity.Product) {
	stamp := sess.Stamp(uc.now())
	p.LastModified = &stamp.At
	p.LastModifiedBy = stamp.By
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		Quantity:       p.Quantity,
		Department:     p.Department,
		WarehouseID:    p.WarehouseID,
		LastModified:   p.LastModified,
		LastModifiedBy: p.LastModifiedBy,
	}
	if p.WarehouseName != nil {
		out.WarehouseName = *p.WarehouseName
	}
	return out
}
