package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/inventario-unison/internal/application/dto"
	"github.com/jhoicas/inventario-unison/internal/application/session"
	"github.com/jhoicas/inventario-unison/internal/domain"
	"github.com/jhoicas/inventario-unison/internal/domain/entity"
	"github.com/jhoicas/inventario-unison/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para almacenes.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
	now  func() time.Time
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, now: time.Now}
}

// Create crea un almacén sellado con la sesión. El nombre es obligatorio y único.
func (uc *WarehouseUseCase) Create(ctx context.Context, sess *session.Session, in dto.WarehouseInput) (*dto.WarehouseResponse, error) {
	if err := sess.Authorize(entity.ResourceWarehouse); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", domain.ReasonRequired)
	}
	stamp := sess.Stamp(uc.now())
	warehouse := &entity.Warehouse{
		Name:           name,
		LastModified:   &stamp.At,
		LastModifiedBy: stamp.By,
	}
	if _, err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene un almacén por ID (domain.ErrNotFound si no existe).
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id int64) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Update renombra el almacén y vuelve a sellarlo con la sesión.
func (uc *WarehouseUseCase) Update(ctx context.Context, sess *session.Session, id int64, in dto.WarehouseInput) (*dto.WarehouseResponse, error) {
	if err := sess.Authorize(entity.ResourceWarehouse); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", domain.ReasonRequired)
	}
	stamp := sess.Stamp(uc.now())
	warehouse := &entity.Warehouse{
		ID:             id,
		Name:           name,
		LastModified:   &stamp.At,
		LastModifiedBy: stamp.By,
	}
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista almacenes; sin campos de filtro devuelve todos.
func (uc *WarehouseUseCase) List(ctx context.Context, in dto.WarehouseFilterRequest) (*dto.WarehouseListResponse, error) {
	filter := in.ToFilter()
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Meta:  dto.ListMeta{Total: len(items), Filtered: !filter.IsEmpty()},
	}, nil
}

// Names devuelve los nombres de almacén ordenados (opciones del formulario de producto).
func (uc *WarehouseUseCase) Names(ctx context.Context) ([]string, error) {
	list, err := uc.repo.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list))
	for _, w := range list {
		names = append(names, w.Name)
	}
	return names, nil
}

// Delete elimina un almacén; domain.ErrWarehouseInUse si hay productos que lo referencian.
func (uc *WarehouseUseCase) Delete(ctx context.Context, sess *session.Session, id int64) error {
	if err := sess.Authorize(entity.ResourceWarehouse); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:             w.ID,
		Name:           w.Name,
		LastModified:   w.LastModified,
		LastModifiedBy: w.LastModifiedBy,
	}
}
