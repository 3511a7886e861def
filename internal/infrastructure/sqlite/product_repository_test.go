package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-unison/internal/domain"
	"github.com/jhoicas/inventario-unison/internal/domain/entity"
	"github.com/jhoicas/inventario-unison/internal/domain/repository"
	"github.com/jhoicas/inventario-unison/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-unison/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type productFixture struct {
	products   *sqlite.ProductRepo
	warehouses *sqlite.WarehouseRepo
	db         *sqlite.DB
}

func newProductFixture(t *testing.T) productFixture {
	t.Helper()
	db := testutil.OpenBootstrappedDB(t)
	return productFixture{
		products:   sqlite.NewProductRepository(db),
		warehouses: sqlite.NewWarehouseRepository(db),
		db:         db,
	}
}

func (f productFixture) warehouse(t *testing.T, name string) int64 {
	t.Helper()
	id, err := f.warehouses.Create(context.Background(), newWarehouse(name, "Admin", time.Now()))
	require.NoError(t, err)
	return id
}

func ptr[T any](v T) *T { return &v }

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_IdaYVuelta(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	wid := f.warehouse(t, "Central")
	at := time.Date(2025, 11, 20, 8, 15, 0, 0, time.Local)

	id, err := f.products.Create(ctx, &entity.Product{
		Name:           "Martillo",
		Price:          price("12.50"),
		Quantity:       ptr(int64(7)),
		Department:     ptr("Ferretería"),
		WarehouseID:    &wid,
		LastModified:   &at,
		LastModifiedBy: "productos",
	})
	require.NoError(t, err)

	got, err := f.products.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Martillo", got.Name)
	require.True(t, got.Price.Valid)
	assert.True(t, got.Price.Decimal.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, int64(7), *got.Quantity)
	assert.Equal(t, "Ferretería", *got.Department)
	assert.Equal(t, wid, *got.WarehouseID)
	assert.Equal(t, "Central", *got.WarehouseName)
	assert.Equal(t, "productos", got.LastModifiedBy)
	assert.True(t, at.Equal(*got.LastModified))
}

func TestProductRepo_OpcionalesNulos(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	wid := f.warehouse(t, "Central")

	id, err := f.products.Create(ctx, &entity.Product{Name: "Clavo", WarehouseID: &wid})
	require.NoError(t, err)

	var nulls int
	require.NoError(t, f.db.GetContext(ctx, &nulls, `
		SELECT COUNT(*) FROM productos
		WHERE id = ? AND precio IS NULL AND cantidad IS NULL AND departamento IS NULL`, id))
	assert.Equal(t, 1, nulls, "los opcionales vacíos se guardan como NULL, no como texto vacío")

	got, err := f.products.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Price.Valid)
	assert.Nil(t, got.Quantity)
	assert.Nil(t, got.Department)
}

func TestProductRepo_ActualizarYBorrar(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	central := f.warehouse(t, "Central")
	norte := f.warehouse(t, "Norte")

	id, err := f.products.Create(ctx, &entity.Product{Name: "Clavo", WarehouseID: &central})
	require.NoError(t, err)

	at := time.Now()
	require.NoError(t, f.products.Update(ctx, &entity.Product{
		ID: id, Name: "Clavo 2\"", Price: price("0.10"), WarehouseID: &norte,
		LastModified: &at, LastModifiedBy: "Admin",
	}))
	got, err := f.products.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Clavo 2\"", got.Name)
	assert.Equal(t, "Norte", *got.WarehouseName)
	assert.Equal(t, "Admin", got.LastModifiedBy)

	require.NoError(t, f.products.Delete(ctx, id))
	_, err = f.products.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.products.Delete(ctx, id), domain.ErrNotFound)
	assert.ErrorIs(t, f.products.Update(ctx, &entity.Product{ID: id, Name: "x", WarehouseID: &norte}), domain.ErrNotFound)
}

func TestProductRepo_AlmacenInexistente(t *testing.T) {
	f := newProductFixture(t)
	_, err := f.products.Create(context.Background(), &entity.Product{Name: "Clavo", WarehouseID: ptr(int64(404))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la clave foránea rechaza un almacén que no existe")
}

func TestProductRepo_ValoresLegados(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	wid := f.warehouse(t, "Central")
	// La aplicación original guardaba el texto tal como se escribía.
	_, err := f.db.ExecContext(ctx, `
		INSERT INTO productos (nombre, precio, cantidad, almacen, fecha_ultima_modificacion)
		VALUES ('Viejo', 'caro', '3.0', ?, '2024-05-01T10:00:00.123456')`, wid)
	require.NoError(t, err)

	list, err := f.products.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Price.Valid, "un precio no numérico se lee vacío")
	require.NotNil(t, list[0].Quantity)
	assert.Equal(t, int64(3), *list[0].Quantity)
	require.NotNil(t, list[0].LastModified)
	assert.Equal(t, 2024, list[0].LastModified.Year())
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda avanzada
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_Filtros(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	central := f.warehouse(t, "Central")
	norte := f.warehouse(t, "Norte")
	nov := time.Date(2025, 11, 5, 12, 0, 0, 0, time.Local)
	dec := time.Date(2025, 12, 5, 12, 0, 0, 0, time.Local)

	seed := []*entity.Product{
		{Name: "Martillo", Price: price("12.5"), Department: ptr("Ferretería"), WarehouseID: &central, LastModified: &nov, LastModifiedBy: "Admin"},
		{Name: "Taladro", Price: price("80"), Department: ptr("Ferretería"), WarehouseID: &norte, LastModified: &dec, LastModifiedBy: "productos"},
		{Name: "Pintura", Price: price("25"), Department: ptr("Pinturas"), WarehouseID: &central, LastModified: &dec, LastModifiedBy: "productos"},
		{Name: "Sin precio", WarehouseID: &norte, LastModified: &nov, LastModifiedBy: "Admin"},
	}
	for _, p := range seed {
		_, err := f.products.Create(ctx, p)
		require.NoError(t, err)
	}

	names := func(flt repository.ProductFilter) []string {
		t.Helper()
		list, err := f.products.List(ctx, flt)
		require.NoError(t, err)
		out := make([]string, 0, len(list))
		for _, p := range list {
			out = append(out, p.Name)
		}
		return out
	}
	dec10 := decimal.NewFromInt(10)
	dec30 := decimal.NewFromInt(30)

	assert.Len(t, names(repository.ProductFilter{}), 4)
	assert.Equal(t, []string{"Martillo", "Taladro"}, names(repository.ProductFilter{Department: "ferre"}))
	assert.Equal(t, []string{"Taladro", "Sin precio"}, names(repository.ProductFilter{WarehouseName: "nor"}))
	assert.Equal(t, []string{"Martillo", "Pintura"}, names(repository.ProductFilter{PriceMin: &dec10, PriceMax: &dec30}))
	assert.Equal(t, []string{"Taladro"}, names(repository.ProductFilter{PriceMin: &dec30}),
		"un precio NULL nunca cumple un límite")
	assert.Equal(t, []string{"Taladro", "Pintura"}, names(repository.ProductFilter{LastModifiedBy: "productos"}))
	assert.Equal(t, []string{"Martillo", "Sin precio"}, names(repository.ProductFilter{LastModifiedDate: "2025-11"}))
	assert.Equal(t, []string{"Pintura"}, names(repository.ProductFilter{
		Department: "Pint", WarehouseName: "Central", PriceMax: &dec30, LastModifiedDate: "2025-12",
	}), "todos los criterios se combinan con AND")
	assert.Empty(t, names(repository.ProductFilter{Name: "zzz"}))
}
