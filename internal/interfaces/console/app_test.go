package console_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-unison/internal/application/auth"
	"github.com/jhoicas/inventario-unison/internal/application/dto"
	"github.com/jhoicas/inventario-unison/internal/application/usecase"
	"github.com/jhoicas/inventario-unison/internal/i18n"
	"github.com/jhoicas/inventario-unison/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-unison/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-unison/internal/interfaces/console"
	"github.com/jhoicas/inventario-unison/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type harness struct {
	products   *usecase.ProductUseCase
	warehouses *usecase.WarehouseUseCase
	reportDir  string
}

// run ejecuta la aplicación con las líneas dadas como entrada y devuelve la salida.
func (h *harness) run(t *testing.T, db *sqlite.DB, lines ...string) string {
	t.Helper()
	msgs, err := i18n.New("es")
	require.NoError(t, err)

	var out bytes.Buffer
	app := console.NewApp(console.Deps{
		Auth:       auth.NewAuthUseCase(sqlite.NewUserRepository(db), testutil.Hasher()),
		Products:   h.products,
		Warehouses: h.warehouses,
		Reports:    pdf.NewReportGenerator(language.Spanish),
		Messages:   msgs,
		In:         strings.NewReader(strings.Join(lines, "\n") + "\n"),
		Out:        &out,
		ReportDir:  h.reportDir,
	})
	require.NoError(t, app.Run(context.Background()))
	return out.String()
}

func setup(t *testing.T) (*harness, *sqlite.DB) {
	t.Helper()
	db := testutil.OpenBootstrappedDB(t)
	whRepo := sqlite.NewWarehouseRepository(db)
	return &harness{
		products:   usecase.NewProductUseCase(sqlite.NewProductRepository(db), whRepo),
		warehouses: usecase.NewWarehouseUseCase(whRepo),
		reportDir:  t.TempDir(),
	}, db
}

// ──────────────────────────────────────────────────────────────────────────────
// Inicio de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestApp_EntradaAgotada(t *testing.T) {
	h, db := setup(t)
	out := h.run(t, db)
	assert.Contains(t, out, "=== Inicio de sesión ===")
	assert.True(t, strings.HasSuffix(out, "Hasta luego.\n"))
}

// Usuario inexistente y contraseña incorrecta muestran el mismo mensaje.
func TestApp_LoginFallido(t *testing.T) {
	h, db := setup(t)
	out := h.run(t, db,
		"Admin", "malo",
		"fantasma", "admin123",
		"", "",
	)
	assert.Equal(t, 2, strings.Count(out, "Usuario o contraseña incorrectos"))
	assert.Contains(t, out, "Por favor, ingrese usuario y contraseña")
	assert.NotContains(t, out, "Bienvenido")
}

func TestApp_LoginYSalir(t *testing.T) {
	h, db := setup(t)
	out := h.run(t, db, "productos", "producto19", "9", "0")
	assert.Contains(t, out, "Bienvenido, productos (rol: PRODUCTOS)")
	assert.Contains(t, out, "Opción no válida")
	assert.True(t, strings.HasSuffix(out, "Hasta luego.\n"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestApp_SoloLecturaEnProductos(t *testing.T) {
	h, db := setup(t)
	out := h.run(t, db,
		"almacen", "almacen11",
		"1", // productos
		"n",
		"v",
		"0",
	)
	assert.Contains(t, out, "Modo de solo lectura. Rol no autorizado para editar.")
	assert.Contains(t, out, "n) nuevo [deshabilitado]")
	assert.NotContains(t, out, "=== Nuevo producto ===")
}

// ──────────────────────────────────────────────────────────────────────────────
// Almacenes
// ──────────────────────────────────────────────────────────────────────────────

func TestApp_CicloDeAlmacen(t *testing.T) {
	h, db := setup(t)
	ctx := context.Background()
	out := h.run(t, db,
		"Admin", "admin123",
		"2",
		"n", "Norte", "g", // alta
		"Norte", "g", // duplicado
		"", "v",
		"e 1", "a", "Centro", // renombrar
		"d", "s", // eliminar
		"v", "0",
	)
	assert.Contains(t, out, "No hay registros.")
	assert.Contains(t, out, "¡Almacén guardado con éxito!")
	assert.Contains(t, out, "Error: El almacén 'Norte' ya existe")
	assert.Contains(t, out, "Nombre [Norte]")
	assert.Contains(t, out, "¡Almacén actualizado con éxito!")
	assert.Contains(t, out, "¿Confirma eliminar 'Centro'? (s/n)")
	assert.Contains(t, out, "Almacén eliminado.")

	res, err := h.warehouses.List(ctx, dto.WarehouseFilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestApp_FiltroSinResultados(t *testing.T) {
	h, db := setup(t)
	out := h.run(t, db,
		"Admin", "admin123",
		"2",
		"n", "Norte", "g", "", "v",
		"f", "zzz", "", "",
		"r",
		"e x",
		"v", "0",
	)
	assert.Contains(t, out, "No se encontraron resultados con esos filtros.")
	assert.Contains(t, out, "Filtros activos: Nombre: zzz")
	assert.Contains(t, out, "Error: Indique un ID numérico")
}

func TestApp_ExportarAlmacenes(t *testing.T) {
	h, db := setup(t)
	out := h.run(t, db, "Admin", "admin123", "2", "p", "v", "0")
	assert.Contains(t, out, "Reporte guardado en")

	files, err := filepath.Glob(filepath.Join(h.reportDir, "almacenes_*.pdf"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestApp_ProductoSinAlmacenes(t *testing.T) {
	h, db := setup(t)
	out := h.run(t, db, "Admin", "admin123", "1", "n", "v", "0")
	assert.Contains(t, out, "No hay almacenes registrados.")
	assert.NotContains(t, out, "=== Nuevo producto ===")
}

func TestApp_ProductoYAlmacenEnUso(t *testing.T) {
	h, db := setup(t)
	ctx := context.Background()
	out := h.run(t, db,
		"Admin", "admin123",
		"2", "n", "Norte", "g", "", "v", "v",
		"1", "n",
		"Taladro", "abc", "", "", "1", "g", // precio inválido
		"", "-", "5", "", "", "g", // corrige y guarda
		"", "", "", "", "", "v",
		"v",
		"2", "e 1", "d", "s", // almacén en uso
		"v", "v", "0",
	)
	assert.Contains(t, out, "Almacenes disponibles: 1) Norte")
	assert.Contains(t, out, "Error: El precio debe ser numérico")
	assert.Contains(t, out, "¡Producto guardado con éxito!")
	assert.Contains(t, out, "Error: No se puede borrar, almacén en uso por productos")

	res, err := h.products.List(ctx, dto.ProductFilterRequest{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	p := res.Items[0]
	assert.Equal(t, "Taladro", p.Name)
	assert.False(t, p.Price.Valid, "'-' deja el precio vacío")
	require.NotNil(t, p.Quantity)
	assert.Equal(t, int64(5), *p.Quantity)
	assert.Equal(t, "Norte", p.WarehouseName)
	assert.Equal(t, "Admin", p.LastModifiedBy)

	_, err = h.warehouses.GetByID(ctx, 1)
	assert.NoError(t, err)
}

func TestApp_FiltroPrecioInvalido(t *testing.T) {
	h, db := setup(t)
	out := h.run(t, db,
		"Admin", "admin123",
		"1", "f", "", "", "", "", "", "caro", "",
		"v", "0",
	)
	assert.Contains(t, out, "Error: El precio mínimo debe ser numérico")
	assert.NotContains(t, out, "Filtros activos")
}
