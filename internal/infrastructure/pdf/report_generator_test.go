package pdf_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-unison/internal/application/dto"
	"github.com/jhoicas/inventario-unison/internal/infrastructure/pdf"
)

func sampleMeta() pdf.ReportMeta {
	return pdf.ReportMeta{
		Author:  "Admin",
		At:      time.Date(2025, 11, 3, 10, 0, 0, 0, time.Local),
		Filters: []string{"Departamento: pint"},
	}
}

func TestProductReport(t *testing.T) {
	qty := int64(3)
	dept := "Pinturas"
	now := time.Now()
	items := []dto.ProductResponse{
		{ID: 1, Name: "Pintura", Price: decimal.NewNullDecimal(decimal.RequireFromString("25.5")),
			Quantity: &qty, Department: &dept, WarehouseName: "Norte", LastModified: &now, LastModifiedBy: "Admin"},
		{ID: 2, Name: "Brocha"},
	}

	data, err := pdf.NewReportGenerator(language.Spanish).ProductReport(context.Background(), items, sampleMeta())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "debe ser un PDF")
}

func TestWarehouseReport_ListaVacia(t *testing.T) {
	data, err := pdf.NewReportGenerator(language.English).WarehouseReport(context.Background(), nil, pdf.ReportMeta{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestReport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pdf.NewReportGenerator(language.Spanish).WarehouseReport(ctx, nil, sampleMeta())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reportes")
	at := time.Date(2025, 11, 3, 10, 30, 15, 0, time.Local)

	path, err := pdf.Save(dir, "productos", at, []byte("%PDF-1.3"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "productos_20251103_103015.pdf"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(got))
}
