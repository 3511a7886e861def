// Package pdf genera los reportes de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte   │  Fecha + usuario             │
//	│  FILTROS: criterios aplicados (si los hay)                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por registro                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: registros / unidades / valor del stock            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventario-unison/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "02/01/2006 15:04"

// ReportMeta datos de cabecera comunes a los reportes.
type ReportMeta struct {
	Author  string    // usuario de la sesión
	At      time.Time // instante de generación
	Filters []string  // criterios "Campo: valor" aplicados; vacío = sin filtros
}

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator genera reportes de listados con Maroto v2.
type ReportGenerator struct {
	printer *message.Printer
}

// NewReportGenerator construye el generador. tag decide el formato de miles.
func NewReportGenerator(tag language.Tag) *ReportGenerator {
	return &ReportGenerator{printer: message.NewPrinter(tag)}
}

// ProductReport genera el reporte de productos y devuelve sus bytes.
func (g *ReportGenerator) ProductReport(ctx context.Context, items []dto.ProductResponse, meta ReportMeta) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := g.newDocument("Reporte de productos", meta)

	m.AddRows(productHeaderRow())
	var units int64
	value := decimal.Zero
	for _, p := range items {
		m.AddRows(g.productRow(p))
		if p.Quantity != nil {
			units += *p.Quantity
			if p.Price.Valid {
				value = value.Add(p.Price.Decimal.Mul(decimal.NewFromInt(*p.Quantity)))
			}
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(
		[2]string{"Productos:", g.printer.Sprintf("%d", len(items))},
		[2]string{"Unidades:", g.printer.Sprintf("%d", units)},
		[2]string{"Valor del stock:", "$" + g.money(value)},
	))
	return generate(m)
}

// WarehouseReport genera el reporte de almacenes y devuelve sus bytes.
func (g *ReportGenerator) WarehouseReport(ctx context.Context, items []dto.WarehouseResponse, meta ReportMeta) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := g.newDocument("Reporte de almacenes", meta)

	m.AddRows(tableHeader(
		headerCell{"ID", 1, align.Center},
		headerCell{"Nombre", 5, align.Left},
		headerCell{"Última modificación", 3, align.Left},
		headerCell{"Modificado por", 3, align.Left},
	))
	for _, w := range items {
		m.AddRows(row.New(7).Add(
			cell(strconv.FormatInt(w.ID, 10), 1, align.Center),
			cell(w.Name, 5, align.Left),
			cell(formatDate(w.LastModified), 3, align.Left),
			cell(nonEmpty(w.LastModifiedBy, "—"), 3, align.Left),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow([2]string{"Almacenes:", g.printer.Sprintf("%d", len(items))}))
	return generate(m)
}

// Save escribe el PDF en dir con un nombre que incluye prefix y la fecha; devuelve la ruta.
func Save(dir, prefix string, at time.Time, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: crear carpeta: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.pdf", prefix, at.Format("20060102_150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	return path, nil
}

func (g *ReportGenerator) newDocument(title string, meta ReportMeta) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(meta.Author, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(title, meta))
	if len(meta.Filters) > 0 {
		m.AddRows(filtersRow(meta.Filters))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	return m
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha + usuario (der).
func headerRow(title string, meta ReportMeta) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+meta.At.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Usuario: "+nonEmpty(meta.Author, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func filtersRow(filters []string) core.Row {
	var s string
	for i, f := range filters {
		if i > 0 {
			s += "   |   "
		}
		s += f
	}
	return row.New(8).Add(col.New(12).Add(
		text.New("Filtros: "+s, props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

type headerCell struct {
	label string
	size  int
	align align.Type
}

func tableHeader(cells ...headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func cell(s string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func productHeaderRow() core.Row {
	return tableHeader(
		headerCell{"ID", 1, align.Center},
		headerCell{"Nombre", 3, align.Left},
		headerCell{"Precio", 2, align.Right},
		headerCell{"Cant.", 1, align.Right},
		headerCell{"Departamento", 2, align.Left},
		headerCell{"Almacén", 2, align.Left},
		headerCell{"Modif. por", 1, align.Left},
	)
}

func (g *ReportGenerator) productRow(p dto.ProductResponse) core.Row {
	price := "—"
	if p.Price.Valid {
		price = "$" + g.money(p.Price.Decimal)
	}
	quantity := "—"
	if p.Quantity != nil {
		quantity = g.printer.Sprintf("%d", *p.Quantity)
	}
	department := "—"
	if p.Department != nil {
		department = *p.Department
	}
	return row.New(7).Add(
		cell(strconv.FormatInt(p.ID, 10), 1, align.Center),
		cell(p.Name, 3, align.Left),
		cell(price, 2, align.Right),
		cell(quantity, 1, align.Right),
		cell(department, 2, align.Left),
		cell(nonEmpty(p.WarehouseName, "—"), 2, align.Left),
		cell(nonEmpty(p.LastModifiedBy, "—"), 1, align.Left),
	)
}

// totalsRow: pares etiqueta/valor alineados a la derecha.
func totalsRow(pairs ...[2]string) core.Row {
	labels := make([]core.Component, 0, len(pairs))
	values := make([]core.Component, 0, len(pairs))
	for i, p := range pairs {
		top := float64(6*i + 1)
		labels = append(labels, text.New(p[0], props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		}))
		values = append(values, text.New(p[1], props.Text{Size: 9, Align: align.Right, Right: 1, Top: top}))
	}
	return row.New(float64(6*len(pairs)+2)).Add(
		col.New(6),
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con separador de miles del idioma y dos decimales.
func (g *ReportGenerator) money(d decimal.Decimal) string {
	return g.printer.Sprintf("%.2f", d.InexactFloat64())
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format(dateLayout)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
