// Package pdf implementa la generación del informe de artículos en PDF.
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│  HEADER: Informe de artículos + fecha de generación              │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  TABLA: Marca | Artículo | Pedido | Tipo | Estado |              │
//	│         Coste total | Venta objetiva | Venta | Beneficio        │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  TOTALES: N artículos / Coste / Venta / Objetiva / Beneficio     │
//	└──────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mvidalcampos/coleccion-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer formatea importes con separadores es-ES (1.234,56).
var printer = message.NewPrinter(language.EuropeanSpanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoInformeGenerator implementa usecase.InformePDFGenerator usando Maroto v2.
type MarotoInformeGenerator struct{}

// NewMarotoInformeGenerator construye el generador.
func NewMarotoInformeGenerator() *MarotoInformeGenerator { return &MarotoInformeGenerator{} }

// GenerateInformePDF genera el informe y devuelve sus bytes.
func (g *MarotoInformeGenerator) GenerateInformePDF(
	_ context.Context,
	filas []repository.FilaInformeArticulo,
	resumen *repository.ResumenArticulos,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Informe de artículos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableFilaRows(filas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesRow(resumen))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del informe y fecha de generación.
func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("INFORME DE ARTÍCULOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de artículos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Marca", 1, align.Left),
		h("Artículo", 3, align.Left),
		h("Pedido", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Estado", 1, align.Center),
		h("Coste total", 1, align.Right),
		h("V. objetiva", 1, align.Right),
		h("Venta", 1, align.Right),
		h("Beneficio", 1, align.Right),
	)
}

// tableFilaRows: una fila por artículo.
func tableFilaRows(filas []repository.FilaInformeArticulo) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(filas))
	for _, f := range filas {
		result = append(result, row.New(6).Add(
			cell(f.Marca, 1, align.Left),
			cell(f.Nombre, 3, align.Left),
			cell(f.Pedido, 2, align.Left),
			cell(f.Tipo, 1, align.Center),
			cell(f.Estado, 1, align.Center),
			cell(formatEUR(f.CosteTotal), 1, align.Right),
			cell(formatEUR(f.VentaObjetiva), 1, align.Right),
			cell(formatEUR(f.PrecioVenta), 1, align.Right),
			cell(formatEUR(f.Beneficio), 1, align.Right),
		))
	}
	return result
}

// totalesRow: bloque de totales alineado a la derecha.
func totalesRow(resumen *repository.ResumenArticulos) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(30).Add(
		col.New(2).Add(
			text.New(fmt.Sprintf("%d artículos", resumen.NumArticulos), props.Text{
				Size: 9, Top: 1, Color: colorGray,
			}),
		),
		col.New(4),
		col.New(3).Add(
			label("Coste total:"),
			label("Venta objetiva:"),
			label("Venta:"),
			label("Beneficio:"),
		),
		col.New(3).Add(
			value(formatEUR(resumen.TotalCoste)),
			value(formatEUR(resumen.TotalObjetiva)),
			value(formatEUR(resumen.TotalVenta)),
			value(formatEUR(resumen.TotalBeneficio)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatEUR formatea un importe con separadores es-ES y símbolo de euro.
// Ej: 1234.5 → "1.234,50 €"
func formatEUR(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f €", f)
}
