// Package pdf implementa la generación del comprobante de venta imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: "Comprobante de Venta" + nombre de la empresa      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INFO: Cliente + Fecha  │  ID de venta + Estado + Pago      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cantidad | Precio Unit. | Subtotal        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	│  FOOTER: leyenda de agradecimiento                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/wcoders/ventas-api/internal/domain/entity"
	"github.com/wcoders/ventas-api/internal/domain/unidad"
	"github.com/wcoders/ventas-api/pkg/moneda"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var decimalOne = decimal.NewFromInt(1)

var (
	colorPrimary = &props.Color{Red: 26, Green: 31, Blue: 44}
	colorGray    = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorDanger  = &props.Color{Red: 239, Green: 68, Blue: 68}
	colorSuccess = &props.Color{Red: 16, Green: 185, Blue: 129}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator genera comprobantes de venta usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	venta *entity.Venta,
	items []*entity.VentaItem,
	empresa *entity.Empresa,
) ([]byte, error) {
	nombreEmpresa := "Sistema de Ventas"
	if empresa != nil && empresa.Nombre != "" {
		nombreEmpresa = empresa.Nombre
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Venta", true).
		WithAuthor(nombreEmpresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(nombreEmpresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(infoRow(venta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items, venta.Moneda) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(venta))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título centrado + nombre de la empresa.
func headerRow(nombreEmpresa string) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("Comprobante de Venta", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nombreEmpresa, props.Text{
				Size: 9, Align: align.Center, Top: 10, Color: colorGray,
			}),
		),
	)
}

// infoRow: cliente y fecha (izq), ID, estado y estado de pago (der).
func infoRow(venta *entity.Venta) core.Row {
	fecha := venta.Fecha.Format("02/01/2006 15:04")
	cliente := venta.ClienteNombre
	if cliente == "" {
		cliente = "—"
	}

	pagoColor := colorDanger
	pagoLabel := "Pendiente"
	if venta.EstadoPago == "pagado" {
		pagoColor = colorSuccess
		pagoLabel = "Pagado"
	}

	return row.New(20).Add(
		col.New(6).Add(
			text.New("Cliente: "+cliente, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("ID de Venta: "+venta.ID, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Estado: "+string(venta.Estado), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New("Estado de pago: "+pagoLabel, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 14,
				Color: pagoColor,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Cantidad", 3, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableItemRows: una fila por línea de la venta.
func tableItemRows(items []*entity.VentaItem, cod string) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				it.ProductoNombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				cantidadLabel(it),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				moneda.Formatear(cod, it.PrecioUnitario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				moneda.Formatear(cod, it.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// cantidadLabel arma "2 × Docena (24 un.)" o la cantidad base si el tipo de
// unidad no se reconoce (ventas viejas anteriores al selector de unidad).
func cantidadLabel(it *entity.VentaItem) string {
	nombre, err := unidad.Nombre(it.TipoUnidad)
	if err != nil {
		return it.Cantidad.StringFixed(2)
	}
	factor, err := unidad.Factor(it.TipoUnidad)
	if err != nil || factor.Equal(decimalOne) {
		return fmt.Sprintf("%s %s", it.Cantidad.String(), nombre)
	}
	elegida := it.Cantidad.Div(factor)
	return fmt.Sprintf("%s × %s (%s un.)", elegida.String(), nombre, it.Cantidad.String())
}

// totalRow: total general alineado a la derecha.
func totalRow(venta *entity.Venta) core.Row {
	return row.New(12).Add(
		col.New(8),
		col.New(4).Add(
			text.New("Total: "+moneda.Formatear(venta.Moneda, venta.Total), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
		),
	)
}

// footerRow: leyenda de cierre.
func footerRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Gracias por su compra", props.Text{
				Size: 9, Align: align.Center, Top: 2, Color: colorGray,
			}),
			text.New("Este documento sirve como comprobante de entrega", props.Text{
				Size: 8, Align: align.Center, Top: 7, Color: colorGray,
			}),
		),
	)
}
