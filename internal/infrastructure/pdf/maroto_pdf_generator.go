// Package pdf genera la representación imprimible de una factura de
// servicios profesionales con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: "INVOICE" + número  │  Fechas (emisión/vencimiento)│
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + tier/región + contacto                   │
//	│  PROYECTO: nombre + descripción (si aplica)                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Horas | Tarifa | Importe                            │
//	│  TOTAL + estado de pago                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/application/usecase"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/entity"
	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain/finance"
)

var _ usecase.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa usecase.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes. project puede ser
// nil (factura sin proyecto asociado).
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	client *entity.Client,
	project *entity.Project,
	settings finance.Settings,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+shortID(invoice.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	if project != nil {
		m.AddRows(projectRow(project))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRows(invoice, settings)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(invoice, settings))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título INVOICE + número (izq) y fechas (der).
func headerRow(invoice *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+shortID(invoice.ID), props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Issued: "+invoice.InvoiceDate.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Due: "+invoice.DueDate.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente facturado.
func clientRow(client *entity.Client) core.Row {
	meta := client.Tier
	if client.Region != "" {
		meta += "   |   " + client.Region
	}
	if client.ContactEmail != "" {
		meta += "   |   " + client.ContactEmail
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILLED TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6,
			}),
			text.New(meta, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// projectRow: proyecto asociado, si la factura tiene uno.
func projectRow(project *entity.Project) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROJECT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(project.Name, props.Text{Size: 9, Top: 6}),
			text.New(project.Description, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// detailRows: cabecera + línea única de horas facturadas.
func detailRows(invoice *entity.Invoice, settings finance.Settings) []core.Row {
	header := row.New(8).Add(
		col.New(6).Add(text.New("Description", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		})),
		col.New(3).Add(text.New("Hours", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
		col.New(3).Add(text.New("Amount", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
	detail := row.New(7).Add(
		col.New(6).Add(text.New("Professional services", props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(invoice.HoursBilled.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1,
		})),
		col.New(3).Add(text.New(settings.FormatAmount(invoice.Amount), props.Text{
			Size: 8, Align: align.Right, Top: 1,
		})),
	)
	return []core.Row{header, detail}
}

// totalRow: total a pagar + estado de pago.
func totalRow(invoice *entity.Invoice, settings finance.Settings) core.Row {
	status := strings.ToUpper(invoice.Status)
	if invoice.PaidDate != nil {
		status += " · " + invoice.PaidDate.Format("02/01/2006")
	}
	return row.New(12).Add(
		col.New(6).Add(text.New(status, props.Text{
			Size: 9, Top: 4, Color: colorGray,
		})),
		col.New(6).Add(
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(settings.FormatAmount(invoice.Amount), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
		),
	)
}

// shortID: primeros 8 caracteres del UUID, en mayúsculas.
func shortID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
