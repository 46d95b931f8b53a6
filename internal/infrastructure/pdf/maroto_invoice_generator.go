// Package pdf implementa a representação gráfica da nota fiscal de venda.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  N° da venda + Data                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + CPF + contato                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Cant | Produto | Preço Unit | Total                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Valor original / Desconto / VALOR FINAL            │
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

	"github.com/vitorbarbosa/varejo-api/internal/application/sales"
)

const companyName = "Varejo"

var (
	colorPrimary = &props.Color{Red: 16, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoInvoiceGenerator implementa sales.InvoicePDFGenerator usando Maroto v2.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator constrói o gerador.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// GenerateInvoicePDF gera o PDF da nota e devolve seus bytes.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(_ context.Context, data sales.InvoiceData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota Fiscal de Venda", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(data))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	if data.Discount != nil && data.Discount.Promotion != nil {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Promoção aplicada: "+data.Discount.Promotion.Description, props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Documento sem valor fiscal. Conserve como comprovante da compra.",
			props.Text{Size: 6.5, Color: colorGray, Align: align.Center, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (esq) e identificação da venda (dir).
func headerRow(data sales.InvoiceData) core.Row {
	date := data.Sale.Date.Format("02/01/2006 15:04:05")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NOTA FISCAL", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Venda N° "+data.Sale.ID, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1,
			}),
			text.New("Data: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// customerRow: dados do comprador.
func customerRow(data sales.InvoiceData) core.Row {
	contact := fmt.Sprintf("Email: %s   |   Tel: %s",
		nonEmpty(data.Customer.Email, "—"),
		nonEmpty(data.Customer.Phone, "—"),
	)
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (CPF: %s)", data.Customer.Name, data.Customer.CPF), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Produto", 5, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableDetailRow: linha única do item vendido.
func tableDetailRow(data sales.InvoiceData) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(
			fmt.Sprintf("%d", data.Sale.Quantity),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(5).Add(text.New(
			fmt.Sprintf("%s (Código: %s)", data.Product.Name, data.Product.Code),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			"R$ "+data.Product.Price.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			"R$ "+data.Sale.Total.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalsRow: bloco de totais alinhado à direita. Sem desconto, o valor
// final coincide com o original e a linha de desconto é omitida.
func totalsRow(data sales.InvoiceData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	final := data.Sale.Total
	labels := []core.Component{label("Valor original:")}
	values := []core.Component{value("R$ " + data.Sale.Total.StringFixed(2))}
	if data.Discount != nil {
		final = data.Discount.Final
		labels = append(labels, label("Desconto ("+data.Discount.Kind+"):"))
		values = append(values, value("R$ "+data.Discount.Discount.StringFixed(2)))
	}
	labels = append(labels, grandLabel("VALOR FINAL:"))
	values = append(values, grandValue("R$ "+final.StringFixed(2)))

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
		col.New(1),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
