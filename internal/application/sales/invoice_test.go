package sales

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
)

func TestRenderInvoice(t *testing.T) {
	f := newSalesFixture()
	sale := f.registerSale(t)

	nota, err := f.uc.RenderInvoice(context.Background(), sale.ID, nil)
	require.NoError(t, err)

	assert.Contains(t, nota, "============ NOTA FISCAL ============")
	assert.Contains(t, nota, "Empresa: Varejo")
	assert.Contains(t, nota, fmt.Sprintf("Data: %s", sale.Date.Format("02/01/2006 15:04:05")))
	assert.Contains(t, nota, "Cliente: Maria Oliveira (CPF: 111.222.333-44)")
	assert.Contains(t, nota, "Produto: Camiseta Básica (Código: P001)")
	assert.Contains(t, nota, "Quantidade: 4 unidades")
	assert.Contains(t, nota, "Valor original: R$ 100.00")
	assert.Contains(t, nota, "Valor final: R$ 100.00")
	// Sem desconto, não há quebra de desconto
	assert.NotContains(t, nota, "Desconto aplicado")
	assert.NotContains(t, nota, "Promoção")
}

func TestRenderInvoiceWithDiscount(t *testing.T) {
	f := newSalesFixture()
	sale := f.registerSale(t)
	ctx := context.Background()

	discount, err := f.uc.ComputeDiscount(ctx, sale.ID, decimal.NewFromInt(10), entity.DiscountKindPercentage)
	require.NoError(t, err)

	nota, err := f.uc.RenderInvoice(ctx, sale.ID, discount)
	require.NoError(t, err)
	assert.Contains(t, nota, "Valor original: R$ 100.00")
	assert.Contains(t, nota, "Desconto aplicado: R$ 10.00")
	assert.Contains(t, nota, "Tipo de desconto: PORCENTAGEM")
	assert.Contains(t, nota, "Valor final: R$ 90.00")
}

func TestRenderInvoiceWithPromotion(t *testing.T) {
	f := newSalesFixture()
	sale := f.registerSale(t)
	ctx := context.Background()

	discount, err := f.uc.ApplyPromotion(ctx, sale.ID, "BLACK_FRIDAY")
	require.NoError(t, err)

	nota, err := f.uc.RenderInvoice(ctx, sale.ID, discount)
	require.NoError(t, err)
	assert.Contains(t, nota, "Desconto aplicado: R$ 25.00")
	assert.Contains(t, nota, "Promoção: 25% na Black Friday")
	assert.Contains(t, nota, "Valor final: R$ 75.00")
}

func TestRenderInvoiceUnknownSale(t *testing.T) {
	f := newSalesFixture()

	_, err := f.uc.RenderInvoice(context.Background(), "inexistente", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// stubPDFGenerator captura os dados recebidos e devolve bytes fixos.
type stubPDFGenerator struct {
	got InvoiceData
}

func (g *stubPDFGenerator) GenerateInvoicePDF(_ context.Context, data InvoiceData) ([]byte, error) {
	g.got = data
	return []byte("%PDF-stub"), nil
}

func TestRenderInvoicePDF(t *testing.T) {
	f := newSalesFixture()
	sale := f.registerSale(t)
	ctx := context.Background()

	discount, err := f.uc.ApplyPromotion(ctx, sale.ID, "FRETE_GRATIS")
	require.NoError(t, err)

	gen := &stubPDFGenerator{}
	out, err := f.uc.RenderInvoicePDF(ctx, sale.ID, discount, gen)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), out)

	// O gerador recebe venda, produto, cliente e desconto carregados
	assert.Equal(t, sale.ID, gen.got.Sale.ID)
	assert.Equal(t, "P001", gen.got.Product.Code)
	assert.Equal(t, "Maria Oliveira", gen.got.Customer.Name)
	require.NotNil(t, gen.got.Discount)
	assert.True(t, gen.got.Discount.Discount.Equal(decimal.NewFromInt(20)))
}
