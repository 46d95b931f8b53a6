package sales

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorbarbosa/varejo-api/internal/application/inventory"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
)

type salesFixture struct {
	uc           *SalesUseCase
	productRepo  *fakeProductRepo
	customerRepo *fakeCustomerRepo
	movementRepo *fakeMovementRepo
	saleRepo     *fakeSaleRepo
}

func newSalesFixture() *salesFixture {
	productRepo := newFakeProductRepo(&entity.Product{
		ID:    "00000000-0000-0000-0000-000000000001",
		Code:  "P001",
		Name:  "Camiseta Básica",
		Price: decimal.NewFromFloat(25.00),
		Stock: 10,
	})
	customerRepo := newFakeCustomerRepo(&entity.Customer{
		ID:   "00000000-0000-0000-0000-000000000002",
		Name: "Maria Oliveira",
		CPF:  "111.222.333-44",
	})
	movementRepo := &fakeMovementRepo{}
	saleRepo := &fakeSaleRepo{}
	tx := &fakeSalesTxRunner{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		saleRepo:     saleRepo,
	}
	ledger := inventory.NewLedgerUseCase(nil, movementRepo)
	return &salesFixture{
		uc:           NewSalesUseCase(tx, ledger, productRepo, customerRepo, saleRepo),
		productRepo:  productRepo,
		customerRepo: customerRepo,
		movementRepo: movementRepo,
		saleRepo:     saleRepo,
	}
}

// registerSale atalho para os testes de desconto/nota que precisam de uma
// venda gravada (4 × R$ 25,00 = R$ 100,00).
func (f *salesFixture) registerSale(t *testing.T) *entity.Sale {
	t.Helper()
	sale, err := f.uc.RegisterSale(context.Background(), "P001", "111.222.333-44", 4)
	require.NoError(t, err)
	return sale
}

func TestRegisterSale(t *testing.T) {
	f := newSalesFixture()

	sale := f.registerSale(t)
	assert.NotEmpty(t, sale.ID)
	assert.Equal(t, "P001", sale.ProductCode)
	assert.Equal(t, "111.222.333-44", sale.CustomerCPF)
	assert.Equal(t, int64(4), sale.Quantity)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(100)), "total = %s", sale.Total)

	// Estoque baixado e movimentação VENDA gravada na mesma operação
	p, err := f.productRepo.GetByCode("P001")
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.Stock)

	m := f.movementRepo.last()
	require.NotNil(t, m)
	assert.Equal(t, entity.MovementTypeSale, m.Type)
	assert.Equal(t, int64(-4), m.Quantity)
	assert.Equal(t, int64(6), m.ResultingStock)
	assert.Equal(t, "Venda "+sale.ID, m.Reason)

	// Venda persistida
	stored, err := f.saleRepo.GetByID(sale.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Total.Equal(sale.Total))
}

func TestRegisterSaleValidation(t *testing.T) {
	f := newSalesFixture()
	ctx := context.Background()

	_, err := f.uc.RegisterSale(ctx, "", "111.222.333-44", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.RegisterSale(ctx, "P001", "", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.RegisterSale(ctx, "P001", "111.222.333-44", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterSaleUnknownReferences(t *testing.T) {
	f := newSalesFixture()
	ctx := context.Background()

	_, err := f.uc.RegisterSale(ctx, "P999", "111.222.333-44", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.RegisterSale(ctx, "P001", "000.000.000-00", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterSaleInsufficientStock(t *testing.T) {
	f := newSalesFixture()

	_, err := f.uc.RegisterSale(context.Background(), "P001", "111.222.333-44", 11)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada foi alterado: estoque intacto, nenhuma movimentação, nenhuma venda
	p, _ := f.productRepo.GetByCode("P001")
	assert.Equal(t, int64(10), p.Stock)
	assert.Nil(t, f.movementRepo.last())
	assert.Empty(t, f.saleRepo.sales)
}

func TestComputeDiscountPercentage(t *testing.T) {
	f := newSalesFixture()
	sale := f.registerSale(t)
	ctx := context.Background()

	result, err := f.uc.ComputeDiscount(ctx, sale.ID, decimal.NewFromInt(10), entity.DiscountKindPercentage)
	require.NoError(t, err)
	assert.True(t, result.Original.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.Discount.Equal(decimal.NewFromInt(10)))
	assert.True(t, result.Final.Equal(decimal.NewFromInt(90)))
	assert.Equal(t, entity.DiscountKindPercentage, result.Kind)
	assert.Nil(t, result.Promotion)

	// Cálculo derivado: o total persistido da venda não muda
	stored, _ := f.saleRepo.GetByID(sale.ID)
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(100)))
}

func TestComputeDiscountPercentageLimit(t *testing.T) {
	f := newSalesFixture()
	sale := f.registerSale(t)
	ctx := context.Background()

	// 30% é o teto: aceito
	result, err := f.uc.ComputeDiscount(ctx, sale.ID, decimal.NewFromInt(30), entity.DiscountKindPercentage)
	require.NoError(t, err)
	assert.True(t, result.Final.Equal(decimal.NewFromInt(70)))

	// 31% excede: rejeitado
	_, err = f.uc.ComputeDiscount(ctx, sale.ID, decimal.NewFromInt(31), entity.DiscountKindPercentage)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComputeDiscountFixed(t *testing.T) {
	f := newSalesFixture()
	sale := f.registerSale(t)
	ctx := context.Background()

	// Teto do desconto em R$: 0,30 × 100 = 30
	result, err := f.uc.ComputeDiscount(ctx, sale.ID, decimal.NewFromInt(30), entity.DiscountKindFixed)
	require.NoError(t, err)
	assert.True(t, result.Discount.Equal(decimal.NewFromInt(30)))
	assert.True(t, result.Final.Equal(decimal.NewFromInt(70)))

	_, err = f.uc.ComputeDiscount(ctx, sale.ID, decimal.NewFromFloat(30.01), entity.DiscountKindFixed)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComputeDiscountRejectsNegativeAndUnknownKind(t *testing.T) {
	f := newSalesFixture()
	sale := f.registerSale(t)
	ctx := context.Background()

	_, err := f.uc.ComputeDiscount(ctx, sale.ID, decimal.NewFromInt(-5), entity.DiscountKindPercentage)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.ComputeDiscount(ctx, sale.ID, decimal.NewFromInt(5), "CUPOM")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComputeDiscountUnknownSale(t *testing.T) {
	f := newSalesFixture()

	_, err := f.uc.ComputeDiscount(context.Background(), "inexistente", decimal.NewFromInt(10), entity.DiscountKindPercentage)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyPromotionPercentage(t *testing.T) {
	f := newSalesFixture()
	sale := f.registerSale(t)

	result, err := f.uc.ApplyPromotion(context.Background(), sale.ID, "PRIMEIRA_COMPRA")
	require.NoError(t, err)
	assert.True(t, result.Discount.Equal(decimal.NewFromInt(15)))
	assert.True(t, result.Final.Equal(decimal.NewFromInt(85)))
	assert.Equal(t, entity.DiscountKindPercentage, result.Kind)
	require.NotNil(t, result.Promotion)
	assert.Equal(t, "PRIMEIRA_COMPRA", result.Promotion.Code)
	assert.Equal(t, "15% na primeira compra", result.Promotion.Description)
}

func TestApplyPromotionFixed(t *testing.T) {
	f := newSalesFixture()
	sale := f.registerSale(t)

	// CLIENTE_VIP desconta R$ 50 de um total de R$ 100: fora do teto de 30%
	// dos descontos avulsos, promoções em R$ só são limitadas pelo total.
	result, err := f.uc.ApplyPromotion(context.Background(), sale.ID, "CLIENTE_VIP")
	require.NoError(t, err)
	assert.True(t, result.Discount.Equal(decimal.NewFromInt(50)))
	assert.True(t, result.Final.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, entity.DiscountKindFixed, result.Kind)
}

func TestApplyPromotionFixedCappedAtTotal(t *testing.T) {
	f := newSalesFixture()
	now := time.Now()
	f.saleRepo.sales = append(f.saleRepo.sales, &entity.Sale{
		ID:          "venda-barata",
		ProductCode: "P001",
		CustomerCPF: "111.222.333-44",
		Quantity:    1,
		Total:       decimal.NewFromInt(30),
		Date:        now,
		CreatedAt:   now,
	})

	result, err := f.uc.ApplyPromotion(context.Background(), "venda-barata", "CLIENTE_VIP")
	require.NoError(t, err)
	assert.True(t, result.Discount.Equal(decimal.NewFromInt(30)))
	assert.True(t, result.Final.IsZero(), "final = %s", result.Final)
}

func TestApplyPromotionUnknownCode(t *testing.T) {
	f := newSalesFixture()
	sale := f.registerSale(t)

	_, err := f.uc.ApplyPromotion(context.Background(), sale.ID, "NATAL_2099")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListSalesByCustomer(t *testing.T) {
	f := newSalesFixture()
	ctx := context.Background()
	first := f.registerSale(t)
	second, err := f.uc.RegisterSale(ctx, "P001", "111.222.333-44", 2)
	require.NoError(t, err)

	list, err := f.uc.ListSalesByCustomer(ctx, "111.222.333-44", 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	_, err = f.uc.ListSalesByCustomer(ctx, "", 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
