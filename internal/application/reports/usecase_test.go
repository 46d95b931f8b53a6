package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

// fakeReportRepo devolve resultados pré-carregados.
type fakeReportRepo struct {
	summary      repository.SalesSummaryResult
	topProducts  []repository.TopProductResult
	topCustomers []repository.TopCustomerResult
	stock        []repository.StockValueResult
	movements    []repository.MovementSummaryResult

	gotLimit int
}

func (r *fakeReportRepo) SalesSummary(ctx context.Context, from, to time.Time) (repository.SalesSummaryResult, error) {
	return r.summary, nil
}

func (r *fakeReportRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	r.gotLimit = limit
	return r.topProducts, nil
}

func (r *fakeReportRepo) TopCustomers(ctx context.Context, limit int) ([]repository.TopCustomerResult, error) {
	r.gotLimit = limit
	return r.topCustomers, nil
}

func (r *fakeReportRepo) MovementSummary(ctx context.Context, from, to time.Time) ([]repository.MovementSummaryResult, error) {
	return r.movements, nil
}

func (r *fakeReportRepo) StockReport(ctx context.Context) ([]repository.StockValueResult, error) {
	return r.stock, nil
}

func TestSalesSummary(t *testing.T) {
	repo := &fakeReportRepo{summary: repository.SalesSummaryResult{
		TotalSales:    8,
		TotalRevenue:  decimal.NewFromInt(800),
		AverageTicket: decimal.NewFromInt(100),
	}}
	uc := NewReportUseCase(repo)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	out, err := uc.SalesSummary(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(8), out.TotalSales)
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(800)))
	assert.True(t, out.AverageTicket.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, from, out.From)
	assert.Equal(t, to, out.To)
}

func TestSalesSummaryInvertedPeriod(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{})

	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.SalesSummary(context.Background(), from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTopProductsDefaultLimit(t *testing.T) {
	repo := &fakeReportRepo{topProducts: []repository.TopProductResult{
		{ProductCode: "P001", ProductName: "Camiseta", UnitsSold: 40, Revenue: decimal.NewFromInt(2000)},
	}}
	uc := NewReportUseCase(repo)

	out, err := uc.TopProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.gotLimit)
	require.Len(t, out, 1)
	assert.Equal(t, "P001", out[0].ProductCode)
	assert.Equal(t, int64(40), out[0].UnitsSold)
}

func TestTopCustomers(t *testing.T) {
	repo := &fakeReportRepo{topCustomers: []repository.TopCustomerResult{
		{CPF: "111.222.333-44", CustomerName: "Maria Oliveira", Purchases: 3, TotalSpent: decimal.NewFromInt(450)},
	}}
	uc := NewReportUseCase(repo)

	out, err := uc.TopCustomers(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.gotLimit)
	require.Len(t, out, 1)
	assert.Equal(t, "Maria Oliveira", out[0].Name)
	assert.True(t, out[0].TotalSpent.Equal(decimal.NewFromInt(450)))
}

func TestMovementSummary(t *testing.T) {
	repo := &fakeReportRepo{movements: []repository.MovementSummaryResult{
		{Type: "ENTRADA", Movements: 4, NetQuantity: 120},
		{Type: "VENDA", Movements: 9, NetQuantity: -35},
	}}
	uc := NewReportUseCase(repo)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	out, err := uc.MovementSummary(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "ENTRADA", out[0].Type)
	assert.Equal(t, int64(120), out[0].NetQuantity)
	assert.Equal(t, int64(-35), out[1].NetQuantity)
}

func TestMovementSummaryInvertedPeriod(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{})

	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.MovementSummary(context.Background(), from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockReport(t *testing.T) {
	repo := &fakeReportRepo{stock: []repository.StockValueResult{
		{ProductCode: "P001", ProductName: "Camiseta", Quantity: 10, UnitPrice: decimal.NewFromInt(50), StockValue: decimal.NewFromInt(500)},
		{ProductCode: "P002", ProductName: "Calça", Quantity: 2, UnitPrice: decimal.NewFromInt(130), StockValue: decimal.NewFromInt(260)},
	}}
	uc := NewReportUseCase(repo)

	out, err := uc.StockReport(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.True(t, out.TotalValue.Equal(decimal.NewFromInt(760)), "total = %s", out.TotalValue)
}

func TestStockReportEmpty(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{})

	out, err := uc.StockReport(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.True(t, out.TotalValue.IsZero())
}
