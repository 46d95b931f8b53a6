package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummaryResult agregado de vendas em um período.
type SalesSummaryResult struct {
	TotalSales    int64
	TotalRevenue  decimal.Decimal
	AverageTicket decimal.Decimal
}

// TopProductResult produto ranqueado por unidades vendidas.
type TopProductResult struct {
	ProductCode string
	ProductName string
	UnitsSold   int64
	Revenue     decimal.Decimal
}

// TopCustomerResult cliente ranqueado por valor gasto.
type TopCustomerResult struct {
	CPF          string
	CustomerName string
	Purchases    int64
	TotalSpent   decimal.Decimal
}

// StockValueResult posição de estoque de um produto com valor monetário.
type StockValueResult struct {
	ProductCode string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	StockValue  decimal.Decimal // Quantity × UnitPrice
}

// MovementSummaryResult agregado de movimentações por tipo em um período.
type MovementSummaryResult struct {
	Type        string
	Movements   int64
	NetQuantity int64 // soma dos deltas com sinal
}

// ReportRepository consultas de agregação somente leitura para relatórios.
// Sem invariantes próprias: lê das coleções de vendas, produtos e movimentos.
type ReportRepository interface {
	SalesSummary(ctx context.Context, from, to time.Time) (SalesSummaryResult, error)
	TopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
	TopCustomers(ctx context.Context, limit int) ([]TopCustomerResult, error)
	StockReport(ctx context.Context) ([]StockValueResult, error)
	MovementSummary(ctx context.Context, from, to time.Time) ([]MovementSummaryResult, error)
}
