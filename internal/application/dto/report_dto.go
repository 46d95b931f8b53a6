package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummaryResponse relatório de vendas por período.
type SalesSummaryResponse struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	TotalSales    int64           `json:"total_sales"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}

// TopProductDTO produto mais vendido.
type TopProductDTO struct {
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	UnitsSold   int64           `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// TopCustomerDTO cliente que mais comprou.
type TopCustomerDTO struct {
	CPF        string          `json:"cpf"`
	Name       string          `json:"name"`
	Purchases  int64           `json:"purchases"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// MovementSummaryDTO agregado de movimentações de um tipo no período.
type MovementSummaryDTO struct {
	Type        string `json:"type"`
	Movements   int64  `json:"movements"`
	NetQuantity int64  `json:"net_quantity"`
}

// StockReportItemDTO posição de estoque de um produto.
type StockReportItemDTO struct {
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	StockValue  decimal.Decimal `json:"stock_value"`
}

// StockReportResponse relatório do estoque atual com valor total.
type StockReportResponse struct {
	Items      []StockReportItemDTO `json:"items"`
	TotalValue decimal.Decimal      `json:"total_value"`
}
