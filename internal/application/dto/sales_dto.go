package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest body para POST /api/sales.
type RegisterSaleRequest struct {
	ProductCode string `json:"product_code"`
	CustomerCPF string `json:"customer_cpf"`
	Quantity    int64  `json:"quantity"`
}

// SaleResponse representação de venda nas respostas.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductCode string          `json:"product_code"`
	CustomerCPF string          `json:"customer_cpf"`
	Quantity    int64           `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	Date        time.Time       `json:"date"`
}

// DiscountRequest body para POST /api/sales/:id/discount.
type DiscountRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Kind   string          `json:"kind"` // VALOR ou PORCENTAGEM
}

// PromotionRequest body para POST /api/sales/:id/promotion.
type PromotionRequest struct {
	Code string `json:"code"`
}

// PromotionDTO promoção aplicada em um desconto.
type PromotionDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// DiscountResponse resultado do cálculo de desconto. Derivado da venda;
// o total persistido da venda permanece intacto.
type DiscountResponse struct {
	SaleID    string          `json:"sale_id"`
	Original  decimal.Decimal `json:"original"`
	Discount  decimal.Decimal `json:"discount"`
	Final     decimal.Decimal `json:"final"`
	Kind      string          `json:"kind"`
	Promotion *PromotionDTO   `json:"promotion,omitempty"`
}

// InvoiceRequest body opcional para emissão de nota fiscal com desconto.
// Se PromoCode for informado, tem precedência sobre Amount/Kind.
type InvoiceRequest struct {
	PromoCode string           `json:"promo_code,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Kind      string           `json:"kind,omitempty"`
}
