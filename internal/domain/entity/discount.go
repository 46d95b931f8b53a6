package entity

import "github.com/shopspring/decimal"

// Tipos de desconto.
const (
	DiscountKindFixed      = "VALOR"       // desconto em R$
	DiscountKindPercentage = "PORCENTAGEM" // desconto em % sobre o total
)

// Promotion é uma promoção fixa da tabela de promoções (dado de negócio,
// não editável pelo usuário).
type Promotion struct {
	Code        string
	Kind        string // VALOR ou PORCENTAGEM
	Amount      decimal.Decimal
	Description string
}

// PromotionInfo identifica a promoção aplicada em um DiscountResult.
type PromotionInfo struct {
	Code        string
	Description string
}

// DiscountResult é o resultado derivado de um cálculo de desconto sobre uma
// venda. Calculado sob demanda; nunca gravado na venda.
type DiscountResult struct {
	SaleID    string
	Original  decimal.Decimal // valor total original da venda
	Discount  decimal.Decimal // desconto aplicado em R$
	Final     decimal.Decimal // valor a pagar
	Kind      string          // VALOR ou PORCENTAGEM
	Promotion *PromotionInfo  // presente apenas quando veio de ApplyPromotion
}
