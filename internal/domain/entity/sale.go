package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa uma venda registrada. Imutável após a criação: o valor
// total nunca é reescrito por descontos posteriores (DiscountResult é
// derivado sob demanda, nunca persistido de volta).
type Sale struct {
	ID          string
	ProductCode string // referência ao produto (não ownership)
	CustomerCPF string // referência ao cliente
	Quantity    int64  // quantidade vendida, positiva e <= estoque no momento
	Total       decimal.Decimal // preço unitário × quantidade no momento da venda
	Date        time.Time
	CreatedAt   time.Time
}
