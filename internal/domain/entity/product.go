package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo. Code é a chave de negócio
// (única); Stock é mutado exclusivamente pelo razão de estoque (movimentos),
// nunca por atualização direta do catálogo.
type Product struct {
	ID          string
	Code        string // código único do produto (chave de negócio)
	Name        string
	Category    string
	Price       decimal.Decimal // preço unitário de venda, nunca negativo
	Stock       int64           // quantidade em estoque, nunca negativa
	Description string
	Supplier    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
