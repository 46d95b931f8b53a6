package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovementTypeEntry      = "ENTRADA" // entrada de estoque
	MovementTypeWithdrawal = "SAIDA"   // saída de estoque
	MovementTypeAdjustment = "AJUSTE"  // ajuste para um valor absoluto
	MovementTypeSale       = "VENDA"   // baixa por venda registrada
)

// StockMovement representa uma movimentação de estoque. Registro imutável,
// append-only: um por mutação bem-sucedida do razão. ResultingStock é a
// quantidade em estoque APÓS aplicar a mudança: a sequência de movimentos de
// um produto, reaplicada a partir de zero, reconstrói o estoque atual.
type StockMovement struct {
	ID             string
	ProductCode    string
	ProductName    string
	Type           string // ENTRADA, SAIDA, AJUSTE, VENDA
	Quantity       int64  // delta com sinal: positivo entrada, negativo saída
	ResultingStock int64  // estoque após a mudança (capturado pós-atualização)
	Reason         string // texto livre: nota de ajuste, referência da venda etc.
	Date           time.Time
	CreatedAt      time.Time
}
