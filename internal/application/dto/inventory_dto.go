package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// Para ENTRADA/SAIDA, Quantity é a quantidade movimentada (positiva);
// para AJUSTE, Quantity é o novo valor absoluto do estoque.
type RegisterMovementRequest struct {
	ProductCode string `json:"product_code"`
	Type        string `json:"type"` // ENTRADA, SAIDA ou AJUSTE
	Quantity    int64  `json:"quantity"`
	Reason      string `json:"reason,omitempty"`
}

// MovementResponse representação de movimentação nas respostas.
type MovementResponse struct {
	ID             string    `json:"id"`
	ProductCode    string    `json:"product_code"`
	ProductName    string    `json:"product_name"`
	Type           string    `json:"type"`
	Quantity       int64     `json:"quantity"`
	ResultingStock int64     `json:"resulting_stock"`
	Reason         string    `json:"reason,omitempty"`
	Date           time.Time `json:"date"`
}

// StockLevelResponse resultado das operações de mutação de estoque.
type StockLevelResponse struct {
	ProductCode string `json:"product_code"`
	Stock       int64  `json:"stock"`
}
