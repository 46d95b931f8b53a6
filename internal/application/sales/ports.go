package sales

import (
	"context"
	"time"

	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

// SalesTxRunner executa uma função dentro de uma transação com os
// repositórios de produto, movimentação e venda atados à tx. A baixa de
// estoque e a gravação da venda acontecem como uma única unidade atômica:
// se qualquer passo falha, faz-se rollback de tudo.
type SalesTxRunner interface {
	RunSales(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// InventoryPort é a fatia do razão de estoque que o motor de vendas usa
// dentro da própria transação. O motor de vendas nunca muta estoque
// diretamente; toda baixa passa pelo razão.
type InventoryPort interface {
	DeductForSale(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		productCode string,
		quantity int64,
		now time.Time,
		saleID string,
	) (*entity.Product, error)
}
