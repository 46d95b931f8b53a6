package inventory

import (
	"context"

	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que atualização de estoque e
// registro da movimentação sejam uma única unidade atômica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
