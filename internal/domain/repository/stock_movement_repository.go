package repository

import (
	"time"

	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
)

// MovementFilter filtros opcionais para listagem de movimentações.
type MovementFilter struct {
	ProductCode string
	Type        string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// StockMovementRepository define o porto de persistência para movimentações
// de estoque. Append-only: não há update nem delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// List devolve movimentações ordenadas da mais recente para a mais antiga.
	List(filter MovementFilter) ([]*entity.StockMovement, error)
}
