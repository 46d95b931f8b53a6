package repository

import "github.com/vitorbarbosa/varejo-api/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (DIP).
// O estoque só é atualizado dentro de transações do razão de estoque.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByCode(code string) (*entity.Product, error)
	Exists(code string) (bool, error)
	// GetByCodeForUpdate bloqueia a linha do produto (SELECT FOR UPDATE) para
	// a sequência verificar-e-atualizar do estoque. Usar dentro de transação.
	GetByCodeForUpdate(code string) (*entity.Product, error)
	UpdateStock(code string, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
}
