package repository

import "github.com/vitorbarbosa/varejo-api/internal/domain/entity"

// SaleRepository define o porto de persistência para Sale. Vendas são
// imutáveis: não há update.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
	ListByCustomer(cpf string, limit, offset int) ([]*entity.Sale, error)
}
