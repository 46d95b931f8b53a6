package repository

import "github.com/vitorbarbosa/varejo-api/internal/domain/entity"

// CustomerRepository define o porto de persistência para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByCPF(cpf string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
