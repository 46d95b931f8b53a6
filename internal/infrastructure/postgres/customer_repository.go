package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementação de CustomerRepository (usável com pool ou tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste um novo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, cpf, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.CPF, customer.Email, customer.Phone,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("insert customer", err)
	}
	return nil
}

// GetByCPF obtém um cliente pelo CPF.
func (r *CustomerRepo) GetByCPF(cpf string) (*entity.Customer, error) {
	query := `
		SELECT id, name, cpf, email, phone, created_at, updated_at
		FROM customers WHERE cpf = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, cpf).Scan(
		&c.ID, &c.Name, &c.CPF, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get customer", err)
	}
	return &c, nil
}

// List lista clientes ordenados por nome, com paginação.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, cpf, email, phone, created_at, updated_at
		FROM customers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, storageErr("list customers", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.CPF, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, storageErr("scan customer", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
