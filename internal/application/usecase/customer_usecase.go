package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vitorbarbosa/varejo-api/internal/application/dto"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes. Cliente é somente leitura após
// o cadastro, no escopo deste núcleo.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create cadastra um novo cliente. CPF duplicado retorna ErrDuplicate.
// O formato do CPF é responsabilidade da camada de apresentação.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.CPF == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCPF(in.CPF)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CPF:       in.CPF,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByCPF obtém um cliente pelo CPF.
func (uc *CustomerUseCase) GetByCPF(cpf string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByCPF(cpf)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes com paginação.
func (uc *CustomerUseCase) List(limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		CPF:   c.CPF,
		Email: c.Email,
		Phone: c.Phone,
	}
}
