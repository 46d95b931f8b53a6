package usecase

import (
	"sort"

	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
)

// Fakes em memória para testar os casos de uso de cadastro sem PostgreSQL.

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.Code] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	if _, ok := r.products[product.Code]; ok {
		return domain.ErrDuplicate
	}
	cp := *product
	r.products[product.Code] = &cp
	return nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	p, ok := r.products[code]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Exists(code string) (bool, error) {
	_, ok := r.products[code]
	return ok, nil
}

func (r *fakeProductRepo) GetByCodeForUpdate(code string) (*entity.Product, error) {
	return r.GetByCode(code)
}

func (r *fakeProductRepo) UpdateStock(code string, quantity int64) error {
	p, ok := r.products[code]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = quantity
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
	for _, c := range customers {
		cp := *c
		r.customers[c.CPF] = &cp
	}
	return r
}

func (r *fakeCustomerRepo) Create(customer *entity.Customer) error {
	if _, ok := r.customers[customer.CPF]; ok {
		return domain.ErrDuplicate
	}
	cp := *customer
	r.customers[customer.CPF] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByCPF(cpf string) (*entity.Customer, error) {
	c, ok := r.customers[cpf]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
