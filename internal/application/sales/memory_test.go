package sales

import (
	"context"

	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

// Fakes em memória para testar o motor de vendas sem PostgreSQL.

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
	return out, nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	cp := *movement
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0; i-- {
		cp := *r.movements[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMovementRepo) last() *entity.StockMovement {
	if len(r.movements) == 0 {
		return nil
	}
	return r.movements[len(r.movements)-1]
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	return r.page(r.sales, limit, offset), nil
}

func (r *fakeSaleRepo) ListByCustomer(cpf string, limit, offset int) ([]*entity.Sale, error) {
	var filtered []*entity.Sale
	for _, s := range r.sales {
		if s.CustomerCPF == cpf {
			filtered = append(filtered, s)
		}
	}
	return r.page(filtered, limit, offset), nil
}

// page devolve da mais recente (última gravada) para a mais antiga.
func (r *fakeSaleRepo) page(list []*entity.Sale, limit, offset int) []*entity.Sale {
	var out []*entity.Sale
	for i := len(list) - 1; i >= 0; i-- {
		cp := *list[i]
		out = append(out, &cp)
	}
	if offset > 0 {
		if offset >= len(out) {
			return nil
		}
		out = out[offset:]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// fakeSalesTxRunner passa os repositórios direto, sem transação real.
type fakeSalesTxRunner struct {
	productRepo  *fakeProductRepo
	movementRepo *fakeMovementRepo
	saleRepo     *fakeSaleRepo
}

func (t *fakeSalesTxRunner) RunSales(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(t.productRepo, t.movementRepo, t.saleRepo)
}
