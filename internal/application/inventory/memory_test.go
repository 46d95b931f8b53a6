package inventory

import (
	"context"

	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

// Fakes em memória para testar o razão sem PostgreSQL.

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

func (r *fakeProductRepo) stockOf(code string) int64 {
	return r.products[code].Stock
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement

	gotFilter repository.MovementFilter
}

func (r *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	cp := *movement
	r.movements = append(r.movements, &cp)
	return nil
}

// List devolve da mais recente (última gravada) para a mais antiga.
func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	r.gotFilter = filter
	var out []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if filter.ProductCode != "" && m.ProductCode != filter.ProductCode {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.From != nil && m.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.Date.After(*filter.To) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) last() *entity.StockMovement {
	if len(r.movements) == 0 {
		return nil
	}
	return r.movements[len(r.movements)-1]
}

// fakeTxRunner passa os repositórios direto, sem transação real. Os casos de
// uso falham antes de qualquer mutação, então não há rollback a simular.
type fakeTxRunner struct {
	productRepo  *fakeProductRepo
	movementRepo *fakeMovementRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(t.productRepo, t.movementRepo)
}
