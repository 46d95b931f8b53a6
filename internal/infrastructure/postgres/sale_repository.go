package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, product_code, customer_cpf, quantity, total, date, created_at`

// SaleRepo implementação de SaleRepository. Vendas são imutáveis:
// uma vez registradas não há Update nem Delete.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste uma venda.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductCode, sale.CustomerCPF, sale.Quantity,
		sale.Total, sale.Date, sale.CreatedAt,
	)
	if err != nil {
		return storageErr("insert sale", err)
	}
	return nil
}

// GetByID obtém uma venda pelo identificador.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get sale", err)
	}
	return s, nil
}

// List lista vendas da mais recente à mais antiga.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	return r.queryList(query, limit, offset)
}

// ListByCustomer lista as vendas de um cliente, da mais recente à mais antiga.
func (r *SaleRepo) ListByCustomer(cpf string, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE customer_cpf = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.queryList(query, cpf, limit, offset)
}

func (r *SaleRepo) queryList(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, storageErr("list sales", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, storageErr("scan sale", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.ProductCode, &s.CustomerCPF, &s.Quantity, &s.Total, &s.Date, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
