package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação de ProductRepository sobre PostgreSQL (usável
// com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, name, category, price, stock, description, supplier, created_at, updated_at`

// Create persiste um novo produto com a quantidade inicial de estoque.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.Category,
		product.Price, product.Stock, product.Description, product.Supplier,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("insert product", err)
	}
	return nil
}

// GetByCode obtém um produto pelo código de negócio.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`
	return r.scanOne(query, code, "get product")
}

// GetByCodeForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE),
// para a sequência verificar-e-atualizar do estoque. Usar dentro de tx.
func (r *ProductRepo) GetByCodeForUpdate(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1 FOR UPDATE`
	return r.scanOne(query, code, "get product for update")
}

// Exists verifica se existe um produto com o código.
func (r *ProductRepo) Exists(code string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE code = $1)`, code,
	).Scan(&exists)
	if err != nil {
		return false, storageErr("product exists", err)
	}
	return exists, nil
}

// UpdateStock grava a nova quantidade em estoque. Chamado apenas pelo razão
// de estoque, dentro de transação.
func (r *ProductRepo) UpdateStock(code string, quantity int64) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE code = $1`,
		code, quantity,
	)
	if err != nil {
		return storageErr("update stock", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista produtos ordenados por nome, com paginação.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, storageErr("list products", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, storageErr("scan product", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(query, code, op string) (*entity.Product, error) {
	var p entity.Product
	err := scanProduct(r.q.QueryRow(context.Background(), query, code), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(op, err)
	}
	return &p, nil
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Category, &p.Price, &p.Stock,
		&p.Description, &p.Supplier, &p.CreatedAt, &p.UpdatedAt,
	)
}
