package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação de StockMovementRepository.
// O livro de movimentos é append-only: não há Update nem Delete.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create registra um movimento de estoque.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements
			(id, product_code, product_name, movement_type, quantity, resulting_stock, reason, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductCode, movement.ProductName, movement.Type,
		movement.Quantity, movement.ResultingStock, movement.Reason,
		movement.Date, movement.CreatedAt,
	)
	if err != nil {
		return storageErr("insert stock movement", err)
	}
	return nil
}

// List consulta o histórico de movimentos, do mais recente ao mais antigo.
// Os filtros são combinados com AND; os vazios são ignorados.
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	var (
		conds []string
		args  []any
	)
	if filter.ProductCode != "" {
		args = append(args, filter.ProductCode)
		conds = append(conds, fmt.Sprintf("product_code = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("movement_type = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := `
		SELECT id, product_code, product_name, movement_type, quantity, resulting_stock, reason, date, created_at
		FROM stock_movements`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, storageErr("list stock movements", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.ProductCode, &m.ProductName, &m.Type,
			&m.Quantity, &m.ResultingStock, &m.Reason, &m.Date, &m.CreatedAt,
		); err != nil {
			return nil, storageErr("scan stock movement", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
