package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregação somente leitura para relatórios.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository constrói o adaptador de relatórios.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesSummary agrega total de vendas, receita e ticket médio do período.
// Usa COALESCE para devolver zero quando o período não tem vendas.
func (r *ReportRepo) SalesSummary(ctx context.Context, from, to time.Time) (repository.SalesSummaryResult, error) {
	const query = `
	SELECT
	    COUNT(*)                          AS total_sales,
	    COALESCE(SUM(total),           0) AS total_revenue,
	    COALESCE(ROUND(AVG(total), 2), 0) AS average_ticket
	FROM sales
	WHERE date BETWEEN $1 AND $2`

	var result repository.SalesSummaryResult
	err := r.pool.QueryRow(ctx, query, from, to).
		Scan(&result.TotalSales, &result.TotalRevenue, &result.AverageTicket)
	if err != nil {
		return repository.SalesSummaryResult{}, storageErr("reports.SalesSummary", err)
	}
	return result, nil
}

// TopProducts devolve os `limit` produtos mais vendidos por unidades.
// Empates são resolvidos pela maior receita.
func (r *ReportRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    s.product_code,
	    p.name            AS product_name,
	    SUM(s.quantity)   AS units_sold,
	    SUM(s.total)      AS revenue
	FROM sales s
	JOIN products p ON p.code = s.product_code
	GROUP BY s.product_code, p.name
	ORDER BY units_sold DESC, revenue DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, storageErr("reports.TopProducts", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductCode, &row.ProductName, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, storageErr("reports.TopProducts scan", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopCustomers devolve os `limit` clientes que mais gastaram.
func (r *ReportRepo) TopCustomers(ctx context.Context, limit int) ([]repository.TopCustomerResult, error) {
	const query = `
	SELECT
	    s.customer_cpf,
	    c.name            AS customer_name,
	    COUNT(*)          AS purchases,
	    SUM(s.total)      AS total_spent
	FROM sales s
	JOIN customers c ON c.cpf = s.customer_cpf
	GROUP BY s.customer_cpf, c.name
	ORDER BY total_spent DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, storageErr("reports.TopCustomers", err)
	}
	defer rows.Close()

	var results []repository.TopCustomerResult
	for rows.Next() {
		var row repository.TopCustomerResult
		if err := rows.Scan(&row.CPF, &row.CustomerName, &row.Purchases, &row.TotalSpent); err != nil {
			return nil, storageErr("reports.TopCustomers scan", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StockReport devolve a posição de estoque de todos os produtos com o valor
// monetário de cada posição (quantidade × preço unitário).
func (r *ReportRepo) StockReport(ctx context.Context) ([]repository.StockValueResult, error) {
	const query = `
	SELECT
	    code,
	    name,
	    stock           AS quantity,
	    price           AS unit_price,
	    stock * price   AS stock_value
	FROM products
	ORDER BY code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storageErr("reports.StockReport", err)
	}
	defer rows.Close()

	var results []repository.StockValueResult
	for rows.Next() {
		var row repository.StockValueResult
		if err := rows.Scan(&row.ProductCode, &row.ProductName, &row.Quantity, &row.UnitPrice, &row.StockValue); err != nil {
			return nil, storageErr("reports.StockReport scan", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("reports.StockReport rows", err)
	}
	if results == nil {
		results = []repository.StockValueResult{}
	}
	return results, nil
}

// MovementSummary agrega as movimentações do período por tipo: quantidade de
// registros e soma dos deltas com sinal.
func (r *ReportRepo) MovementSummary(ctx context.Context, from, to time.Time) ([]repository.MovementSummaryResult, error) {
	const query = `
	SELECT
	    movement_type,
	    COUNT(*)      AS movements,
	    SUM(quantity) AS net_quantity
	FROM stock_movements
	WHERE date BETWEEN $1 AND $2
	GROUP BY movement_type
	ORDER BY movement_type`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, storageErr("reports.MovementSummary", err)
	}
	defer rows.Close()

	var results []repository.MovementSummaryResult
	for rows.Next() {
		var row repository.MovementSummaryResult
		if err := rows.Scan(&row.Type, &row.Movements, &row.NetQuantity); err != nil {
			return nil, storageErr("reports.MovementSummary scan", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
