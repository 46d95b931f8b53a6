package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vitorbarbosa/varejo-api/internal/application/dto"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

// ReportUseCase relatórios agregados somente leitura. Nenhuma invariante
// própria: lê das vendas, produtos e movimentações já consolidados.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// SalesSummary resumo de vendas do período: total de vendas, receita e
// ticket médio.
func (uc *ReportUseCase) SalesSummary(ctx context.Context, from, to time.Time) (*dto.SalesSummaryResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	result, err := uc.repo.SalesSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.SalesSummaryResponse{
		From:          from,
		To:            to,
		TotalSales:    result.TotalSales,
		TotalRevenue:  result.TotalRevenue,
		AverageTicket: result.AverageTicket,
	}, nil
}

// TopProducts produtos mais vendidos por unidades.
func (uc *ReportUseCase) TopProducts(ctx context.Context, limit int) ([]dto.TopProductDTO, error) {
	if limit <= 0 {
		limit = 5
	}
	results, err := uc.repo.TopProducts(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.TopProductDTO{
			ProductCode: r.ProductCode,
			ProductName: r.ProductName,
			UnitsSold:   r.UnitsSold,
			Revenue:     r.Revenue,
		})
	}
	return out, nil
}

// TopCustomers clientes que mais compraram por valor gasto.
func (uc *ReportUseCase) TopCustomers(ctx context.Context, limit int) ([]dto.TopCustomerDTO, error) {
	if limit <= 0 {
		limit = 5
	}
	results, err := uc.repo.TopCustomers(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopCustomerDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.TopCustomerDTO{
			CPF:        r.CPF,
			Name:       r.CustomerName,
			Purchases:  r.Purchases,
			TotalSpent: r.TotalSpent,
		})
	}
	return out, nil
}

// MovementSummary agregado das movimentações do período, por tipo.
func (uc *ReportUseCase) MovementSummary(ctx context.Context, from, to time.Time) ([]dto.MovementSummaryDTO, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	results, err := uc.repo.MovementSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementSummaryDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.MovementSummaryDTO{
			Type:        r.Type,
			Movements:   r.Movements,
			NetQuantity: r.NetQuantity,
		})
	}
	return out, nil
}

// StockReport posição atual do estoque com valor monetário por produto e
// valor total.
func (uc *ReportUseCase) StockReport(ctx context.Context) (*dto.StockReportResponse, error) {
	results, err := uc.repo.StockReport(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.StockReportResponse{
		Items:      make([]dto.StockReportItemDTO, 0, len(results)),
		TotalValue: decimal.Zero,
	}
	for _, r := range results {
		resp.Items = append(resp.Items, dto.StockReportItemDTO{
			ProductCode: r.ProductCode,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			StockValue:  r.StockValue,
		})
		resp.TotalValue = resp.TotalValue.Add(r.StockValue)
	}
	return resp, nil
}
