package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

// Limites de desconto avulso: 30% do total, seja em porcentagem ou em R$.
var (
	maxDiscountPercent = decimal.NewFromInt(30)
	maxFixedFraction   = decimal.NewFromFloat(0.30)
	oneHundred         = decimal.NewFromInt(100)
)

// SalesUseCase registra vendas e deriva descontos/promoções sobre vendas já
// gravadas. Delega toda baixa de estoque ao razão (InventoryPort) dentro da
// mesma transação da venda.
type SalesUseCase struct {
	txRunner     SalesTxRunner
	inventory    InventoryPort
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewSalesUseCase constrói o caso de uso.
func NewSalesUseCase(
	txRunner SalesTxRunner,
	inventory InventoryPort,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
) *SalesUseCase {
	return &SalesUseCase{
		txRunner:     txRunner,
		inventory:    inventory,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
	}
}

// RegisterSale registra uma venda: valida produto e cliente, e numa única
// transação verifica suficiência sob bloqueio de linha, baixa o estoque
// (movimentação VENDA) e grava a venda com total = preço vigente × quantidade.
// Se o estoque for insuficiente, nada é alterado.
func (uc *SalesUseCase) RegisterSale(ctx context.Context, productCode, customerCPF string, quantity int64) (*entity.Sale, error) {
	if productCode == "" || customerCPF == "" || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	// Existência fora da tx (somente leitura); a suficiência é verificada de
	// novo dentro da tx, sob o bloqueio da linha do produto.
	product, err := uc.productRepo.GetByCode(productCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByCPF(customerCPF)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	saleID := uuid.New().String()
	var sale *entity.Sale

	err = uc.txRunner.RunSales(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
	) error {
		locked, err := uc.inventory.DeductForSale(productRepo, movementRepo, productCode, quantity, now, saleID)
		if err != nil {
			return err
		}
		sale = &entity.Sale{
			ID:          saleID,
			ProductCode: productCode,
			CustomerCPF: customerCPF,
			Quantity:    quantity,
			Total:       locked.Price.Mul(decimal.NewFromInt(quantity)),
			Date:        now,
			CreatedAt:   now,
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// GetSale obtém uma venda pelo ID.
func (uc *SalesUseCase) GetSale(ctx context.Context, saleID string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

// ListSales lista vendas com paginação.
func (uc *SalesUseCase) ListSales(ctx context.Context, limit, offset int) ([]*entity.Sale, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.saleRepo.List(limit, offset)
}

// ListSalesByCustomer lista as vendas de um cliente pelo CPF.
func (uc *SalesUseCase) ListSalesByCustomer(ctx context.Context, cpf string, limit, offset int) ([]*entity.Sale, error) {
	if cpf == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.saleRepo.ListByCustomer(cpf, limit, offset)
}

// ComputeDiscount calcula um desconto sobre a venda sem alterar o valor
// persistido. PORCENTAGEM: no máximo 30%. VALOR: no máximo 0,30 × total.
// Função pura sobre os dados gravados da venda.
func (uc *SalesUseCase) ComputeDiscount(ctx context.Context, saleID string, amount decimal.Decimal, kind string) (*entity.DiscountResult, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return computeDiscount(sale, amount, kind)
}

func computeDiscount(sale *entity.Sale, amount decimal.Decimal, kind string) (*entity.DiscountResult, error) {
	if amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var discount, final decimal.Decimal
	switch kind {
	case entity.DiscountKindPercentage:
		if amount.GreaterThan(maxDiscountPercent) {
			return nil, domain.ErrInvalidInput
		}
		discount = sale.Total.Mul(amount).Div(oneHundred)
		final = sale.Total.Sub(discount)
	case entity.DiscountKindFixed:
		if amount.GreaterThan(sale.Total.Mul(maxFixedFraction)) {
			return nil, domain.ErrInvalidInput
		}
		discount = amount
		final = sale.Total.Sub(discount)
		if final.IsNegative() {
			final = decimal.Zero
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	return &entity.DiscountResult{
		SaleID:   sale.ID,
		Original: sale.Total,
		Discount: discount,
		Final:    final,
		Kind:     kind,
	}, nil
}

// ApplyPromotion aplica uma promoção da tabela fixa sobre a venda. Promoções
// percentuais seguem o cálculo de desconto padrão; promoções em R$ são
// limitadas ao total da venda (desconto = min(valor, total)), de modo que o
// valor final nunca fica negativo.
func (uc *SalesUseCase) ApplyPromotion(ctx context.Context, saleID, promoCode string) (*entity.DiscountResult, error) {
	promo, ok := LookupPromotion(promoCode)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	var result *entity.DiscountResult
	switch promo.Kind {
	case entity.DiscountKindPercentage:
		result, err = computeDiscount(sale, promo.Amount, promo.Kind)
		if err != nil {
			return nil, err
		}
	default: // VALOR: limitado ao total, fora do teto de 30%
		discount := promo.Amount
		if discount.GreaterThan(sale.Total) {
			discount = sale.Total
		}
		result = &entity.DiscountResult{
			SaleID:   sale.ID,
			Original: sale.Total,
			Discount: discount,
			Final:    sale.Total.Sub(discount),
			Kind:     promo.Kind,
		}
	}
	result.Promotion = &entity.PromotionInfo{Code: promo.Code, Description: promo.Description}
	return result, nil
}
