package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

// Motivos padrão quando o chamador não informa um.
const (
	defaultEntryReason      = "Entrada padrão"
	defaultWithdrawalReason = "Saída padrão"
	defaultAdjustmentReason = "Ajuste de estoque"
)

// LedgerUseCase é o razão de estoque: toda mutação de quantidade passa por
// aqui, com bloqueio de linha (SELECT FOR UPDATE) e Commit/Rollback. Cada
// operação bem-sucedida produz exatamente uma atualização de estoque e uma
// movimentação append-only, na mesma transação: o chamador nunca observa
// uma sem a outra.
type LedgerUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
}

// NewLedgerUseCase constrói o caso de uso.
func NewLedgerUseCase(txRunner TxRunner, movementRepo repository.StockMovementRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// AddStock soma quantity (> 0) ao estoque do produto e registra uma
// movimentação ENTRADA. Devolve o estoque resultante.
func (uc *LedgerUseCase) AddStock(ctx context.Context, productCode string, quantity int64, reason string) (int64, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	if reason == "" {
		reason = defaultEntryReason
	}
	var resulting int64
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetByCodeForUpdate(productCode)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		resulting = product.Stock + quantity
		return applyMovement(productRepo, movementRepo, product, movementChange{
			Type:     entity.MovementTypeEntry,
			Delta:    quantity,
			NewStock: resulting,
			Reason:   reason,
		})
	})
	if err != nil {
		return 0, err
	}
	return resulting, nil
}

// RemoveStock subtrai quantity (> 0) do estoque do produto e registra uma
// movimentação SAIDA com delta negativo. Falha com ErrInsufficientStock se
// quantity excede o estoque atual; nesse caso nada é alterado.
func (uc *LedgerUseCase) RemoveStock(ctx context.Context, productCode string, quantity int64, reason string) (int64, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	if reason == "" {
		reason = defaultWithdrawalReason
	}
	var resulting int64
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetByCodeForUpdate(productCode)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if quantity > product.Stock {
			return domain.ErrInsufficientStock
		}
		resulting = product.Stock - quantity
		return applyMovement(productRepo, movementRepo, product, movementChange{
			Type:     entity.MovementTypeWithdrawal,
			Delta:    -quantity,
			NewStock: resulting,
			Reason:   reason,
		})
	})
	if err != nil {
		return 0, err
	}
	return resulting, nil
}

// SetStock ajusta o estoque do produto para newQuantity (>= 0) e registra uma
// movimentação AJUSTE cujo delta é newQuantity − estoque anterior (pode ser
// zero, positivo ou negativo).
func (uc *LedgerUseCase) SetStock(ctx context.Context, productCode string, newQuantity int64, reason string) (int64, error) {
	if newQuantity < 0 {
		return 0, domain.ErrInvalidInput
	}
	if reason == "" {
		reason = defaultAdjustmentReason
	}
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetByCodeForUpdate(productCode)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		return applyMovement(productRepo, movementRepo, product, movementChange{
			Type:     entity.MovementTypeAdjustment,
			Delta:    newQuantity - product.Stock,
			NewStock: newQuantity,
			Reason:   reason,
		})
	})
	if err != nil {
		return 0, err
	}
	return newQuantity, nil
}

// DeductForSale executa a baixa de venda usando os repositórios fornecidos
// (mesma transação do chamador). Implementa a interface sales.InventoryPort
// para integração vendas-estoque; saleID vira a referência da movimentação.
// Devolve o produto com o preço vigente e o estoque já debitado.
func (uc *LedgerUseCase) DeductForSale(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	productCode string,
	quantity int64,
	now time.Time,
	saleID string,
) (*entity.Product, error) {
	product, err := productRepo.GetByCodeForUpdate(productCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if quantity > product.Stock {
		return nil, domain.ErrInsufficientStock
	}
	resulting := product.Stock - quantity
	change := movementChange{
		Type:     entity.MovementTypeSale,
		Delta:    -quantity,
		NewStock: resulting,
		Reason:   "Venda " + saleID,
		Date:     now,
	}
	if err := applyMovement(productRepo, movementRepo, product, change); err != nil {
		return nil, err
	}
	product.Stock = resulting
	return product, nil
}

// ListMovements lista movimentações com filtros opcionais (período, produto,
// tipo), da mais recente para a mais antiga.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	switch filter.Type {
	case "", entity.MovementTypeEntry, entity.MovementTypeWithdrawal,
		entity.MovementTypeAdjustment, entity.MovementTypeSale:
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.movementRepo.List(filter)
}

type movementChange struct {
	Type     string
	Delta    int64
	NewStock int64
	Reason   string
	Date     time.Time // zero = agora
}

// applyMovement grava o novo estoque e em seguida a movimentação, com o
// estoque resultante capturado estritamente PÓS-atualização. Chamar apenas
// com repositórios atados à mesma transação.
func applyMovement(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	product *entity.Product,
	change movementChange,
) error {
	if err := productRepo.UpdateStock(product.Code, change.NewStock); err != nil {
		return err
	}
	date := change.Date
	if date.IsZero() {
		date = time.Now()
	}
	movement := &entity.StockMovement{
		ID:             uuid.New().String(),
		ProductCode:    product.Code,
		ProductName:    product.Name,
		Type:           change.Type,
		Quantity:       change.Delta,
		ResultingStock: change.NewStock,
		Reason:         change.Reason,
		Date:           date,
		CreatedAt:      date,
	}
	return movementRepo.Create(movement)
}
