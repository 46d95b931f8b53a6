package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
)

// InvoiceData reúne venda, produto e cliente para emissão da nota fiscal.
type InvoiceData struct {
	Sale     *entity.Sale
	Product  *entity.Product
	Customer *entity.Customer
	Discount *entity.DiscountResult // opcional
}

// InvoicePDFGenerator gera a representação em PDF da nota fiscal.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, data InvoiceData) ([]byte, error)
}

// loadInvoiceData carrega venda, produto e cliente referenciados.
func (uc *SalesUseCase) loadInvoiceData(saleID string, discount *entity.DiscountResult) (*InvoiceData, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByCode(sale.ProductCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByCPF(sale.CustomerCPF)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return &InvoiceData{Sale: sale, Product: product, Customer: customer, Discount: discount}, nil
}

// RenderInvoice emite a nota fiscal em texto. O total original aparece
// sempre; a quebra do desconto e a descrição da promoção só quando um
// DiscountResult é fornecido, usando seu valor final como valor a pagar.
func (uc *SalesUseCase) RenderInvoice(ctx context.Context, saleID string, discount *entity.DiscountResult) (string, error) {
	data, err := uc.loadInvoiceData(saleID, discount)
	if err != nil {
		return "", err
	}

	final := data.Sale.Total
	var b strings.Builder
	b.WriteString("============ NOTA FISCAL ============\n")
	b.WriteString("Empresa: Varejo\n")
	fmt.Fprintf(&b, "Data: %s\n", data.Sale.Date.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(&b, "Cliente: %s (CPF: %s)\n", data.Customer.Name, data.Customer.CPF)
	fmt.Fprintf(&b, "Produto: %s (Código: %s)\n", data.Product.Name, data.Product.Code)
	fmt.Fprintf(&b, "Quantidade: %d unidades\n", data.Sale.Quantity)
	fmt.Fprintf(&b, "Valor original: R$ %s\n", data.Sale.Total.StringFixed(2))
	if discount != nil {
		final = discount.Final
		fmt.Fprintf(&b, "Desconto aplicado: R$ %s\n", discount.Discount.StringFixed(2))
		fmt.Fprintf(&b, "Tipo de desconto: %s\n", discount.Kind)
		if discount.Promotion != nil {
			fmt.Fprintf(&b, "Promoção: %s\n", discount.Promotion.Description)
		}
	}
	fmt.Fprintf(&b, "Valor final: R$ %s\n", final.StringFixed(2))
	b.WriteString("=====================================\n")
	return b.String(), nil
}

// RenderInvoicePDF emite a nota fiscal em PDF usando o gerador fornecido.
func (uc *SalesUseCase) RenderInvoicePDF(ctx context.Context, saleID string, discount *entity.DiscountResult, generator InvoicePDFGenerator) ([]byte, error) {
	data, err := uc.loadInvoiceData(saleID, discount)
	if err != nil {
		return nil, err
	}
	return generator.GenerateInvoicePDF(ctx, *data)
}
