package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitorbarbosa/varejo-api/internal/application/dto"
	"github.com/vitorbarbosa/varejo-api/internal/application/sales"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
)

// SalesHandler trata as requisições HTTP de vendas, descontos e notas fiscais.
type SalesHandler struct {
	uc  *sales.SalesUseCase
	pdf sales.InvoicePDFGenerator
}

// NewSalesHandler constrói o handler.
func NewSalesHandler(uc *sales.SalesUseCase, pdf sales.InvoicePDFGenerator) *SalesHandler {
	return &SalesHandler{uc: uc, pdf: pdf}
}

// Register godoc
// @Summary      Registrar venda
// @Description  Deduz o estoque, grava o movimento VENDA e persiste a venda
//
//	em uma única transação.
//
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "product_code, customer_cpf, quantity"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sale, err := h.uc.RegisterSale(c.Context(), in.ProductCode, in.CustomerCPF, in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale))
}

// GetByID godoc
// @Summary      Consultar venda
// @Tags         sales
// @Produce      json
// @Param        id  path  string  true  "Identificador da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toSaleResponse(sale))
}

// List godoc
// @Summary      Listar vendas
// @Tags         sales
// @Produce      json
// @Param        limit   query  int  false  "Tamanho da página (padrão 20)"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	list, err := h.uc.ListSales(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "sales": toSaleResponses(list)})
}

// ListByCustomer godoc
// @Summary      Listar vendas de um cliente
// @Tags         sales
// @Produce      json
// @Param        cpf     path   string  true   "CPF do cliente"
// @Param        limit   query  int     false  "Tamanho da página (padrão 20)"
// @Param        offset  query  int     false  "Deslocamento"
// @Success      200  {array}   dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/customer/{cpf} [get]
func (h *SalesHandler) ListByCustomer(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	list, err := h.uc.ListSalesByCustomer(c.Context(), c.Params("cpf"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "sales": toSaleResponses(list)})
}

// ComputeDiscount godoc
// @Summary      Calcular desconto manual sobre uma venda
// @Description  Cálculo derivado: o total persistido da venda não muda.
//
//	PORCENTAGEM é limitada a 30%%; VALOR a 30%% do total da venda.
//
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Identificador da venda"
// @Param        body  body  dto.DiscountRequest  true  "amount, kind (VALOR|PORCENTAGEM)"
// @Success      200   {object}  dto.DiscountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/discount [post]
func (h *SalesHandler) ComputeDiscount(c *fiber.Ctx) error {
	var in dto.DiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	result, err := h.uc.ComputeDiscount(c.Context(), c.Params("id"), in.Amount, in.Kind)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toDiscountResponse(result))
}

// ApplyPromotion godoc
// @Summary      Aplicar promoção a uma venda
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "Identificador da venda"
// @Param        body  body  dto.PromotionRequest  true  "code"
// @Success      200   {object}  dto.DiscountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/promotion [post]
func (h *SalesHandler) ApplyPromotion(c *fiber.Ctx) error {
	var in dto.PromotionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	result, err := h.uc.ApplyPromotion(c.Context(), c.Params("id"), in.Code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toDiscountResponse(result))
}

// Invoice godoc
// @Summary      Emitir nota fiscal em texto
// @Description  Corpo opcional: promo_code aplica uma promoção; amount + kind
//
//	calculam um desconto manual. Sem corpo, a nota sai sem desconto.
//
// @Tags         sales
// @Accept       json
// @Produce      plain
// @Param        id    path  string              true   "Identificador da venda"
// @Param        body  body  dto.InvoiceRequest  false  "promo_code OU amount + kind"
// @Success      200   {string}  string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/invoice [post]
func (h *SalesHandler) Invoice(c *fiber.Ctx) error {
	discount, err := h.resolveDiscount(c)
	if err != nil {
		return writeError(c, err)
	}
	nota, err := h.uc.RenderInvoice(c.Context(), c.Params("id"), discount)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(nota)
}

// InvoicePDF godoc
// @Summary      Emitir nota fiscal em PDF
// @Tags         sales
// @Accept       json
// @Produce      application/pdf
// @Param        id    path  string              true   "Identificador da venda"
// @Param        body  body  dto.InvoiceRequest  false  "promo_code OU amount + kind"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/invoice/pdf [post]
func (h *SalesHandler) InvoicePDF(c *fiber.Ctx) error {
	discount, err := h.resolveDiscount(c)
	if err != nil {
		return writeError(c, err)
	}
	pdfBytes, err := h.uc.RenderInvoicePDF(c.Context(), c.Params("id"), discount, h.pdf)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="nota-fiscal-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

// resolveDiscount interpreta o corpo opcional da emissão de nota.
// promo_code tem precedência sobre amount/kind; corpo vazio = sem desconto.
func (h *SalesHandler) resolveDiscount(c *fiber.Ctx) (*entity.DiscountResult, error) {
	if len(c.Body()) == 0 {
		return nil, nil
	}
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	saleID := c.Params("id")
	if in.PromoCode != "" {
		return h.uc.ApplyPromotion(c.Context(), saleID, in.PromoCode)
	}
	if in.Amount != nil {
		return h.uc.ComputeDiscount(c.Context(), saleID, *in.Amount, in.Kind)
	}
	return nil, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          s.ID,
		ProductCode: s.ProductCode,
		CustomerCPF: s.CustomerCPF,
		Quantity:    s.Quantity,
		Total:       s.Total,
		Date:        s.Date,
	}
}

func toSaleResponses(list []*entity.Sale) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out
}

func toDiscountResponse(r *entity.DiscountResult) dto.DiscountResponse {
	out := dto.DiscountResponse{
		SaleID:   r.SaleID,
		Original: r.Original,
		Discount: r.Discount,
		Final:    r.Final,
		Kind:     r.Kind,
	}
	if r.Promotion != nil {
		out.Promotion = &dto.PromotionDTO{
			Code:        r.Promotion.Code,
			Description: r.Promotion.Description,
		}
	}
	return out
}
