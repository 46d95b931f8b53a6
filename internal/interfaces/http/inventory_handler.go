package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vitorbarbosa/varejo-api/internal/application/dto"
	"github.com/vitorbarbosa/varejo-api/internal/application/inventory"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
	"github.com/vitorbarbosa/varejo-api/internal/domain/repository"
)

// InventoryHandler trata as requisições HTTP do livro de movimentos de estoque.
type InventoryHandler struct {
	uc *inventory.LedgerUseCase
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(uc *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterMovement godoc
// @Summary      Registrar movimento de estoque
// @Description  ENTRADA soma quantity ao estoque, SAIDA subtrai (rejeitada se
//
//	deixar o estoque negativo) e AJUSTE define quantity como o novo
//	valor absoluto do estoque.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_code, type (ENTRADA|SAIDA|AJUSTE), quantity, reason"
// @Success      201   {object}  dto.StockLevelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}

	var (
		stock int64
		err   error
	)
	switch in.Type {
	case entity.MovementTypeEntry:
		stock, err = h.uc.AddStock(c.Context(), in.ProductCode, in.Quantity, in.Reason)
	case entity.MovementTypeWithdrawal:
		stock, err = h.uc.RemoveStock(c.Context(), in.ProductCode, in.Quantity, in.Reason)
	case entity.MovementTypeAdjustment:
		stock, err = h.uc.SetStock(c.Context(), in.ProductCode, in.Quantity, in.Reason)
	default:
		err = domain.ErrInvalidInput
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StockLevelResponse{
		ProductCode: in.ProductCode,
		Stock:       stock,
	})
}

// ListMovements godoc
// @Summary      Histórico de movimentos de estoque
// @Description  Do mais recente ao mais antigo. Filtros opcionais combinados com AND.
// @Tags         inventory
// @Produce      json
// @Param        product_code  query  string  false  "Filtrar por produto"
// @Param        type          query  string  false  "ENTRADA, SAIDA, AJUSTE ou VENDA"
// @Param        from          query  string  false  "Data inicial (RFC 3339)"
// @Param        to            query  string  false  "Data final (RFC 3339)"
// @Param        limit         query  int     false  "Tamanho da página (padrão 20)"
// @Param        offset        query  int     false  "Deslocamento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()

	filter := repository.MovementFilter{
		ProductCode: c.Query("product_code"),
		Type:        c.Query("type"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	}
	var err error
	if filter.From, err = parseTimeQuery(c, "from"); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	if filter.To, err = parseTimeQuery(c, "to"); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}

	movements, err := h.uc.ListMovements(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}

	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "movements": out})
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		ProductCode:    m.ProductCode,
		ProductName:    m.ProductName,
		Type:           m.Type,
		Quantity:       m.Quantity,
		ResultingStock: m.ResultingStock,
		Reason:         m.Reason,
		Date:           m.Date,
	}
}

// parseTimeQuery lê um parâmetro de data no formato RFC 3339, nil se ausente.
func parseTimeQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
