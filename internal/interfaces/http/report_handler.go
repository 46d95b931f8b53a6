package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vitorbarbosa/varejo-api/internal/application/reports"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
)

// ReportHandler trata os endpoints de relatórios agregados.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesSummary godoc
// @Summary      Resumo de vendas por período
// @Tags         reports
// @Produce      json
// @Param        from  query  string  false  "Início do período (YYYY-MM-DD). Padrão: primeiro dia do mês."
// @Param        to    query  string  false  "Fim do período (YYYY-MM-DD). Padrão: hoje."
// @Success      200  {object}  dto.SalesSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.SalesSummary(c.Context(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Produtos mais vendidos
// @Tags         reports
// @Produce      json
// @Param        limit  query  int  false  "Tamanho do ranking (padrão 5)"
// @Success      200  {array}  dto.TopProductDTO
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(c.Context(), queryInt(c, "limit"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "products": out})
}

// TopCustomers godoc
// @Summary      Clientes que mais compraram
// @Tags         reports
// @Produce      json
// @Param        limit  query  int  false  "Tamanho do ranking (padrão 5)"
// @Success      200  {array}  dto.TopCustomerDTO
// @Router       /api/reports/top-customers [get]
func (h *ReportHandler) TopCustomers(c *fiber.Ctx) error {
	out, err := h.uc.TopCustomers(c.Context(), queryInt(c, "limit"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "customers": out})
}

// MovementSummary godoc
// @Summary      Resumo das movimentações de estoque por tipo
// @Tags         reports
// @Produce      json
// @Param        from  query  string  false  "Início do período (YYYY-MM-DD). Padrão: primeiro dia do mês."
// @Param        to    query  string  false  "Fim do período (YYYY-MM-DD). Padrão: hoje."
// @Success      200  {array}  dto.MovementSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) MovementSummary(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.MovementSummary(c.Context(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "movements": out})
}

// StockReport godoc
// @Summary      Posição atual do estoque com valor monetário
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.StockReportResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	out, err := h.uc.StockReport(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// parsePeriod lê from/to (YYYY-MM-DD). Padrão: do primeiro dia do mês até
// o fim do dia de hoje, no fuso do servidor.
func parsePeriod(c *fiber.Ctx) (from, to time.Time, err error) {
	now := time.Now()
	from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to = now

	if raw := c.Query("from"); raw != "" {
		if from, err = time.ParseInLocation("2006-01-02", raw, now.Location()); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if raw := c.Query("to"); raw != "" {
		var day time.Time
		if day, err = time.ParseInLocation("2006-01-02", raw, now.Location()); err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = day.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

func queryInt(c *fiber.Ctx, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}
