package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitorbarbosa/varejo-api/internal/application/inventory"
	"github.com/vitorbarbosa/varejo-api/internal/application/reports"
	"github.com/vitorbarbosa/varejo-api/internal/application/sales"
	"github.com/vitorbarbosa/varejo-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	CustomerUC   *usecase.CustomerUseCase
	LedgerUC     *inventory.LedgerUseCase
	SalesUC      *sales.SalesUseCase
	ReportUC     *reports.ReportUseCase
	PDFGenerator sales.InvoicePDFGenerator
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de produtos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:code", productHandler.GetByCode)

	// Cadastro de clientes
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:cpf", customerHandler.GetByCPF)

	// Livro de movimentos de estoque
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)

	// Vendas, descontos e notas fiscais
	salesGroup := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC, deps.PDFGenerator)
	salesGroup.Post("/", salesHandler.Register)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/customer/:cpf", salesHandler.ListByCustomer)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Post("/:id/discount", salesHandler.ComputeDiscount)
	salesGroup.Post("/:id/promotion", salesHandler.ApplyPromotion)
	salesGroup.Post("/:id/invoice", salesHandler.Invoice)
	salesGroup.Post("/:id/invoice/pdf", salesHandler.InvoicePDF)

	// Relatórios
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/sales", reportHandler.SalesSummary)
	reportsGroup.Get("/top-products", reportHandler.TopProducts)
	reportsGroup.Get("/top-customers", reportHandler.TopCustomers)
	reportsGroup.Get("/movements", reportHandler.MovementSummary)
	reportsGroup.Get("/stock", reportHandler.StockReport)
}
