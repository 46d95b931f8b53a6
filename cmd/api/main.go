package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/vitorbarbosa/varejo-api/internal/application/inventory"
	"github.com/vitorbarbosa/varejo-api/internal/application/reports"
	"github.com/vitorbarbosa/varejo-api/internal/application/sales"
	"github.com/vitorbarbosa/varejo-api/internal/application/usecase"
	infrapdf "github.com/vitorbarbosa/varejo-api/internal/infrastructure/pdf"
	"github.com/vitorbarbosa/varejo-api/internal/infrastructure/postgres"
	httpRouter "github.com/vitorbarbosa/varejo-api/internal/interfaces/http"
	"github.com/vitorbarbosa/varejo-api/pkg/config"
	"github.com/vitorbarbosa/varejo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(cfg)
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	ledgerUC := inventory.NewLedgerUseCase(txRunner, movementRepo)
	salesUC := sales.NewSalesUseCase(txRunner, ledgerUC, productRepo, customerRepo, saleRepo)
	reportUC := reports.NewReportUseCase(reportRepo)

	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Varejo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		CustomerUC:   customerUC,
		LedgerUC:     ledgerUC,
		SalesUC:      salesUC,
		ReportUC:     reportUC,
		PDFGenerator: pdfGenerator,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
