// seed popula o banco com produtos e clientes de demonstração.
//
// Uso: go run ./cmd/seed
// Lê a configuração das mesmas env vars da API (DATABASE_URL, DB_HOST, ...).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vitorbarbosa/varejo-api/internal/domain"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
	"github.com/vitorbarbosa/varejo-api/internal/infrastructure/postgres"
	"github.com/vitorbarbosa/varejo-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexão com PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)

	products := []*entity.Product{
		{Code: "P001", Name: "Camiseta Básica", Category: "Vestuário", Price: decimal.NewFromFloat(49.90), Stock: 100, Supplier: "Malharia Sul"},
		{Code: "P002", Name: "Calça Jeans", Category: "Vestuário", Price: decimal.NewFromFloat(129.90), Stock: 50, Supplier: "Denim Brasil"},
		{Code: "P003", Name: "Tênis Esportivo", Category: "Calçados", Price: decimal.NewFromFloat(249.90), Stock: 30, Supplier: "Passo Firme"},
		{Code: "P004", Name: "Boné Trucker", Category: "Acessórios", Price: decimal.NewFromFloat(39.90), Stock: 80, Supplier: "Malharia Sul"},
	}
	for _, p := range products {
		p.ID = uuid.New().String()
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := productRepo.Create(p); err != nil {
			if err == domain.ErrDuplicate {
				fmt.Printf("produto %s já existe, pulando\n", p.Code)
				continue
			}
			fmt.Fprintf(os.Stderr, "inserir produto %s: %v\n", p.Code, err)
			os.Exit(1)
		}
		fmt.Printf("produto %s (%s) inserido\n", p.Code, p.Name)
	}

	customers := []*entity.Customer{
		{Name: "Maria Oliveira", CPF: "111.222.333-44", Email: "maria@example.com", Phone: "(11) 98888-0001"},
		{Name: "João Santos", CPF: "555.666.777-88", Email: "joao@example.com", Phone: "(21) 97777-0002"},
		{Name: "Ana Costa", CPF: "999.000.111-22", Email: "ana@example.com"},
	}
	for _, c := range customers {
		c.ID = uuid.New().String()
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := customerRepo.Create(c); err != nil {
			if err == domain.ErrDuplicate {
				fmt.Printf("cliente %s já existe, pulando\n", c.CPF)
				continue
			}
			fmt.Fprintf(os.Stderr, "inserir cliente %s: %v\n", c.CPF, err)
			os.Exit(1)
		}
		fmt.Printf("cliente %s (%s) inserido\n", c.CPF, c.Name)
	}

	fmt.Println("seed concluído")
}
