package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go-inventory-cli/internal/config"
	"go-inventory-cli/internal/console"
	"go-inventory-cli/internal/logger"
	"go-inventory-cli/internal/repository"
	"go-inventory-cli/internal/service"
	"go-inventory-cli/pkg/database"

	"github.com/rs/zerolog"
)

func main() {
	threshold := flag.Int("threshold", 0, "low stock threshold (default from INVENTORY_LOW_STOCK_THRESHOLD)")
	flag.Parse()

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	appLog := logger.New(cfg.LogLevel)

	if err := run(cfg, *threshold, os.Stdout, appLog); err != nil {
		appLog.Error().Err(err).Msg("❌ Report failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config, threshold int, out io.Writer, appLog zerolog.Logger) error {
	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Database, appLog)
	if err != nil {
		return err
	}
	defer database.Close(db)

	// 3. Build the report
	reports := service.NewReportService(
		repository.NewProductRepo(db),
		repository.NewCategoryRepo(db),
		repository.NewStockMovementRepo(db),
		cfg.Inventory.LowStockThreshold,
		appLog,
	)

	if threshold <= 0 {
		threshold = reports.DefaultThreshold()
	}

	products, err := reports.LowStock(threshold)
	if err != nil {
		return fmt.Errorf("low stock report: %w", err)
	}
	console.WriteLowStockReport(out, products, threshold)

	total, err := reports.TotalInventoryValue()
	if err != nil {
		return fmt.Errorf("inventory value: %w", err)
	}
	fmt.Fprintf(out, "\n💰 TOTAL INVENTORY VALUE: %s\n", console.FormatMoney(total))
	return nil
}
