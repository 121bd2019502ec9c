package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-cli/internal/config"
	"go-inventory-cli/internal/console"
	"go-inventory-cli/internal/logger"
	"go-inventory-cli/internal/model"
	"go-inventory-cli/internal/repository"
	"go-inventory-cli/internal/service"
	"go-inventory-cli/pkg/database"

	"github.com/rs/zerolog"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	appLog := logger.New(cfg.LogLevel)

	if err := run(cfg, os.Stdin, os.Stdout, appLog); err != nil {
		appLog.Error().Err(err).Msg("❌ Inventory console stopped")
		os.Exit(1)
	}
}

func run(cfg *config.Config, in io.Reader, out io.Writer, appLog zerolog.Logger) error {
	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Database, appLog)
	if err != nil {
		return fmt.Errorf("could not connect to the database, check the configuration: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			appLog.Warn().Err(err).Msg("failed to close database")
		}
	}()

	if err := db.AutoMigrate(&model.Category{}, &model.Product{}, &model.StockMovement{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// 3. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	movementRepo := repository.NewStockMovementRepo(db)

	invService := service.NewInventoryService(productRepo, categoryRepo, movementRepo,
		service.InventoryOptions{AllowNegativeStock: cfg.Inventory.AllowNegativeStock}, appLog)
	categoryService := service.NewCategoryService(categoryRepo, appLog)
	reportService := service.NewReportService(productRepo, categoryRepo, movementRepo,
		cfg.Inventory.LowStockThreshold, appLog)

	menu := console.New(invService, categoryService, reportService,
		console.SystemInfo{Database: cfg.Database.Name, Host: cfg.Database.Host, User: cfg.Database.User},
		in, out, appLog)

	// 4. Close the connection on Ctrl+C as well as on a normal exit
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer close(quit)
	defer signal.Stop(quit)
	go func() {
		if _, ok := <-quit; !ok {
			return
		}
		appLog.Info().Msg("Shutting down...")
		_ = database.Close(db)
		os.Exit(0)
	}()

	if err := menu.Run(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
