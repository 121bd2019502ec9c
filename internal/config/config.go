package config

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Env       string `env:"APP_ENV" env-default:"local"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"warn"`
	Database  Database
	Inventory Inventory
	ATM       ATM
}

// Database holds the connection parameters. URL wins over the individual parts.
type Database struct {
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	Name     string `env:"DB_NAME" env-default:"inventory_management"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
	TimeZone string `env:"DB_TIMEZONE" env-default:"UTC"`
	LogLevel string `env:"DB_LOG_LEVEL" env-default:"warn"`
}

type Inventory struct {
	LowStockThreshold  int  `env:"INVENTORY_LOW_STOCK_THRESHOLD" env-default:"10"`
	AllowNegativeStock bool `env:"INVENTORY_ALLOW_NEGATIVE_STOCK" env-default:"false"`
}

type ATM struct {
	InitialBalance string `env:"ATM_INITIAL_BALANCE" env-default:"1000"`
}

// DSN builds the postgres connection string.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone,
	)
}

// Balance parses the configured opening balance.
func (a ATM) Balance() (decimal.Decimal, error) {
	balance, err := decimal.NewFromString(a.InitialBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid ATM_INITIAL_BALANCE %q: %w", a.InitialBalance, err)
	}
	if balance.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid ATM_INITIAL_BALANCE %q: must not be negative", a.InitialBalance)
	}
	return balance, nil
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	if cfg.Inventory.LowStockThreshold <= 0 {
		return nil, fmt.Errorf("INVENTORY_LOW_STOCK_THRESHOLD must be positive, got %d", cfg.Inventory.LowStockThreshold)
	}

	return &cfg, nil
}
