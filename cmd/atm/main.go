package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"go-inventory-cli/internal/atm"
	"go-inventory-cli/internal/config"
	"go-inventory-cli/internal/logger"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func run(in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appLog := logger.New(cfg.LogLevel)

	balance, err := cfg.ATM.Balance()
	if err != nil {
		return err
	}

	return atm.NewMachine(atm.NewAccount(balance), in, out, appLog).Run()
}
