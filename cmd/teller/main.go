package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mbasit/teller-ledger/internal/cli"
	"github.com/mbasit/teller-ledger/internal/config"
	"github.com/mbasit/teller-ledger/internal/models"
	"github.com/mbasit/teller-ledger/internal/service"
	"github.com/mbasit/teller-ledger/internal/store"
)

func main() {
	// load .env
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// cancel the session on interrupt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	st := store.New()

	// seed the unrestricted operator
	admin := models.NewPrincipal(cfg.AdminLogin, cfg.AdminCredential, models.AdminActor())
	if err := st.AddPrincipal(admin); err != nil {
		logger.Fatal("failed to seed admin principal", zap.Error(err))
	}

	accountService := service.NewAccountService(st, cfg, logger)
	transactionService := service.NewTransactionService(st, logger)
	customerService := service.NewCustomerService(st, logger)

	menu := cli.NewMenu(accountService, transactionService, customerService, os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil {
		logger.Fatal("session ended with error", zap.Error(err))
	}

	logger.Info("session ended")
}
