package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mbasit/teller-ledger/internal/config"
	"github.com/mbasit/teller-ledger/internal/models"
	"github.com/mbasit/teller-ledger/internal/store"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fixture struct {
	ctx          context.Context
	st           *store.Store
	accounts     *AccountService
	transactions *TransactionService
	customers    *CustomerService
	admin        models.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.New()
	cfg := &config.Config{
		DefaultOverdraftLimit: dec("50"),
		SavingsInterestRate:   dec("0.02"),
		AccountNumberStart:    1001,
	}
	logger := zap.NewNop()
	return &fixture{
		ctx:          context.Background(),
		st:           st,
		accounts:     NewAccountService(st, cfg, logger),
		transactions: NewTransactionService(st, logger),
		customers:    NewCustomerService(st, logger),
		admin:        models.AdminActor(),
	}
}

// registers a customer and opens one account of the given kind for them
func (f *fixture) openFor(t *testing.T, name string, kind models.AccountKind, opening string) (*models.Customer, models.Account) {
	t.Helper()
	customer, err := f.customers.Register(f.ctx, f.admin, name)
	require.NoError(t, err)
	account, err := f.accounts.OpenAccount(f.ctx, f.admin, customer.ID, kind, dec(opening))
	require.NoError(t, err)
	return customer, account
}
