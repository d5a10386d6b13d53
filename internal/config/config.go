package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Config carries the branch defaults applied when accounts are opened.
type Config struct {
	// DefaultOverdraftLimit is assigned to new checking accounts.
	DefaultOverdraftLimit decimal.Decimal

	// SavingsInterestRate is the flat rate in [0, 1] assigned to new
	// savings accounts.
	SavingsInterestRate decimal.Decimal

	// AccountNumberStart seeds the account id sequence.
	AccountNumberStart uint64

	// AdminLogin and AdminCredential seed the unrestricted principal.
	AdminLogin      string
	AdminCredential string
}

// loads configuration from the environment, falling back to branch defaults
func Load() (*Config, error) {
	overdraft, err := getEnvAsDecimal("TELLER_OVERDRAFT_LIMIT", "500.00")
	if err != nil {
		return nil, fmt.Errorf("invalid TELLER_OVERDRAFT_LIMIT: %w", err)
	}
	if overdraft.IsNegative() {
		return nil, fmt.Errorf("TELLER_OVERDRAFT_LIMIT must not be negative")
	}

	rate, err := getEnvAsDecimal("TELLER_SAVINGS_RATE", "0.02")
	if err != nil {
		return nil, fmt.Errorf("invalid TELLER_SAVINGS_RATE: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("TELLER_SAVINGS_RATE must be between 0 and 1")
	}

	return &Config{
		DefaultOverdraftLimit: overdraft,
		SavingsInterestRate:   rate,
		AccountNumberStart:    1001,
		AdminLogin:            getEnv("TELLER_ADMIN_LOGIN", "admin"),
		AdminCredential:       getEnv("TELLER_ADMIN_CREDENTIAL", "admin"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDecimal(key, defaultValue string) (decimal.Decimal, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	return decimal.NewFromString(valueStr)
}
