package cli

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/mbasit/teller-ledger/internal/models"
)

var (
	// amounts: plain digits with at most two decimal places
	amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

	// display names: letters first, then letters, spaces and common name punctuation
	namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]{0,49}$`)

	// login names: short lowercase alphanumeric handles
	loginPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{2,19}$`)
)

// ParseAmount parses a field typed at the prompt into a decimal amount.
// Format errors are caller input errors; nothing downstream sees them.
func ParseAmount(s string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("amount %q: %w", s, models.ErrInvalidAmount)
	}
	return decimal.NewFromString(s)
}

// ValidName reports whether s is an acceptable customer display name.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

// ValidLogin reports whether s is an acceptable login name.
func ValidLogin(s string) bool {
	return loginPattern.MatchString(s)
}
