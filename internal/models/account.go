package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	// Savings accounts never go below a zero balance and accrue interest
	Savings AccountKind = "savings"

	// Checking accounts may overdraw down to their overdraft limit
	Checking AccountKind = "checking"
)

// Account is the polymorphic account contract. The balance is mutated only
// through Deposit and Withdraw; the withdrawal eligibility rule is the one
// behavior that differs per kind. Adding a new kind means one new variant
// implementing this interface, nothing else.
type Account interface {
	ID() string
	OwnerID() string
	Kind() AccountKind
	Balance() decimal.Decimal
	CreatedAt() time.Time

	// Deposit increases the balance by amount. Fails with ErrInvalidAmount
	// if amount <= 0. Authorization is the caller's responsibility.
	Deposit(amount decimal.Decimal) error

	// Withdraw decreases the balance by amount. Returns ErrInvalidAmount if
	// amount <= 0, (false, nil) if the kind's eligibility rule rejects the
	// amount, and (true, nil) on success.
	Withdraw(amount decimal.Decimal) (bool, error)

	// Details returns a kind-specific human-readable summary.
	Details() string

	// AddEntry appends an entry to the account's ledger. The ledger is
	// append-only: entries are never reordered or removed. Fails with
	// ErrNilEntry on a nil entry.
	AddEntry(e *LedgerEntry) error

	// Entries returns a copy of the ledger in insertion order.
	Entries() []LedgerEntry
}

// shared state and behavior for all account kinds
type baseAccount struct {
	id        string
	ownerID   string
	balance   decimal.Decimal
	ledger    []LedgerEntry
	createdAt time.Time
}

func newBaseAccount(id, ownerID string, openingBalance decimal.Decimal) (baseAccount, error) {
	if openingBalance.IsNegative() {
		return baseAccount{}, ErrInvalidAmount
	}
	return baseAccount{
		id:        id,
		ownerID:   ownerID,
		balance:   openingBalance,
		createdAt: time.Now(),
	}, nil
}

func (a *baseAccount) ID() string               { return a.id }
func (a *baseAccount) OwnerID() string          { return a.ownerID }
func (a *baseAccount) Balance() decimal.Decimal { return a.balance }
func (a *baseAccount) CreatedAt() time.Time     { return a.createdAt }

func (a *baseAccount) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// withdraw applies the shared bookkeeping once the variant has computed the
// amount it is willing to release
func (a *baseAccount) withdraw(amount, available decimal.Decimal) (bool, error) {
	if !amount.IsPositive() {
		return false, ErrInvalidAmount
	}
	if amount.GreaterThan(available) {
		return false, nil
	}
	a.balance = a.balance.Sub(amount)
	return true, nil
}

func (a *baseAccount) AddEntry(e *LedgerEntry) error {
	if e == nil {
		return ErrNilEntry
	}
	a.ledger = append(a.ledger, *e)
	return nil
}

func (a *baseAccount) Entries() []LedgerEntry {
	out := make([]LedgerEntry, len(a.ledger))
	copy(out, a.ledger)
	return out
}

// SavingsAccount never allows the balance below zero and carries a flat
// interest rate in [0, 1].
type SavingsAccount struct {
	baseAccount
	rate decimal.Decimal
}

// creates a new savings account
func NewSavingsAccount(id, ownerID string, openingBalance, rate decimal.Decimal) (*SavingsAccount, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidRate
	}
	base, err := newBaseAccount(id, ownerID, openingBalance)
	if err != nil {
		return nil, err
	}
	return &SavingsAccount{baseAccount: base, rate: rate}, nil
}

func (a *SavingsAccount) Kind() AccountKind { return Savings }

func (a *SavingsAccount) InterestRate() decimal.Decimal { return a.rate }

func (a *SavingsAccount) Withdraw(amount decimal.Decimal) (bool, error) {
	return a.withdraw(amount, a.balance)
}

func (a *SavingsAccount) Details() string {
	return fmt.Sprintf("savings account %s | owner %s | balance %s | interest rate %s",
		a.id, a.ownerID, a.balance.StringFixed(2), a.rate.String())
}

// CheckingAccount may overdraw: the balance may go negative down to the
// overdraft limit, which an administrator can adjust.
type CheckingAccount struct {
	baseAccount
	overdraftLimit decimal.Decimal
}

// creates a new checking account
func NewCheckingAccount(id, ownerID string, openingBalance, overdraftLimit decimal.Decimal) (*CheckingAccount, error) {
	if overdraftLimit.IsNegative() {
		return nil, ErrInvalidAmount
	}
	base, err := newBaseAccount(id, ownerID, openingBalance)
	if err != nil {
		return nil, err
	}
	return &CheckingAccount{baseAccount: base, overdraftLimit: overdraftLimit}, nil
}

func (a *CheckingAccount) Kind() AccountKind { return Checking }

func (a *CheckingAccount) OverdraftLimit() decimal.Decimal { return a.overdraftLimit }

// SetOverdraftLimit replaces the overdraft limit; the limit must not be negative.
func (a *CheckingAccount) SetOverdraftLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return ErrInvalidAmount
	}
	a.overdraftLimit = limit
	return nil
}

func (a *CheckingAccount) Withdraw(amount decimal.Decimal) (bool, error) {
	return a.withdraw(amount, a.balance.Add(a.overdraftLimit))
}

func (a *CheckingAccount) Details() string {
	return fmt.Sprintf("checking account %s | owner %s | balance %s | overdraft limit %s",
		a.id, a.ownerID, a.balance.StringFixed(2), a.overdraftLimit.StringFixed(2))
}
