package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	// Deposit represents a deposit transaction
	Deposit TransactionType = "deposit"

	// Withdrawal represents a withdrawal transaction
	Withdrawal TransactionType = "withdrawal"

	// Transfer represents one side of a two-account transfer
	Transfer TransactionType = "transfer"
)

type TransactionStatus string

const (
	// Completed indicates the transaction successfully processed
	Completed TransactionStatus = "completed"

	// Failed indicates the transaction failed to process
	Failed TransactionStatus = "failed"
)

// LedgerEntry is one immutable record of a money movement, completed or
// failed. Entries are appended by value to exactly one account's ledger and
// never mutated afterwards. The two sides of a transfer share a Reference
// but are distinct entries.
type LedgerEntry struct {
	ID               string            `json:"id"`
	AccountID        string            `json:"account_id"`
	Type             TransactionType   `json:"type"`
	Amount           decimal.Decimal   `json:"amount"`
	Status           TransactionStatus `json:"status"`
	Reference        string            `json:"reference,omitempty"`
	CounterAccountID string            `json:"counter_account_id,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// creates a new ledger entry stamped with the current time
func NewEntry(id, accountID string, txType TransactionType, amount decimal.Decimal, status TransactionStatus) *LedgerEntry {
	return &LedgerEntry{
		ID:        id,
		AccountID: accountID,
		Type:      txType,
		Amount:    amount,
		Status:    status,
		CreatedAt: time.Now(),
	}
}

// creates one side of a transfer; the reference correlates both sides
func NewTransferEntry(id, accountID, counterAccountID, reference string, amount decimal.Decimal) *LedgerEntry {
	e := NewEntry(id, accountID, Transfer, amount, Completed)
	e.Reference = reference
	e.CounterAccountID = counterAccountID
	return e
}
