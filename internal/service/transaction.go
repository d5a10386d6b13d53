package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mbasit/teller-ledger/internal/access"
	"github.com/mbasit/teller-ledger/internal/idgen"
	"github.com/mbasit/teller-ledger/internal/models"
	"github.com/mbasit/teller-ledger/internal/store"
)

// TransactionService orchestrates all money movement. Every operation
// resolves the target account, re-checks access, lets the account apply its
// own balance rule, and appends the resulting ledger entry. Accounts are
// never mutated from anywhere else.
type TransactionService struct {
	store  *store.Store
	logger *zap.Logger
}

// creates a new TransactionService
func NewTransactionService(st *store.Store, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		store:  st,
		logger: logger,
	}
}

// resolves an account after checking the id format
func (s *TransactionService) resolveAccount(id string) (models.Account, error) {
	if !idgen.ValidAccountID(id) {
		return nil, fmt.Errorf("account id %q: %w", id, models.ErrMalformedID)
	}
	return s.store.Account(id)
}

// Deposit credits the account and appends a completed entry. An invalid
// amount records nothing.
func (s *TransactionService) Deposit(ctx context.Context, actor models.Actor, accountID string, amount decimal.Decimal) (*models.LedgerEntry, error) {
	account, err := s.resolveAccount(accountID)
	if err != nil {
		return nil, err
	}

	if !access.CanAccess(s.store, actor, accountID) {
		s.logger.Warn("deposit denied",
			zap.String("account_id", accountID),
			zap.String("actor_kind", string(actor.Kind)))
		return nil, fmt.Errorf("deposit to %s: %w", accountID, models.ErrAccessDenied)
	}

	if err := account.Deposit(amount); err != nil {
		return nil, fmt.Errorf("deposit to %s: %w", accountID, err)
	}

	entry := models.NewEntry(idgen.NewEntryID(), accountID, models.Deposit, amount, models.Completed)
	if err := account.AddEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}

	s.logger.Info("deposit completed",
		zap.String("account_id", accountID),
		zap.String("entry_id", entry.ID),
		zap.String("amount", amount.String()))
	return entry, nil
}

// Withdraw debits the account if the account's eligibility rule allows it.
// Insufficient funds is a business-rule outcome, not an input error: the
// attempt is appended as a failed entry and the error still surfaced. An
// invalid amount records nothing.
func (s *TransactionService) Withdraw(ctx context.Context, actor models.Actor, accountID string, amount decimal.Decimal) (*models.LedgerEntry, error) {
	account, err := s.resolveAccount(accountID)
	if err != nil {
		return nil, err
	}

	if !access.CanAccess(s.store, actor, accountID) {
		s.logger.Warn("withdrawal denied",
			zap.String("account_id", accountID),
			zap.String("actor_kind", string(actor.Kind)))
		return nil, fmt.Errorf("withdraw from %s: %w", accountID, models.ErrAccessDenied)
	}

	ok, err := account.Withdraw(amount)
	if err != nil {
		return nil, fmt.Errorf("withdraw from %s: %w", accountID, err)
	}

	if !ok {
		entry := models.NewEntry(idgen.NewEntryID(), accountID, models.Withdrawal, amount, models.Failed)
		if addErr := account.AddEntry(entry); addErr != nil {
			return nil, fmt.Errorf("failed to record rejected withdrawal: %w", addErr)
		}
		s.logger.Info("withdrawal rejected",
			zap.String("account_id", accountID),
			zap.String("entry_id", entry.ID),
			zap.String("amount", amount.String()))
		return entry, fmt.Errorf("withdraw from %s: %w", accountID, models.ErrInsufficientFunds)
	}

	entry := models.NewEntry(idgen.NewEntryID(), accountID, models.Withdrawal, amount, models.Completed)
	if err := account.AddEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to record withdrawal: %w", err)
	}

	s.logger.Info("withdrawal completed",
		zap.String("account_id", accountID),
		zap.String("entry_id", entry.ID),
		zap.String("amount", amount.String()))
	return entry, nil
}

// Transfer moves funds between two accounts. Ownership is checked on the
// source only; anyone may receive. The destination deposit runs only after
// the source withdrawal has succeeded, so a rejected withdrawal aborts with
// no entries and no balance change on either side. One completed entry is
// appended per side, correlated by a shared reference.
func (s *TransactionService) Transfer(ctx context.Context, actor models.Actor, fromID, toID string, amount decimal.Decimal) (string, error) {
	if fromID == toID {
		return "", fmt.Errorf("transfer %s -> %s: %w", fromID, toID, models.ErrSameAccount)
	}

	from, err := s.resolveAccount(fromID)
	if err != nil {
		return "", err
	}
	to, err := s.resolveAccount(toID)
	if err != nil {
		return "", err
	}

	if !access.CanAccess(s.store, actor, fromID) {
		s.logger.Warn("transfer denied",
			zap.String("from_account_id", fromID),
			zap.String("actor_kind", string(actor.Kind)))
		return "", fmt.Errorf("transfer from %s: %w", fromID, models.ErrAccessDenied)
	}

	ok, err := from.Withdraw(amount)
	if err != nil {
		return "", fmt.Errorf("transfer from %s: %w", fromID, err)
	}
	if !ok {
		return "", fmt.Errorf("transfer from %s: %w", fromID, models.ErrInsufficientFunds)
	}

	// cannot fail: the withdrawal already established amount > 0
	if err := to.Deposit(amount); err != nil {
		return "", fmt.Errorf("transfer to %s: %w", toID, err)
	}

	reference := idgen.NewReference()
	out := models.NewTransferEntry(idgen.NewEntryID(), fromID, toID, reference, amount)
	in := models.NewTransferEntry(idgen.NewEntryID(), toID, fromID, reference, amount)
	if err := from.AddEntry(out); err != nil {
		return "", fmt.Errorf("failed to record transfer: %w", err)
	}
	if err := to.AddEntry(in); err != nil {
		return "", fmt.Errorf("failed to record transfer: %w", err)
	}

	s.logger.Info("transfer completed",
		zap.String("from_account_id", fromID),
		zap.String("to_account_id", toID),
		zap.String("reference", reference),
		zap.String("amount", amount.String()))
	return reference, nil
}
