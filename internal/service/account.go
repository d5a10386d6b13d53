package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mbasit/teller-ledger/internal/access"
	"github.com/mbasit/teller-ledger/internal/audit"
	"github.com/mbasit/teller-ledger/internal/config"
	"github.com/mbasit/teller-ledger/internal/idgen"
	"github.com/mbasit/teller-ledger/internal/models"
	"github.com/mbasit/teller-ledger/internal/store"
)

// SortKey selects the order for account listings.
type SortKey string

const (
	// ByOwnerName orders by owner display name, case-insensitive ascending
	ByOwnerName SortKey = "owner_name"

	// ByBalance orders by balance, descending
	ByBalance SortKey = "balance"
)

// AccountService handles account lifecycle and presentation: opening,
// closing, listing, history, and the administrator maintenance routines.
type AccountService struct {
	store  *store.Store
	cfg    *config.Config
	ids    *idgen.Sequence
	logger *zap.Logger
}

// creates a new AccountService
func NewAccountService(st *store.Store, cfg *config.Config, logger *zap.Logger) *AccountService {
	return &AccountService{
		store:  st,
		cfg:    cfg,
		ids:    idgen.NewAccountSequence(cfg.AccountNumberStart),
		logger: logger,
	}
}

// OpenAccount creates an account of the given kind for a customer, applying
// the branch defaults for interest rate and overdraft limit. Admin only.
// The owner reference and the customer's account collection are linked
// together here so the two sides never drift.
func (s *AccountService) OpenAccount(ctx context.Context, actor models.Actor, customerID string, kind models.AccountKind, openingBalance decimal.Decimal) (models.Account, error) {
	if !access.HasCapability(actor, access.ActionOpenAccount) {
		return nil, fmt.Errorf("open account: %w", models.ErrAccessDenied)
	}
	if !idgen.ValidCustomerID(customerID) {
		return nil, fmt.Errorf("customer id %q: %w", customerID, models.ErrMalformedID)
	}
	owner, err := s.store.Customer(customerID)
	if err != nil {
		return nil, fmt.Errorf("open account: %w", err)
	}
	if openingBalance.IsNegative() {
		return nil, fmt.Errorf("opening balance: %w", models.ErrInvalidAmount)
	}

	id := s.ids.Next()
	var account models.Account
	switch kind {
	case models.Savings:
		account, err = models.NewSavingsAccount(id, customerID, openingBalance, s.cfg.SavingsInterestRate)
	case models.Checking:
		account, err = models.NewCheckingAccount(id, customerID, openingBalance, s.cfg.DefaultOverdraftLimit)
	default:
		return nil, fmt.Errorf("kind %q: %w", kind, models.ErrUnknownAccountKind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.store.AddAccount(account)
	owner.LinkAccount(id)

	s.logger.Info("account opened",
		zap.String("account_id", id),
		zap.String("customer_id", customerID),
		zap.String("kind", string(kind)),
		zap.String("opening_balance", openingBalance.String()))
	return account, nil
}

// CloseAccount removes an account from the system. Admin only; the balance
// must be exactly zero. The owner's account collection is updated in the
// same step.
func (s *AccountService) CloseAccount(ctx context.Context, actor models.Actor, accountID string) error {
	if !access.HasCapability(actor, access.ActionCloseAccount) {
		return fmt.Errorf("close account: %w", models.ErrAccessDenied)
	}
	account, err := s.resolve(accountID)
	if err != nil {
		return err
	}
	if !account.Balance().IsZero() {
		return fmt.Errorf("close %s: %w", accountID, models.ErrNonZeroBalance)
	}

	if err := s.store.RemoveAccount(accountID); err != nil {
		return fmt.Errorf("close account: %w", err)
	}
	if owner, err := s.store.Customer(account.OwnerID()); err == nil {
		owner.UnlinkAccount(accountID)
	}

	s.logger.Info("account closed", zap.String("account_id", accountID))
	return nil
}

// History returns the account's ledger most recent first. The underlying
// ledger is untouched; access is re-checked per call.
func (s *AccountService) History(ctx context.Context, actor models.Actor, accountID string) ([]models.LedgerEntry, error) {
	account, err := s.resolve(accountID)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(s.store, actor, accountID) {
		s.logger.Warn("history denied",
			zap.String("account_id", accountID),
			zap.String("actor_kind", string(actor.Kind)))
		return nil, fmt.Errorf("history of %s: %w", accountID, models.ErrAccessDenied)
	}
	return audit.Recency(account.Entries()), nil
}

// Details returns the kind-specific account summary, access-checked.
func (s *AccountService) Details(ctx context.Context, actor models.Actor, accountID string) (string, error) {
	account, err := s.resolve(accountID)
	if err != nil {
		return "", err
	}
	if !access.CanAccess(s.store, actor, accountID) {
		return "", fmt.Errorf("details of %s: %w", accountID, models.ErrAccessDenied)
	}
	return account.Details(), nil
}

// SortedAccounts lists the accounts the actor may see, ordered by the sort
// key. Restricted actors see only their own accounts. The sort is stable:
// ties keep their original creation order.
func (s *AccountService) SortedAccounts(ctx context.Context, actor models.Actor, by SortKey) ([]models.Account, error) {
	var accounts []models.Account
	for _, a := range s.store.Accounts() {
		if access.CanAccess(s.store, actor, a.ID()) {
			accounts = append(accounts, a)
		}
	}

	switch by {
	case ByOwnerName:
		sort.SliceStable(accounts, func(i, j int) bool {
			return strings.ToLower(s.ownerName(accounts[i])) < strings.ToLower(s.ownerName(accounts[j]))
		})
	case ByBalance:
		sort.SliceStable(accounts, func(i, j int) bool {
			return accounts[i].Balance().GreaterThan(accounts[j].Balance())
		})
	default:
		return nil, fmt.Errorf("unknown sort key %q", by)
	}
	return accounts, nil
}

// ApplyInterest applies one flat interest payment to a savings account,
// recorded as a completed deposit entry. Admin only. A zero balance accrues
// nothing and records nothing.
func (s *AccountService) ApplyInterest(ctx context.Context, actor models.Actor, accountID string) (*models.LedgerEntry, error) {
	if !access.HasCapability(actor, access.ActionApplyInterest) {
		return nil, fmt.Errorf("apply interest: %w", models.ErrAccessDenied)
	}
	account, err := s.resolve(accountID)
	if err != nil {
		return nil, err
	}
	savings, ok := account.(*models.SavingsAccount)
	if !ok {
		return nil, fmt.Errorf("apply interest to %s: %w", accountID, models.ErrWrongAccountKind)
	}

	interest := savings.Balance().Mul(savings.InterestRate()).Round(2)
	if !interest.IsPositive() {
		return nil, nil
	}
	if err := savings.Deposit(interest); err != nil {
		return nil, fmt.Errorf("apply interest to %s: %w", accountID, err)
	}

	entry := models.NewEntry(idgen.NewEntryID(), accountID, models.Deposit, interest, models.Completed)
	if err := savings.AddEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to record interest: %w", err)
	}

	s.logger.Info("interest applied",
		zap.String("account_id", accountID),
		zap.String("amount", interest.String()))
	return entry, nil
}

// SetOverdraftLimit replaces a checking account's overdraft limit. Admin only.
func (s *AccountService) SetOverdraftLimit(ctx context.Context, actor models.Actor, accountID string, limit decimal.Decimal) error {
	if !access.HasCapability(actor, access.ActionSetOverdraft) {
		return fmt.Errorf("set overdraft limit: %w", models.ErrAccessDenied)
	}
	account, err := s.resolve(accountID)
	if err != nil {
		return err
	}
	checking, ok := account.(*models.CheckingAccount)
	if !ok {
		return fmt.Errorf("set overdraft limit on %s: %w", accountID, models.ErrWrongAccountKind)
	}
	if err := checking.SetOverdraftLimit(limit); err != nil {
		return fmt.Errorf("set overdraft limit on %s: %w", accountID, err)
	}

	s.logger.Info("overdraft limit updated",
		zap.String("account_id", accountID),
		zap.String("limit", limit.String()))
	return nil
}

// CanAccess exposes the row-level ownership check so the menu layer can
// pre-filter what it shows a restricted actor.
func (s *AccountService) CanAccess(actor models.Actor, accountID string) bool {
	return access.CanAccess(s.store, actor, accountID)
}

func (s *AccountService) resolve(id string) (models.Account, error) {
	if !idgen.ValidAccountID(id) {
		return nil, fmt.Errorf("account id %q: %w", id, models.ErrMalformedID)
	}
	return s.store.Account(id)
}

// ownerName joins through to the owner's display name; a missing owner
// sorts first
func (s *AccountService) ownerName(a models.Account) string {
	owner, err := s.store.Customer(a.OwnerID())
	if err != nil {
		return ""
	}
	return owner.Name
}
