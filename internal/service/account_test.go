package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbasit/teller-ledger/internal/models"
)

func TestOpenAccountLinksOwnerBothWays(t *testing.T) {
	f := newFixture(t)
	customer, account := f.openFor(t, "Alice", models.Savings, "100")

	assert.Equal(t, customer.ID, account.OwnerID())
	assert.Contains(t, customer.AccountIDs, account.ID())
}

func TestOpenAccountRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	customer, _ := f.openFor(t, "Alice", models.Savings, "0")

	_, err := f.accounts.OpenAccount(f.ctx, models.CustomerActor(customer.ID), customer.ID, models.Checking, dec("0"))
	assert.ErrorIs(t, err, models.ErrAccessDenied)
}

func TestOpenAccountRejectsNegativeOpeningBalance(t *testing.T) {
	f := newFixture(t)
	customer, err := f.customers.Register(f.ctx, f.admin, "Alice")
	require.NoError(t, err)

	_, err = f.accounts.OpenAccount(f.ctx, f.admin, customer.ID, models.Savings, dec("-1"))
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}

func TestOpenAccountUnknownKind(t *testing.T) {
	f := newFixture(t)
	customer, err := f.customers.Register(f.ctx, f.admin, "Alice")
	require.NoError(t, err)

	_, err = f.accounts.OpenAccount(f.ctx, f.admin, customer.ID, models.AccountKind("bonds"), dec("0"))
	assert.ErrorIs(t, err, models.ErrUnknownAccountKind)
}

func TestOpenAccountUnknownCustomer(t *testing.T) {
	f := newFixture(t)
	_, err := f.accounts.OpenAccount(f.ctx, f.admin, "CUS-99", models.Savings, dec("0"))
	assert.ErrorIs(t, err, models.ErrCustomerNotFound)
}

func TestCloseAccountRequiresZeroBalance(t *testing.T) {
	f := newFixture(t)
	customer, account := f.openFor(t, "Alice", models.Savings, "100")

	err := f.accounts.CloseAccount(f.ctx, f.admin, account.ID())
	assert.ErrorIs(t, err, models.ErrNonZeroBalance)

	_, err = f.transactions.Withdraw(f.ctx, f.admin, account.ID(), dec("100"))
	require.NoError(t, err)

	require.NoError(t, f.accounts.CloseAccount(f.ctx, f.admin, account.ID()))
	assert.NotContains(t, customer.AccountIDs, account.ID())
	_, err = f.st.Account(account.ID())
	assert.ErrorIs(t, err, models.ErrAccountNotFound)
}

func TestCloseAccountRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	customer, account := f.openFor(t, "Alice", models.Savings, "0")

	err := f.accounts.CloseAccount(f.ctx, models.CustomerActor(customer.ID), account.ID())
	assert.ErrorIs(t, err, models.ErrAccessDenied)
}

func TestHistoryIsRecencyOrdered(t *testing.T) {
	f := newFixture(t)
	customer, account := f.openFor(t, "Alice", models.Savings, "100")

	_, err := f.transactions.Deposit(f.ctx, f.admin, account.ID(), dec("10"))
	require.NoError(t, err)
	_, err = f.transactions.Withdraw(f.ctx, f.admin, account.ID(), dec("5"))
	require.NoError(t, err)
	_, err = f.transactions.Deposit(f.ctx, f.admin, account.ID(), dec("1"))
	require.NoError(t, err)

	history, err := f.accounts.History(f.ctx, models.CustomerActor(customer.ID), account.ID())
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, models.Deposit, history[0].Type)
	assert.True(t, history[0].Amount.Equal(dec("1")), "most recent first")
	assert.Equal(t, models.Withdrawal, history[1].Type)
	assert.True(t, history[2].Amount.Equal(dec("10")))

	// the view does not consume the ledger
	assert.Len(t, account.Entries(), 3)
}

func TestHistoryDeniedForForeignAccount(t *testing.T) {
	f := newFixture(t)
	_, account := f.openFor(t, "Alice", models.Savings, "0")
	bob, _ := f.openFor(t, "Bob", models.Checking, "0")

	_, err := f.accounts.History(f.ctx, models.CustomerActor(bob.ID), account.ID())
	assert.ErrorIs(t, err, models.ErrAccessDenied)
}

func TestSortedAccountsByOwnerName(t *testing.T) {
	f := newFixture(t)
	_, bobAcc := f.openFor(t, "Bob", models.Savings, "100")
	_, alice1 := f.openFor(t, "Alice", models.Savings, "50")
	_, alice2 := f.openFor(t, "alice", models.Savings, "75")

	accounts, err := f.accounts.SortedAccounts(f.ctx, f.admin, ByOwnerName)
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	// case-insensitive ascending; the two alices keep creation order
	assert.Equal(t, alice1.ID(), accounts[0].ID())
	assert.Equal(t, alice2.ID(), accounts[1].ID())
	assert.Equal(t, bobAcc.ID(), accounts[2].ID())
}

func TestSortedAccountsByBalance(t *testing.T) {
	f := newFixture(t)
	f.openFor(t, "Bob", models.Savings, "100")
	f.openFor(t, "Alice", models.Savings, "50")
	f.openFor(t, "Alice", models.Savings, "75")

	accounts, err := f.accounts.SortedAccounts(f.ctx, f.admin, ByBalance)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.True(t, accounts[0].Balance().Equal(dec("100")))
	assert.True(t, accounts[1].Balance().Equal(dec("75")))
	assert.True(t, accounts[2].Balance().Equal(dec("50")))
}

func TestSortedAccountsFilteredForRestrictedActor(t *testing.T) {
	f := newFixture(t)
	alice, aliceAcc := f.openFor(t, "Alice", models.Savings, "100")
	f.openFor(t, "Bob", models.Savings, "200")

	accounts, err := f.accounts.SortedAccounts(f.ctx, models.CustomerActor(alice.ID), ByBalance)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, aliceAcc.ID(), accounts[0].ID())
}

func TestApplyInterest(t *testing.T) {
	f := newFixture(t)
	_, account := f.openFor(t, "Alice", models.Savings, "100")

	entry, err := f.accounts.ApplyInterest(f.ctx, f.admin, account.ID())
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, models.Deposit, entry.Type)
	assert.True(t, entry.Amount.Equal(dec("2")), "2% of 100")
	assert.True(t, account.Balance().Equal(dec("102")))
	assert.Len(t, account.Entries(), 1)
}

func TestApplyInterestZeroBalanceIsNoOp(t *testing.T) {
	f := newFixture(t)
	_, account := f.openFor(t, "Alice", models.Savings, "0")

	entry, err := f.accounts.ApplyInterest(f.ctx, f.admin, account.ID())
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Empty(t, account.Entries())
}

func TestApplyInterestWrongKind(t *testing.T) {
	f := newFixture(t)
	_, account := f.openFor(t, "Alice", models.Checking, "100")

	_, err := f.accounts.ApplyInterest(f.ctx, f.admin, account.ID())
	assert.ErrorIs(t, err, models.ErrWrongAccountKind)
}

func TestSetOverdraftLimit(t *testing.T) {
	f := newFixture(t)
	customer, account := f.openFor(t, "Alice", models.Checking, "0")

	require.NoError(t, f.accounts.SetOverdraftLimit(f.ctx, f.admin, account.ID(), dec("200")))
	checking := account.(*models.CheckingAccount)
	assert.True(t, checking.OverdraftLimit().Equal(dec("200")))

	err := f.accounts.SetOverdraftLimit(f.ctx, models.CustomerActor(customer.ID), account.ID(), dec("10"))
	assert.ErrorIs(t, err, models.ErrAccessDenied)
}

func TestSetOverdraftLimitWrongKind(t *testing.T) {
	f := newFixture(t)
	_, account := f.openFor(t, "Alice", models.Savings, "0")

	err := f.accounts.SetOverdraftLimit(f.ctx, f.admin, account.ID(), dec("10"))
	assert.ErrorIs(t, err, models.ErrWrongAccountKind)
}

// the overdraft scenario end to end: open checking with 100 against a limit
// of 50, overdraw to -30, fail a further withdrawal, refill to zero, close
func TestCheckingLifecycleScenario(t *testing.T) {
	f := newFixture(t)
	_, account := f.openFor(t, "Alice", models.Checking, "100")

	_, err := f.transactions.Withdraw(f.ctx, f.admin, account.ID(), dec("130"))
	require.NoError(t, err)
	assert.True(t, account.Balance().Equal(dec("-30")))

	_, err = f.transactions.Withdraw(f.ctx, f.admin, account.ID(), dec("25"))
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.True(t, account.Balance().Equal(dec("-30")))

	entries := account.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, models.Failed, entries[1].Status)

	err = f.accounts.CloseAccount(f.ctx, f.admin, account.ID())
	assert.ErrorIs(t, err, models.ErrNonZeroBalance)

	_, err = f.transactions.Deposit(f.ctx, f.admin, account.ID(), dec("30"))
	require.NoError(t, err)
	assert.True(t, account.Balance().IsZero())

	require.NoError(t, f.accounts.CloseAccount(f.ctx, f.admin, account.ID()))
}
