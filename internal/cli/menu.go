// Package cli is the interactive menu layer over the ledger core. It
// resolves the acting principal, renders the options the actor may use, and
// translates typed fields into service calls. No business rule lives here.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mbasit/teller-ledger/internal/models"
	"github.com/mbasit/teller-ledger/internal/service"
)

// Menu drives one interactive session.
type Menu struct {
	accounts     *service.AccountService
	transactions *service.TransactionService
	customers    *service.CustomerService
	prompt       *Prompter
	out          io.Writer
}

// creates a new Menu
func NewMenu(accounts *service.AccountService, transactions *service.TransactionService, customers *service.CustomerService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		accounts:     accounts,
		transactions: transactions,
		customers:    customers,
		prompt:       NewPrompter(in, out),
		out:          out,
	}
}

// Run logs an operator in and loops over the menu until they quit or input
// ends.
func (m *Menu) Run(ctx context.Context) error {
	actor, err := m.login(ctx)
	if err != nil {
		return err
	}

	for {
		m.render(actor)
		choice, err := m.prompt.Line("choice")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == "q" {
			return nil
		}
		if err := m.dispatch(ctx, actor, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintf(m.out, "error: %v\n", err)
		}
	}
}

func (m *Menu) login(ctx context.Context) (models.Actor, error) {
	for {
		name, err := m.prompt.Line("login")
		if err != nil {
			return models.Actor{}, err
		}
		credential, err := m.prompt.Line("credential")
		if err != nil {
			return models.Actor{}, err
		}
		actor, err := m.customers.Authenticate(ctx, name, credential)
		if err == nil {
			return actor, nil
		}
		fmt.Fprintln(m.out, "login failed, try again")
	}
}

func (m *Menu) render(actor models.Actor) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "1) deposit")
	fmt.Fprintln(m.out, "2) withdraw")
	fmt.Fprintln(m.out, "3) transfer")
	fmt.Fprintln(m.out, "4) account details")
	fmt.Fprintln(m.out, "5) history")
	fmt.Fprintln(m.out, "6) list accounts by owner name")
	fmt.Fprintln(m.out, "7) list accounts by balance")
	if actor.Unrestricted() {
		fmt.Fprintln(m.out, "8) register customer")
		fmt.Fprintln(m.out, "9) open account")
		fmt.Fprintln(m.out, "10) close account")
		fmt.Fprintln(m.out, "11) apply interest")
		fmt.Fprintln(m.out, "12) set overdraft limit")
	}
	fmt.Fprintln(m.out, "q) quit")
}

func (m *Menu) dispatch(ctx context.Context, actor models.Actor, choice string) error {
	switch choice {
	case "1":
		return m.deposit(ctx, actor)
	case "2":
		return m.withdraw(ctx, actor)
	case "3":
		return m.transfer(ctx, actor)
	case "4":
		return m.details(ctx, actor)
	case "5":
		return m.history(ctx, actor)
	case "6":
		return m.list(ctx, actor, service.ByOwnerName)
	case "7":
		return m.list(ctx, actor, service.ByBalance)
	case "8":
		return m.register(ctx, actor)
	case "9":
		return m.openAccount(ctx, actor)
	case "10":
		return m.closeAccount(ctx, actor)
	case "11":
		return m.applyInterest(ctx, actor)
	case "12":
		return m.setOverdraft(ctx, actor)
	default:
		fmt.Fprintln(m.out, "unknown choice")
		return nil
	}
}

func (m *Menu) deposit(ctx context.Context, actor models.Actor) error {
	id, err := m.prompt.Line("account id")
	if err != nil {
		return err
	}
	amount, err := m.prompt.Amount("amount")
	if err != nil {
		return err
	}
	entry, err := m.transactions.Deposit(ctx, actor, id, amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "deposited %s (entry %s)\n", amount.StringFixed(2), entry.ID)
	return nil
}

func (m *Menu) withdraw(ctx context.Context, actor models.Actor) error {
	id, err := m.prompt.Line("account id")
	if err != nil {
		return err
	}
	amount, err := m.prompt.Amount("amount")
	if err != nil {
		return err
	}
	entry, err := m.transactions.Withdraw(ctx, actor, id, amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "withdrew %s (entry %s)\n", amount.StringFixed(2), entry.ID)
	return nil
}

func (m *Menu) transfer(ctx context.Context, actor models.Actor) error {
	from, err := m.prompt.Line("from account id")
	if err != nil {
		return err
	}
	to, err := m.prompt.Line("to account id")
	if err != nil {
		return err
	}
	amount, err := m.prompt.Amount("amount")
	if err != nil {
		return err
	}
	reference, err := m.transactions.Transfer(ctx, actor, from, to, amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "transferred %s (reference %s)\n", amount.StringFixed(2), reference)
	return nil
}

func (m *Menu) details(ctx context.Context, actor models.Actor) error {
	id, err := m.prompt.Line("account id")
	if err != nil {
		return err
	}
	details, err := m.accounts.Details(ctx, actor, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, details)
	return nil
}

func (m *Menu) history(ctx context.Context, actor models.Actor) error {
	id, err := m.prompt.Line("account id")
	if err != nil {
		return err
	}
	entries, err := m.accounts.History(ctx, actor, id)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(m.out, "no transactions")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(m.out, "%s  %-10s %-9s %10s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Type, e.Status, e.Amount.StringFixed(2))
	}
	return nil
}

func (m *Menu) list(ctx context.Context, actor models.Actor, by service.SortKey) error {
	accounts, err := m.accounts.SortedAccounts(ctx, actor, by)
	if err != nil {
		return err
	}
	for _, a := range accounts {
		fmt.Fprintln(m.out, a.Details())
	}
	return nil
}

func (m *Menu) register(ctx context.Context, actor models.Actor) error {
	name, err := m.prompt.Line("customer name")
	if err != nil {
		return err
	}
	if !ValidName(name) {
		return fmt.Errorf("name %q: %w", name, models.ErrEmptyName)
	}
	customer, err := m.customers.Register(ctx, actor, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "registered %s as %s\n", customer.Name, customer.ID)
	return nil
}

func (m *Menu) openAccount(ctx context.Context, actor models.Actor) error {
	customerID, err := m.prompt.Line("customer id")
	if err != nil {
		return err
	}
	kind, err := m.prompt.Line("kind (savings/checking)")
	if err != nil {
		return err
	}
	opening, err := m.prompt.Amount("opening balance")
	if err != nil {
		return err
	}
	account, err := m.accounts.OpenAccount(ctx, actor, customerID, models.AccountKind(kind), opening)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "opened %s\n", account.ID())
	return nil
}

func (m *Menu) closeAccount(ctx context.Context, actor models.Actor) error {
	id, err := m.prompt.Line("account id")
	if err != nil {
		return err
	}
	if err := m.accounts.CloseAccount(ctx, actor, id); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "closed %s\n", id)
	return nil
}

func (m *Menu) applyInterest(ctx context.Context, actor models.Actor) error {
	id, err := m.prompt.Line("account id")
	if err != nil {
		return err
	}
	entry, err := m.accounts.ApplyInterest(ctx, actor, id)
	if err != nil {
		return err
	}
	if entry == nil {
		fmt.Fprintln(m.out, "no interest accrued")
		return nil
	}
	fmt.Fprintf(m.out, "applied interest of %s\n", entry.Amount.StringFixed(2))
	return nil
}

func (m *Menu) setOverdraft(ctx context.Context, actor models.Actor) error {
	id, err := m.prompt.Line("account id")
	if err != nil {
		return err
	}
	limit, err := m.prompt.Amount("overdraft limit")
	if err != nil {
		return err
	}
	if err := m.accounts.SetOverdraftLimit(ctx, actor, id, limit); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "overdraft limit on %s set to %s\n", id, limit.StringFixed(2))
	return nil
}
