// Package store keeps the in-memory account, customer, and principal tables.
// The core is single-threaded and memory-resident: every operation completes
// its mutation before the next begins, so the tables carry no locks.
package store

import (
	"fmt"

	"github.com/mbasit/teller-ledger/internal/models"
)

// Store is the registry of accounts, customers, and login principals.
// Accounts keep their creation order so listings have a stable tie-break.
type Store struct {
	accounts   map[string]models.Account
	order      []string
	customers  map[string]*models.Customer
	principals map[string]*models.Principal
}

// creates an empty store
func New() *Store {
	return &Store{
		accounts:   make(map[string]models.Account),
		customers:  make(map[string]*models.Customer),
		principals: make(map[string]*models.Principal),
	}
}

// AddAccount registers an account under its id.
func (s *Store) AddAccount(a models.Account) {
	if _, ok := s.accounts[a.ID()]; !ok {
		s.order = append(s.order, a.ID())
	}
	s.accounts[a.ID()] = a
}

// Account retrieves an account by id.
func (s *Store) Account(id string) (models.Account, error) {
	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, models.ErrAccountNotFound)
	}
	return a, nil
}

// RemoveAccount deletes an account from the table.
func (s *Store) RemoveAccount(id string) error {
	if _, ok := s.accounts[id]; !ok {
		return fmt.Errorf("account %s: %w", id, models.ErrAccountNotFound)
	}
	delete(s.accounts, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Accounts returns all accounts in creation order.
func (s *Store) Accounts() []models.Account {
	out := make([]models.Account, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.accounts[id])
	}
	return out
}

// AddCustomer registers a customer under their id.
func (s *Store) AddCustomer(c *models.Customer) {
	s.customers[c.ID] = c
}

// Customer retrieves a customer by id.
func (s *Store) Customer(id string) (*models.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, models.ErrCustomerNotFound)
	}
	return c, nil
}

// AddPrincipal registers a login principal; names are unique.
func (s *Store) AddPrincipal(p *models.Principal) error {
	if _, ok := s.principals[p.Name]; ok {
		return fmt.Errorf("principal %s: %w", p.Name, models.ErrDuplicatePrincipal)
	}
	s.principals[p.Name] = p
	return nil
}

// Principal retrieves a principal by login name.
func (s *Store) Principal(name string) (*models.Principal, error) {
	p, ok := s.principals[name]
	if !ok {
		return nil, fmt.Errorf("principal %s: %w", name, models.ErrPrincipalNotFound)
	}
	return p, nil
}

// ReplaceCredential swaps the stored principal for a new value carrying the
// new credential. The old value is left intact for any outstanding
// references; only the registry slot changes.
func (s *Store) ReplaceCredential(name, credential string) (*models.Principal, error) {
	old, err := s.Principal(name)
	if err != nil {
		return nil, err
	}
	next := old.WithCredential(credential)
	s.principals[name] = next
	return next, nil
}
