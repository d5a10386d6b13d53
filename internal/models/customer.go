package models

// Profile holds a customer's optional contact details. A customer has at
// most one profile and a profile belongs to exactly one customer.
type Profile struct {
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Customer owns zero or more accounts and at most one profile. AccountIDs
// mirrors the owner reference on each account: the store keeps the two sides
// consistent when accounts are opened and closed.
type Customer struct {
	ID         string
	Name       string
	Profile    *Profile
	AccountIDs []string
}

// creates a new customer with no profile and no accounts
func NewCustomer(id, name string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Customer{ID: id, Name: name}, nil
}

// SetProfile attaches a profile, keeping the back-reference consistent.
func (c *Customer) SetProfile(p *Profile) {
	if p != nil {
		p.CustomerID = c.ID
	}
	c.Profile = p
}

// LinkAccount records ownership of an account.
func (c *Customer) LinkAccount(accountID string) {
	for _, id := range c.AccountIDs {
		if id == accountID {
			return
		}
	}
	c.AccountIDs = append(c.AccountIDs, accountID)
}

// UnlinkAccount removes an account from the customer's collection.
func (c *Customer) UnlinkAccount(accountID string) {
	for i, id := range c.AccountIDs {
		if id == accountID {
			c.AccountIDs = append(c.AccountIDs[:i], c.AccountIDs[i+1:]...)
			return
		}
	}
}
