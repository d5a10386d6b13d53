// Package access holds the two composable authorization predicates: a
// role-level capability check and a row-level ownership check. Admin-only
// operations consult only the first; money movement consults the second,
// re-evaluated against the live tables on every call.
package access

import (
	"github.com/mbasit/teller-ledger/internal/models"
	"github.com/mbasit/teller-ledger/internal/store"
)

type Action string

const (
	ActionOpenAccount   Action = "open_account"
	ActionCloseAccount  Action = "close_account"
	ActionSetOverdraft  Action = "set_overdraft"
	ActionApplyInterest Action = "apply_interest"
	ActionRegisterUser  Action = "register_customer"
)

// adminOnly lists the actions a restricted actor may never perform
var adminOnly = map[Action]bool{
	ActionOpenAccount:   true,
	ActionCloseAccount:  true,
	ActionSetOverdraft:  true,
	ActionApplyInterest: true,
	ActionRegisterUser:  true,
}

// HasCapability reports whether the actor's role permits the action. For an
// unrestricted actor this is trivially true.
func HasCapability(actor models.Actor, action Action) bool {
	if actor.Unrestricted() {
		return true
	}
	return !adminOnly[action]
}

// CanAccess reports whether the actor may act on the account. Unrestricted
// actors may act on any account. Restricted actors may act only on accounts
// that exist and are owned by their bound customer; a missing account is a
// denial, not an error. The check is stateless and must not be cached:
// ownership can change between calls.
func CanAccess(st *store.Store, actor models.Actor, accountID string) bool {
	if actor.Unrestricted() {
		return true
	}
	a, err := st.Account(accountID)
	if err != nil {
		return false
	}
	return a.OwnerID() == actor.CustomerID
}
