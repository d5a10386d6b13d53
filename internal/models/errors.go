package models

import "errors"

// Domain errors. Input errors (invalid amount, same-account transfer,
// malformed id) are surfaced to the caller and never recorded in a ledger.
// Insufficient funds is a business-rule outcome: the processor records a
// failed ledger entry in addition to returning the error.
var (
	// ErrInvalidAmount indicates a zero or negative amount, or a negative
	// opening balance.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidRate indicates a savings interest rate outside [0, 1].
	ErrInvalidRate = errors.New("interest rate must be between 0 and 1")

	// ErrSameAccount indicates a transfer where source and destination match.
	ErrSameAccount = errors.New("source and destination accounts are the same")

	// ErrMalformedID indicates an identifier that does not match the expected format.
	ErrMalformedID = errors.New("malformed identifier")

	// ErrAccessDenied indicates the actor may not act on the target account.
	ErrAccessDenied = errors.New("access denied")

	// ErrInsufficientFunds indicates a withdrawal rejected by the account's
	// eligibility rule.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNonZeroBalance indicates an attempt to close an account whose
	// balance is not exactly zero.
	ErrNonZeroBalance = errors.New("account balance must be zero")

	// ErrAccountNotFound indicates an unknown account id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCustomerNotFound indicates an unknown customer id.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrPrincipalNotFound indicates an unknown login name.
	ErrPrincipalNotFound = errors.New("principal not found")

	// ErrNilEntry indicates an attempt to append a nil ledger entry.
	ErrNilEntry = errors.New("ledger entry is nil")

	// ErrUnknownAccountKind indicates an account kind outside the closed set.
	ErrUnknownAccountKind = errors.New("unknown account kind")

	// ErrWrongAccountKind indicates an operation applied to an account kind
	// that does not support it.
	ErrWrongAccountKind = errors.New("operation not supported for this account kind")

	// ErrEmptyName indicates a blank customer display name.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrDuplicatePrincipal indicates a login name that is already registered.
	ErrDuplicatePrincipal = errors.New("principal already registered")
)
