// Package idgen issues the identifiers used across the ledger: sequential
// prefixed ids for accounts and customers, monotonic ULIDs for ledger
// entries, and UUID references correlating the two sides of a transfer.
package idgen

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const (
	accountPrefix  = "ACC"
	customerPrefix = "CUS"
)

var (
	accountIDPattern  = regexp.MustCompile(`^ACC-\d+$`)
	customerIDPattern = regexp.MustCompile(`^CUS-\d+$`)

	entropy = ulid.Monotonic(rand.Reader, 0)
)

// Sequence issues monotonically increasing prefixed ids such as "ACC-1001".
type Sequence struct {
	prefix string
	next   uint64
}

// creates a sequence; the first id issued carries the start number
func NewSequence(prefix string, start uint64) *Sequence {
	return &Sequence{prefix: prefix, next: start}
}

// creates an account id sequence starting at the given number
func NewAccountSequence(start uint64) *Sequence {
	return NewSequence(accountPrefix, start)
}

// creates a customer id sequence starting at 1
func NewCustomerSequence() *Sequence {
	return NewSequence(customerPrefix, 1)
}

// Next returns the next id in the sequence.
func (s *Sequence) Next() string {
	id := fmt.Sprintf("%s-%d", s.prefix, s.next)
	s.next++
	return id
}

// NewEntryID returns a monotonic, collision-free ledger entry id.
func NewEntryID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// NewReference returns a correlation id shared by the two sides of a transfer.
func NewReference() string {
	return uuid.New().String()
}

// ValidAccountID reports whether id matches the account id format.
func ValidAccountID(id string) bool {
	return accountIDPattern.MatchString(id)
}

// ValidCustomerID reports whether id matches the customer id format.
func ValidCustomerID(id string) bool {
	return customerIDPattern.MatchString(id)
}
