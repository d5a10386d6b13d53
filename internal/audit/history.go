// Package audit renders ledgers for presentation.
package audit

import "github.com/mbasit/teller-ledger/internal/models"

// Recency returns a new slice holding the entries in reverse insertion
// order, most recent first. The source is never mutated or consumed, so
// repeated calls on an unchanged ledger yield identical output.
func Recency(entries []models.LedgerEntry) []models.LedgerEntry {
	out := make([]models.LedgerEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
