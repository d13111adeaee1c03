// Package model defines the ledger's entities and their validation rules.
package model

import "time"

// Transaction is a single income or expense entry. CategoryID always
// resolves to an existing category (active or inactive); Category carries
// the resolved copy when the transaction was loaded through the store.
type Transaction struct {
	Date        time.Time
	CreatedAt   time.Time
	ModifiedAt  time.Time
	Description string
	Notes       string
	Category    Category
	Amount      Money
	ID          int64
	CategoryID  int64
	Kind        Kind
}
