// Package ledger implements the domain managers: category and transaction
// CRUD with an Idle/Editing state machine, referential-integrity-guarded
// category deletion, and the running ledger totals.
package ledger

// editState is the manager's edit-mode flag. Create is one-shot and does
// not enter Editing; only BeginEdit does.
type editState int

const (
	stateIdle editState = iota
	stateEditing
)

func (s editState) String() string {
	if s == stateEditing {
		return "editing"
	}
	return "idle"
}

// DeleteOutcome distinguishes the two designed results of deleting a
// category. Deactivation is not an error: a category still referenced by
// transactions is soft-deleted to preserve referential integrity.
type DeleteOutcome int

const (
	// HardDeleted means the category was removed from the store.
	HardDeleted DeleteOutcome = iota + 1
	// Deactivated means the category was kept but marked inactive because
	// transactions still reference it.
	Deactivated
)

func (o DeleteOutcome) String() string {
	switch o {
	case HardDeleted:
		return "hard-deleted"
	case Deactivated:
		return "deactivated"
	default:
		return "unknown"
	}
}
