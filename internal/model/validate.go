package model

import (
	"strings"

	"grana/internal/common"
)

// Field length limits, matching the persisted schema.
const (
	MaxCategoryNameLen        = 100
	MaxCategoryDescriptionLen = 500
	MaxTransactionDescLen     = 200
	MaxTransactionNotesLen    = 1000
)

// ValidateCategory checks a category against the entity invariants. It has
// no side effects and does not touch the store.
func ValidateCategory(c *Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return common.NewValidationError("name", "name is required")
	}
	if len(c.Name) > MaxCategoryNameLen {
		return common.NewValidationError("name", "name must be at most 100 characters")
	}
	if len(c.Description) > MaxCategoryDescriptionLen {
		return common.NewValidationError("description", "description must be at most 500 characters")
	}
	if !c.Kind.Valid() {
		return common.NewValidationError("kind", "kind must be income or expense")
	}
	if c.Color != "" && !validColor(c.Color) {
		return common.NewValidationError("color", "color must be in #RRGGBB format")
	}
	return nil
}

// ValidateTransaction checks a transaction against the entity invariants.
// resolved is the category t.CategoryID points at; the caller resolves it
// so this stays a pure predicate.
func ValidateTransaction(t *Transaction, resolved *Category) error {
	if strings.TrimSpace(t.Description) == "" {
		return common.NewValidationError("description", "description is required")
	}
	if len(t.Description) > MaxTransactionDescLen {
		return common.NewValidationError("description", "description must be at most 200 characters")
	}
	if !t.Amount.IsPositive() {
		return common.NewValidationError("amount", "amount must be greater than zero")
	}
	if t.Date.IsZero() {
		return common.NewValidationError("date", "date is required")
	}
	if !t.Kind.Valid() {
		return common.NewValidationError("kind", "kind must be income or expense")
	}
	if len(t.Notes) > MaxTransactionNotesLen {
		return common.NewValidationError("notes", "notes must be at most 1000 characters")
	}
	if t.CategoryID == 0 {
		return common.NewValidationError("categoryId", "category is required")
	}
	if resolved == nil {
		return common.NewValidationError("categoryId", "category does not exist")
	}
	if resolved.Kind != t.Kind {
		return common.NewValidationError("categoryId", "category kind does not match transaction kind")
	}
	return nil
}

// validColor accepts exactly the 7-character #RRGGBB form. Hue correctness
// is not checked beyond the hex digits.
func validColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < 7; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
