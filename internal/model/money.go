package model

import (
	"fmt"
	"strings"
)

// Money is a fixed-point amount in cents. Arithmetic stays in int64 so
// sums over a ledger are exact.
type Money struct {
	Cents int64
}

// maxUnits bounds ParseMoney input so units*100+cents cannot overflow.
const maxUnits = (1<<63 - 1) / 100

// NewMoney builds an amount from whole units and cents.
func NewMoney(units, cents int64) Money {
	return Money{Cents: units*100 + cents}
}

// ParseMoney parses a positive decimal amount. Both "." and "," work as
// the decimal separator. At most two fraction digits are kept; a third
// digit rounds half up. Zero, negative, and signed inputs are rejected.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("amount is empty")
	}
	if s[0] == '+' || s[0] == '-' {
		return Money{}, fmt.Errorf("amount must be unsigned: %q", s)
	}

	intPart := s
	var fracPart string
	if i := strings.IndexAny(s, ".,"); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if strings.ContainsAny(fracPart, ".,") {
			return Money{}, fmt.Errorf("invalid amount: %q", s)
		}
	}
	if intPart == "" && fracPart == "" {
		return Money{}, fmt.Errorf("invalid amount: %q", s)
	}

	var units int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return Money{}, fmt.Errorf("invalid amount: %q", s)
		}
		units = units*10 + int64(r-'0')
		if units > maxUnits {
			return Money{}, fmt.Errorf("amount too large: %q", s)
		}
	}

	var cents int64
	for i, r := range fracPart {
		if r < '0' || r > '9' {
			return Money{}, fmt.Errorf("invalid amount: %q", s)
		}
		d := int64(r - '0')
		switch i {
		case 0:
			cents = d * 10
		case 1:
			cents += d
		case 2:
			// Half-up on the third decimal; anything past it is noise.
			if d >= 5 {
				cents++
			}
		}
	}

	m := NewMoney(units, cents)
	if !m.IsPositive() {
		return Money{}, fmt.Errorf("amount must be greater than zero: %q", s)
	}
	return m, nil
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

// Sub returns m - o. The result may be negative.
func (m Money) Sub(o Money) Money {
	return Money{Cents: m.Cents - o.Cents}
}

// Div returns m divided by n, rounded half up. Dividing by zero yields
// zero so callers averaging an empty group need no guard.
func (m Money) Div(n int64) Money {
	if n == 0 {
		return Money{}
	}
	half := n / 2
	if m.Cents < 0 {
		half = -half
	}
	return Money{Cents: (m.Cents + half) / n}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.Cents > 0
}

// String formats the amount as a plain decimal, e.g. "1234.56".
func (m Money) String() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
