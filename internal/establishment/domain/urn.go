package domain

import (
	"regexp"
	"strconv"

	shared "edubase/pkg/domain"
	dErrors "edubase/pkg/domain-errors"
)

// URN is the unique reference number identifying an establishment in the
// national register.
//
// Invariants:
//   - Decimal form is exactly six digits (100000-999999)
//   - No sign, no separators
type URN struct {
	value int
}

var urnPattern = regexp.MustCompile(`^\d{6}$`)

// ErrInvalidURN indicates the reference number failed validation.
var ErrInvalidURN = dErrors.New(dErrors.CodeInvalidInput, "urn must be exactly 6 digits")

// NewURN creates a validated URN.
// Returns an error unless the value renders as exactly six decimal digits.
func NewURN(value int) (URN, error) {
	if !urnPattern.MatchString(strconv.Itoa(value)) {
		return URN{}, ErrInvalidURN
	}
	return URN{value: value}, nil
}

// MustURN creates a URN, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustURN(value int) URN {
	urn, err := NewURN(value)
	if err != nil {
		panic(err)
	}
	return urn
}

// Value returns the numeric reference number.
func (u URN) Value() int {
	return u.value
}

// String returns the six decimal digits.
func (u URN) String() string {
	return strconv.Itoa(u.value)
}

// IsZero returns true if this is the zero value (uninitialized).
func (u URN) IsZero() bool {
	return u.value == 0
}

// Components returns the parts compared for equality, in declared order.
func (u URN) Components() []any {
	return []any{u.value}
}

// Equal reports structural equality: two URNs are equal iff their values are.
func (u URN) Equal(other URN) bool {
	return shared.Equal(u, other)
}
