package domain

import (
	"fmt"
	"regexp"
	"strings"

	shared "edubase/pkg/domain"
	dErrors "edubase/pkg/domain-errors"
)

// Details holds the descriptive fields of an establishment.
//
// Invariants:
//   - name, websiteURL and telephoneNumber are non-blank
//   - telephoneNumber is a UK number: +44 mobile form (optional single
//     space after the country code) or an 11 digit number starting with 0
//
// Fields are stored exactly as supplied. Trimming is applied only when
// testing for blankness, never to the stored value.
type Details struct {
	name            string
	websiteURL      string
	telephoneNumber string
}

var ukTelephonePattern = regexp.MustCompile(`^(\+44\s?7\d{9}|0\d{10})$`)

// Validation failures for Details, one per rule in declared field order.
var (
	ErrNameRequired       = dErrors.New(dErrors.CodeValidation, "School name is required.")
	ErrWebsiteURLRequired = dErrors.New(dErrors.CodeValidation, "Website URL is required.")
	ErrTelephoneRequired  = dErrors.New(dErrors.CodeValidation, "Telephone number is required.")
	ErrTelephoneInvalid   = dErrors.New(dErrors.CodeValidation, "Telephone number must be a valid UK number.")
)

// NewDetails creates validated Details. Rules are checked in declared field
// order and the first failure is returned alone.
func NewDetails(name, websiteURL, telephoneNumber string) (Details, error) {
	if strings.TrimSpace(name) == "" {
		return Details{}, ErrNameRequired
	}
	if strings.TrimSpace(websiteURL) == "" {
		return Details{}, ErrWebsiteURLRequired
	}
	if strings.TrimSpace(telephoneNumber) == "" {
		return Details{}, ErrTelephoneRequired
	}
	if !ukTelephonePattern.MatchString(telephoneNumber) {
		return Details{}, ErrTelephoneInvalid
	}
	return Details{
		name:            name,
		websiteURL:      websiteURL,
		telephoneNumber: telephoneNumber,
	}, nil
}

// MustDetails creates Details, panicking if invalid.
// Use only in tests or when the values are known to be valid.
func MustDetails(name, websiteURL, telephoneNumber string) Details {
	d, err := NewDetails(name, websiteURL, telephoneNumber)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the establishment name as supplied.
func (d Details) Name() string {
	return d.name
}

// WebsiteURL returns the website URL as supplied.
func (d Details) WebsiteURL() string {
	return d.websiteURL
}

// TelephoneNumber returns the telephone number as supplied.
func (d Details) TelephoneNumber() string {
	return d.telephoneNumber
}

// String renders all three fields.
func (d Details) String() string {
	return fmt.Sprintf("%s (%s, %s)", d.name, d.websiteURL, d.telephoneNumber)
}

// IsZero returns true if this is the zero value (uninitialized). A value
// constructed through NewDetails is never zero because its name is non-blank.
func (d Details) IsZero() bool {
	return d == Details{}
}

// Components returns the parts compared for equality, in declared order.
func (d Details) Components() []any {
	return []any{d.name, d.websiteURL, d.telephoneNumber}
}

// Equal reports structural equality over (name, websiteURL, telephoneNumber).
func (d Details) Equal(other Details) bool {
	return shared.Equal(d, other)
}
