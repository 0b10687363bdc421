package domain

import (
	"fmt"

	shared "edubase/pkg/domain"
	dErrors "edubase/pkg/domain-errors"
)

// Establishment is the aggregate root for the Establishment context. It owns
// exactly one URN (its identity) and one Details value, both immutable. There
// are no update or delete operations in this read-only model.
type Establishment struct {
	shared.Root[URN]
	details Details
}

// ErrDetailsRequired indicates aggregate construction without an initialised
// details value.
var ErrDetailsRequired = dErrors.New(dErrors.CodeInvariantViolation, "An initialised 'EstablishmentDetails' object must be provided.")

// NewEstablishment composes an already-validated URN and Details into an
// aggregate. Only presence of the details is checked here; field-level rules
// belong to the value objects, and values valid at construction stay valid
// because they are immutable.
func NewEstablishment(urn URN, details Details) (Establishment, error) {
	if details.IsZero() {
		return Establishment{}, ErrDetailsRequired
	}
	return Establishment{
		Root:    shared.NewRoot(urn),
		details: details,
	}, nil
}

// MustEstablishment creates an Establishment, panicking if invalid.
// Use only in tests or when the parts are known to be present.
func MustEstablishment(urn URN, details Details) Establishment {
	e, err := NewEstablishment(urn, details)
	if err != nil {
		panic(err)
	}
	return e
}

// Details returns the descriptive fields.
func (e Establishment) Details() Details {
	return e.details
}

// Equal reports equality by identity: two establishments are the same
// aggregate iff their URNs are equal, regardless of details.
func (e Establishment) Equal(other Establishment) bool {
	return e.SameIdentity(other.Root)
}

// IsZero returns true if this is the zero value (uninitialized). A value
// constructed through NewEstablishment always carries initialised details.
func (e Establishment) IsZero() bool {
	return e.details.IsZero()
}

func (e Establishment) String() string {
	return fmt.Sprintf("%s: %s", e.ID(), e.details)
}
