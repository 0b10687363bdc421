// Package domain contains the pure domain model for the Establishment bounded context.
//
// # Establishment Bounded Context
//
// The Establishment context describes schools and other educational
// establishments as they appear in the national register. It is built
// bottom-up from two value objects composed into one aggregate:
//
//   - URN: validated six digit unique reference number
//   - Details: validated descriptive fields (name, website URL, telephone)
//   - Establishment: aggregate root owning one URN and one Details value
//
// Construction is the only write path. The value objects validate their own
// fields; the aggregate enforces composition only and never re-validates its
// children, because immutable values that were valid at construction stay
// valid.
//
// # Domain Purity
//
// This package follows strict domain purity rules:
//
//	✓ No I/O (no database, HTTP, filesystem access)
//	✓ No context.Context in function signatures
//	✓ No logging; failures surface as error values and nothing else
//	✓ Pure input → output constructors, fully testable without mocks
//
// Its only imports beyond the standard library are the shared domain kernel
// (edubase/pkg/domain) and the error vocabulary (edubase/pkg/domain-errors),
// both of which are themselves pure.
package domain
