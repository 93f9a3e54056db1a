// Package subgroup defines failure reasons, witnesses, and the Check result.
package subgroup

import (
	"errors"

	"github.com/katalvlaran/grouplab/group"
)

// Sentinel errors for subgroup queries.
var (
	// ErrNilGroup is returned if a nil group pointer is passed.
	ErrNilGroup = errors.New("subgroup: group is nil")

	// ErrEmptyCandidate is returned for an empty candidate or generator set.
	ErrEmptyCandidate = errors.New("subgroup: candidate set is empty")
)

// FailureReason tags one violated subgroup axiom.
type FailureReason int

const (
	// MissingIdentity: no element of the candidate is the group identity.
	MissingIdentity FailureReason = iota

	// MissingInverse: some candidate element's inverse is outside the set.
	MissingInverse

	// NotClosed: some ordered pair composes to an element outside the set.
	NotClosed
)

// String names the reason for diagnostics.
func (r FailureReason) String() string {
	switch r {
	case MissingIdentity:
		return "missing_identity"
	case MissingInverse:
		return "missing_inverse"
	case NotClosed:
		return "not_closed_composition"
	default:
		return "unknown"
	}
}

// ClosureWitness is the first ordered pair found whose product escapes the
// candidate set.
type ClosureWitness struct {
	A, B    group.ElementID
	Product group.ElementID
}

// Result reports the outcome of Check. Reasons lists violated axioms in
// check order (identity, inverse, closure); witnesses are the first
// violation found per axiom and are stable across runs.
type Result struct {
	IsSubgroup bool
	Reasons    []FailureReason

	// InverseWitness is the first candidate element whose inverse is
	// missing; group.NoElement when the inverse axiom holds.
	InverseWitness group.ElementID

	// Closure is the first escaping pair; nil when closure holds.
	Closure *ClosureWitness
}

// Has reports whether a specific axiom failure was recorded.
func (r Result) Has(reason FailureReason) bool {
	for _, got := range r.Reasons {
		if got == reason {
			return true
		}
	}

	return false
}
