// Package tracker defines phases, rejection reasons, options, and results
// for the staged-construction state machine.
package tracker

import (
	"errors"
	"fmt"
)

// Sentinel errors for tracker construction and transitions.
var (
	// ErrNilDecomposition is returned if a nil decomposition is passed.
	ErrNilDecomposition = errors.New("tracker: decomposition is nil")

	// ErrMissingLabel is returned when no correct quotient-type label is given.
	ErrMissingLabel = errors.New("tracker: correct type label is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tracker: invalid option supplied")

	// ErrWrongPhase is returned when an operation is issued outside its phase.
	ErrWrongPhase = errors.New("tracker: operation not valid in current phase")

	// ErrBadSnapshot is returned when Restore receives state inconsistent
	// with the decomposition.
	ErrBadSnapshot = errors.New("tracker: snapshot inconsistent with decomposition")
)

// Phase is the tracker's lifecycle stage.
type Phase int

const (
	// PhasePending: created, assembly not yet begun.
	PhasePending Phase = iota

	// PhaseBuilding: elements are being placed into coset slots.
	PhaseBuilding

	// PhaseCosetsDone: every slot is full; the quiz is open.
	PhaseCosetsDone

	// PhaseTypeIdentified: quiz answered correctly. Terminal.
	PhaseTypeIdentified
)

// String names the phase for diagnostics and snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseBuilding:
		return "building"
	case PhaseCosetsDone:
		return "cosets_done"
	case PhaseTypeIdentified:
		return "type_identified"
	default:
		return "pending"
	}
}

// RejectReason tags why a placement was refused.
type RejectReason int

const (
	// RejectNone: the placement was accepted.
	RejectNone RejectReason = iota

	// RejectDuplicate: the element is already placed in some slot.
	RejectDuplicate

	// RejectWrongCoset: the element belongs to a different coset than the
	// slot's first element.
	RejectWrongCoset
)

// String names the reason for diagnostics.
func (r RejectReason) String() string {
	switch r {
	case RejectDuplicate:
		return "duplicate_placement"
	case RejectWrongCoset:
		return "wrong_coset"
	default:
		return "accepted"
	}
}

// Placement is the outcome of one Place call.
type Placement struct {
	// Accepted reports whether the element entered the active slot.
	Accepted bool

	// Reason is RejectNone when accepted.
	Reason RejectReason

	// Slot is the slot the element was placed into (or aimed at).
	Slot int

	// SlotFilled is set when this placement completed the slot.
	SlotFilled bool

	// AllFilled is set when this placement completed the last slot and
	// the tracker transitioned to PhaseCosetsDone.
	AllFilled bool
}

// QuizResult is the outcome of one quiz submission.
type QuizResult struct {
	// Correct reports an exact label match (and the terminal transition).
	Correct bool
}

// TypePool maps a group order to the isomorphism-type labels of that
// order, the source of structurally plausible quiz distractors. Pure
// content-tuning data; inject a custom pool via WithTypePool.
type TypePool map[int][]string

// Option configures Tracker construction.
type Option func(*options)

type options struct {
	pool        TypePool
	seed        int64
	distractors int
	err         error
}

func defaultOptions() options {
	return options{
		pool:        nil,
		seed:        1,
		distractors: 3,
	}
}

// WithTypePool injects the distractor pool (defaults to none, yielding a
// single-choice quiz; sessions normally pass catalog.DefaultTypePool()).
func WithTypePool(pool TypePool) Option {
	return func(o *options) {
		if pool != nil {
			o.pool = pool
		}
	}
}

// WithQuizSeed fixes the shuffle seed for reproducible choice order.
func WithQuizSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithDistractors sets how many wrong choices accompany the correct label.
//
//	2 or 3: supported range
//	other:  invalid option → ErrOptionViolation
func WithDistractors(k int) Option {
	return func(o *options) {
		if k < 2 || k > 3 {
			o.err = fmt.Errorf("%w: distractor count %d outside [2,3]", ErrOptionViolation, k)
			return
		}
		o.distractors = k
	}
}
