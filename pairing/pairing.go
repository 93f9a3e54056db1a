// Package pairing implements the element/inverse pairing ledger.
package pairing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grouplab/group"
)

// ErrNilGroup is returned if a nil group pointer is passed.
var ErrNilGroup = errors.New("pairing: group is nil")

// PairResult is the outcome of one pairing attempt.
type PairResult struct {
	// Success reports whether key·candidate was the identity.
	Success bool

	// Result is the actual product, for display on failure.
	Result group.ElementID

	// SelfInverse is set when a successful pair had key == candidate.
	SelfInverse bool
}

// Pair is one confirmed ledger record.
type Pair struct {
	Key         group.ElementID
	Inverse     group.ElementID
	SelfInverse bool
}

// Ledger records confirmed inverse pairs for one session. Not safe for
// concurrent use; a session owns exactly one.
type Ledger struct {
	g           *group.Group
	inverseOf   map[group.ElementID]group.ElementID
	selfInverse map[group.ElementID]bool
}

// NewLedger builds an empty ledger and pre-resolves the identity element,
// which is always its own inverse and requires no player action.
func NewLedger(g *group.Group) (*Ledger, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	l := &Ledger{
		g:           g,
		inverseOf:   make(map[group.ElementID]group.ElementID, g.Order()),
		selfInverse: make(map[group.ElementID]bool),
	}
	l.record(g.Identity(), g.Identity())

	return l, nil
}

// TryPair proposes candidate as the inverse of key. Success iff their
// product is the identity; the symmetric pair is then recorded too.
// Repeating a confirmed pair succeeds idempotently.
func (l *Ledger) TryPair(key, candidate group.ElementID) (PairResult, error) {
	p, err := l.g.Product(key, candidate)
	if err != nil {
		return PairResult{}, fmt.Errorf("pairing: %w", err)
	}
	if p != l.g.Identity() {
		return PairResult{Success: false, Result: p}, nil
	}

	l.record(key, candidate)

	return PairResult{Success: true, Result: p, SelfInverse: key == candidate}, nil
}

// record stores key↔candidate, both directions.
func (l *Ledger) record(key, candidate group.ElementID) {
	l.inverseOf[key] = candidate
	if key == candidate {
		l.selfInverse[key] = true
		return
	}
	l.inverseOf[candidate] = key
}

// Paired returns the confirmed inverse of id, if any.
func (l *Ledger) Paired(id group.ElementID) (group.ElementID, bool) {
	inv, ok := l.inverseOf[id]
	if !ok {
		return group.NoElement, false
	}

	return inv, true
}

// SelfInverse reports whether id was confirmed as its own inverse.
func (l *Ledger) SelfInverse(id group.ElementID) bool { return l.selfInverse[id] }

// Complete reports whether every element has a confirmed inverse.
func (l *Ledger) Complete() bool { return len(l.inverseOf) == l.g.Order() }

// Pairs returns all confirmed records in canonical element order.
func (l *Ledger) Pairs() []Pair {
	out := make([]Pair, 0, len(l.inverseOf))
	for _, id := range l.g.IDs() {
		inv, ok := l.inverseOf[id]
		if !ok {
			continue
		}
		out = append(out, Pair{Key: id, Inverse: inv, SelfInverse: l.selfInverse[id]})
	}

	return out
}
