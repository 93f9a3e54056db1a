// Package normality implements conjugation probes and exhaustive
// normal-subgroup classification.
package normality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grouplab/group"
)

// Sentinel errors for the classifier.
var (
	// ErrNilGroup is returned if a nil group pointer is passed.
	ErrNilGroup = errors.New("normality: group is nil")

	// ErrEmptySubgroup is returned when H has no elements.
	ErrEmptySubgroup = errors.New("normality: subgroup is empty")

	// ErrNotInSubgroup is returned when Test receives an h outside H.
	ErrNotInSubgroup = errors.New("normality: element not in subgroup")
)

// Status is the classification state of a subgroup.
type Status int

const (
	// StatusUnclassified: no proof either way yet.
	StatusUnclassified Status = iota

	// StatusNormal: exhaustively verified normal.
	StatusNormal

	// StatusNonNormal: a concrete conjugation counterexample exists.
	StatusNonNormal
)

// String names the status for diagnostics and snapshots.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusNonNormal:
		return "non_normal"
	default:
		return "unclassified"
	}
}

// Witness is a non-normality proof: Conjugate = G·H·G⁻¹ lies outside the
// subgroup.
type Witness struct {
	G, H      group.ElementID
	Conjugate group.ElementID
}

// Probe is the outcome of one interactive conjugation test.
type Probe struct {
	// StayedIn reports whether the conjugate landed inside H.
	StayedIn bool

	// Result is the conjugate g·h·g⁻¹ itself, for display.
	Result group.ElementID
}

// Classifier accumulates normality evidence for one subgroup H of G.
// Not safe for concurrent use; a session owns exactly one per subgroup.
type Classifier struct {
	g       *group.Group
	members []group.ElementID
	inH     map[group.ElementID]bool
	status  Status
	witness *Witness
}

// NewClassifier builds a classifier for subgroup H (assumed validated by
// the caller, as with coset.Decompose).
func NewClassifier(g *group.Group, h []group.ElementID) (*Classifier, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	if len(h) == 0 {
		return nil, ErrEmptySubgroup
	}
	c := &Classifier{
		g:       g,
		members: make([]group.ElementID, 0, len(h)),
		inH:     make(map[group.ElementID]bool, len(h)),
	}
	for _, id := range h {
		if !g.Valid(id) {
			return nil, fmt.Errorf("normality: %w: %d", group.ErrUnknownElement, id)
		}
		if c.inH[id] {
			continue
		}
		c.inH[id] = true
		c.members = append(c.members, id)
	}

	return c, nil
}

// Test runs one interactive probe: does gID·hID·gID⁻¹ stay inside H?
//
// An escape permanently records StatusNonNormal with this witness (an
// existential counterexample is a full proof). A stay-in changes nothing:
// confirmation is evidence, never proof, and only VerifyNormal may set
// StatusNormal.
func (c *Classifier) Test(gID, hID group.ElementID) (Probe, error) {
	if !c.inH[hID] {
		if !c.g.Valid(hID) {
			return Probe{}, fmt.Errorf("normality: %w: %d", group.ErrUnknownElement, hID)
		}
		name, _ := c.g.Name(hID)
		return Probe{}, fmt.Errorf("%w: %s", ErrNotInSubgroup, name)
	}
	conj, err := c.g.Conjugate(gID, hID)
	if err != nil {
		return Probe{}, err
	}

	probe := Probe{StayedIn: c.inH[conj], Result: conj}
	if !probe.StayedIn && c.status != StatusNonNormal {
		c.status = StatusNonNormal
		c.witness = &Witness{G: gID, H: hID, Conjugate: conj}
	}

	return probe, nil
}

// VerifyNormal exhaustively confirms g·h·g⁻¹ ∈ H for every g ∈ G, h ∈ H.
// It is the only path that may record StatusNormal; an escape records the
// counterexample exactly as Test would.
func (c *Classifier) VerifyNormal() (bool, error) {
	for _, gID := range c.g.IDs() {
		for _, hID := range c.members {
			conj, err := c.g.Conjugate(gID, hID)
			if err != nil {
				return false, err
			}
			if !c.inH[conj] {
				if c.status != StatusNonNormal {
					c.status = StatusNonNormal
					c.witness = &Witness{G: gID, H: hID, Conjugate: conj}
				}
				return false, nil
			}
		}
	}
	c.status = StatusNormal
	c.witness = nil

	return true, nil
}

// Status returns the current classification.
func (c *Classifier) Status() Status { return c.status }

// Witness returns the recorded counterexample, or nil unless the status is
// StatusNonNormal.
func (c *Classifier) Witness() *Witness {
	if c.witness == nil {
		return nil
	}
	w := *c.witness

	return &w
}

// Members returns H's elements in classifier order (deduplicated input
// order).
func (c *Classifier) Members() []group.ElementID {
	out := make([]group.ElementID, len(c.members))
	copy(out, c.members)

	return out
}
