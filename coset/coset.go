// Package coset implements left-coset decomposition.
package coset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grouplab/group"
)

// Sentinel errors for coset decomposition.
var (
	// ErrNilGroup is returned if a nil group pointer is passed.
	ErrNilGroup = errors.New("coset: group is nil")

	// ErrEmptySubgroup is returned when N has no elements.
	ErrEmptySubgroup = errors.New("coset: subgroup is empty")

	// ErrNotDisjoint is returned when two cosets overlap, which can only
	// happen when N is not actually a subgroup.
	ErrNotDisjoint = errors.New("coset: cosets overlap; N is not a subgroup")

	// ErrCosetIndex is returned by CosetAt for an out-of-range index.
	ErrCosetIndex = errors.New("coset: coset index out of range")
)

// Coset is one left coset: its representative (the first member in
// canonical group order) and all member ids.
type Coset struct {
	Rep     group.ElementID
	Members []group.ElementID
}

// Decomposition is the full left-coset partition of a group by a subgroup.
// Immutable once returned by Decompose.
type Decomposition struct {
	cosets   []Coset
	repOf    []group.ElementID
	indexOf  []int
	subOrder int
}

// Decompose partitions g into left cosets of N, in canonical order.
// N is trusted to be a subgroup; see the package contract.
func Decompose(g *group.Group, n []group.ElementID) (*Decomposition, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	if len(n) == 0 {
		return nil, ErrEmptySubgroup
	}
	for _, id := range n {
		if !g.Valid(id) {
			return nil, fmt.Errorf("coset: %w: %d", group.ErrUnknownElement, id)
		}
	}

	order := g.Order()
	d := &Decomposition{
		repOf:    make([]group.ElementID, order),
		indexOf:  make([]int, order),
		subOrder: len(n),
	}
	for i := range d.repOf {
		d.repOf[i] = group.NoElement
		d.indexOf[i] = -1
	}

	for _, rep := range g.IDs() {
		if d.repOf[rep] != group.NoElement {
			continue
		}
		members := make([]group.ElementID, 0, len(n))
		cosetIdx := len(d.cosets)
		for _, h := range n {
			p, err := g.Product(rep, h)
			if err != nil {
				return nil, err
			}
			if d.repOf[p] != group.NoElement {
				pName, _ := g.Name(p)
				prev, _ := g.Name(d.repOf[p])
				cur, _ := g.Name(rep)
				return nil, fmt.Errorf("%w: %s lies in the cosets of both %s and %s",
					ErrNotDisjoint, pName, prev, cur)
			}
			d.repOf[p] = rep
			d.indexOf[p] = cosetIdx
			members = append(members, p)
		}
		d.cosets = append(d.cosets, Coset{Rep: rep, Members: members})
	}

	return d, nil
}

// Index returns the number of cosets, |G|/|N|.
func (d *Decomposition) Index() int { return len(d.cosets) }

// SubgroupOrder returns |N|, the common size of every coset.
func (d *Decomposition) SubgroupOrder() int { return d.subOrder }

// Representative returns the representative of the coset containing id,
// or group.NoElement when id is out of range.
func (d *Decomposition) Representative(id group.ElementID) group.ElementID {
	if id < 0 || int(id) >= len(d.repOf) {
		return group.NoElement
	}

	return d.repOf[id]
}

// CosetIndexOf returns the position of id's coset in canonical order,
// or -1 when id is out of range.
func (d *Decomposition) CosetIndexOf(id group.ElementID) int {
	if id < 0 || int(id) >= len(d.indexOf) {
		return -1
	}

	return d.indexOf[id]
}

// CosetAt returns the i-th coset in canonical order.
func (d *Decomposition) CosetAt(i int) (Coset, error) {
	if i < 0 || i >= len(d.cosets) {
		return Coset{}, fmt.Errorf("%w: %d of %d", ErrCosetIndex, i, len(d.cosets))
	}

	return copyCoset(d.cosets[i]), nil
}

// Cosets returns all cosets in canonical order as a deep copy.
func (d *Decomposition) Cosets() []Coset {
	out := make([]Coset, len(d.cosets))
	for i, c := range d.cosets {
		out[i] = copyCoset(c)
	}

	return out
}

// Representatives returns the representative ids in canonical coset order.
func (d *Decomposition) Representatives() []group.ElementID {
	out := make([]group.ElementID, len(d.cosets))
	for i, c := range d.cosets {
		out[i] = c.Rep
	}

	return out
}

func copyCoset(c Coset) Coset {
	members := make([]group.ElementID, len(c.Members))
	copy(members, c.Members)

	return Coset{Rep: c.Rep, Members: members}
}
