// Package quotient implements quotient-table construction and verification.
package quotient

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grouplab/coset"
	"github.com/katalvlaran/grouplab/group"
)

// Sentinel errors for quotient construction.
var (
	// ErrNilGroup is returned if a nil group pointer is passed.
	ErrNilGroup = errors.New("quotient: group is nil")

	// ErrNilDecomposition is returned if a nil decomposition is passed.
	ErrNilDecomposition = errors.New("quotient: decomposition is nil")

	// ErrNilTable is returned if Verify receives a nil table.
	ErrNilTable = errors.New("quotient: table is nil")

	// ErrProductEscapes is returned when a representative product resolves
	// to no coset of the decomposition.
	ErrProductEscapes = errors.New("quotient: product lies in no coset")
)

// Table is the induced multiplication table over coset representatives:
// Reps in canonical coset order, and entries[i][j] = the representative of
// the coset containing Reps[i]·Reps[j].
type Table struct {
	reps    []group.ElementID
	entries [][]group.ElementID
	byRep   map[group.ElementID]int
}

// Reps returns the representatives in canonical coset order.
func (t *Table) Reps() []group.ElementID {
	out := make([]group.ElementID, len(t.reps))
	copy(out, t.reps)

	return out
}

// Product returns the table entry for repA·repB.
func (t *Table) Product(repA, repB group.ElementID) (group.ElementID, error) {
	i, okA := t.byRep[repA]
	j, okB := t.byRep[repB]
	if !okA || !okB {
		return group.NoElement, fmt.Errorf("quotient: %w: %d·%d", group.ErrUnknownElement, repA, repB)
	}

	return t.entries[i][j], nil
}

// Checks carries the three independent axiom verdicts for a built table.
// Witness fields hold the first failure found for their axiom and are
// zero-valued when the axiom holds.
type Checks struct {
	Closure  bool
	Identity bool
	Inverses bool

	// ClosureWitness: first member pair (a, b) whose product lands outside
	// the coset the table names for their cosets.
	ClosureWitness *[2]group.ElementID

	// IdentityWitness: first representative the identity coset fails to fix.
	IdentityWitness group.ElementID

	// InverseWitness: first representative with no two-sided partner.
	InverseWitness group.ElementID
}

// Valid reports whether all three axioms hold — i.e. the cosets genuinely
// form a group, which in turn proves the underlying subgroup normal.
func (c Checks) Valid() bool { return c.Closure && c.Identity && c.Inverses }

// BuildTable computes the induced representative×representative table:
// entry(a, b) = representative of the coset containing a·b.
// The ambient product resolves table-first inside group.Product, so
// non-faithful representations are handled there, not here.
func BuildTable(g *group.Group, dec *coset.Decomposition) (*Table, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	if dec == nil {
		return nil, ErrNilDecomposition
	}

	reps := dec.Representatives()
	t := &Table{
		reps:    reps,
		entries: make([][]group.ElementID, len(reps)),
		byRep:   make(map[group.ElementID]int, len(reps)),
	}
	for i, rep := range reps {
		t.byRep[rep] = i
	}

	for i, a := range reps {
		t.entries[i] = make([]group.ElementID, len(reps))
		for j, b := range reps {
			p, err := g.Product(a, b)
			if err != nil {
				return nil, err
			}
			rep := dec.Representative(p)
			if rep == group.NoElement {
				aName, _ := g.Name(a)
				bName, _ := g.Name(b)
				return nil, fmt.Errorf("%w: %s·%s", ErrProductEscapes, aName, bName)
			}
			t.entries[i][j] = rep
		}
	}

	return t, nil
}

// Verify independently re-checks the group axioms on a built table.
// All three checks always run; a failed axiom never masks the others.
func Verify(g *group.Group, dec *coset.Decomposition, t *Table) (Checks, error) {
	if g == nil {
		return Checks{}, ErrNilGroup
	}
	if dec == nil {
		return Checks{}, ErrNilDecomposition
	}
	if t == nil {
		return Checks{}, ErrNilTable
	}

	checks := Checks{
		Closure:         true,
		Identity:        true,
		Inverses:        true,
		IdentityWitness: group.NoElement,
		InverseWitness:  group.NoElement,
	}

	// Closure: the induced operation must be well-defined on whole cosets,
	// not merely on the chosen representatives — every member product of
	// coset i and coset j must land in the coset the table entry names.
	// Representative products alone can agree by accident for a non-normal
	// subgroup, so they are not enough.
closure:
	for i := 0; i < dec.Index(); i++ {
		ci, _ := dec.CosetAt(i)
		for j := 0; j < dec.Index(); j++ {
			cj, _ := dec.CosetAt(j)
			for _, a := range ci.Members {
				for _, b := range cj.Members {
					p, err := g.Product(a, b)
					if err != nil {
						return Checks{}, err
					}
					if dec.Representative(p) != t.entries[i][j] {
						checks.Closure = false
						checks.ClosureWitness = &[2]group.ElementID{a, b}
						break closure
					}
				}
			}
		}
	}

	// Identity: the coset containing the ambient identity must fix every
	// representative from both sides.
	idRep := dec.Representative(g.Identity())
	idIdx, known := t.byRep[idRep]
	if !known {
		checks.Identity = false
		checks.IdentityWitness = idRep
	} else {
		for i, a := range t.reps {
			if t.entries[idIdx][i] != a || t.entries[i][idIdx] != a {
				checks.Identity = false
				checks.IdentityWitness = a
				break
			}
		}
	}

	// Inverses: every representative needs a partner composing to the
	// identity representative from both sides.
	for i, a := range t.reps {
		found := false
		for j := range t.reps {
			if t.entries[i][j] == idRep && t.entries[j][i] == idRep {
				found = true
				break
			}
		}
		if !found {
			checks.Inverses = false
			checks.InverseWitness = a
			break
		}
	}

	return checks, nil
}
