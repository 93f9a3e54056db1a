// Package group implements construction and queries of the immutable Group.
package group

import (
	"fmt"

	"github.com/katalvlaran/grouplab/perm"
)

// Group is an immutable finite group: named elements in canonical order,
// each bound to a permutation, with precomputed identity and inverses and
// an optional authoritative Cayley table. Construct via New.
type Group struct {
	names    []string
	perms    []perm.Perm
	byName   map[string]ElementID
	byPerm   map[string]ElementID // perm.Key() → id; only populated when faithful
	table    [][]ElementID        // nil when no table was supplied
	identity ElementID
	inverses []ElementID
}

// New builds and fully validates a Group from named elements in the given
// order. Names index into perms one-to-one. The optional WithTable option
// supplies a raw Cayley table, which becomes the authoritative product
// source. Every axiom is checked here; a non-nil *Group satisfies all
// group invariants.
func New(names []string, perms []perm.Perm, opts ...Option) (*Group, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(names)
	if n == 0 {
		return nil, ErrEmptyGroup
	}
	if len(perms) != n {
		return nil, fmt.Errorf("%w: %d names vs %d permutations", ErrDegreeMismatch, n, len(perms))
	}

	g := &Group{
		names:    make([]string, n),
		perms:    make([]perm.Perm, n),
		byName:   make(map[string]ElementID, n),
		identity: NoElement,
	}
	copy(g.names, names)
	copy(g.perms, perms)

	degree := perms[0].Degree()
	for i, name := range g.names {
		if _, dup := g.byName[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateElement, name)
		}
		g.byName[name] = ElementID(i)
		if g.perms[i].Degree() != degree {
			return nil, fmt.Errorf("%w: element %q has degree %d, want %d",
				ErrDegreeMismatch, name, g.perms[i].Degree(), degree)
		}
	}

	if cfg.table != nil {
		t, err := copyTable(cfg.table, n)
		if err != nil {
			return nil, err
		}
		g.table = t
	}

	// Permutation lookup is only trustworthy when the representation is
	// faithful; without a table, faithfulness is mandatory.
	byPerm := make(map[string]ElementID, n)
	faithful := true
	for i, p := range g.perms {
		k := p.Key()
		if _, dup := byPerm[k]; dup {
			faithful = false
			break
		}
		byPerm[k] = ElementID(i)
	}
	switch {
	case faithful:
		g.byPerm = byPerm
	case g.table == nil:
		return nil, ErrNotFaithful
	}

	if err := g.checkAxioms(); err != nil {
		return nil, err
	}

	return g, nil
}

// copyTable validates shape and range of a caller-supplied table and
// returns a private copy.
func copyTable(table [][]ElementID, n int) ([][]ElementID, error) {
	if len(table) != n {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrMalformedTable, len(table), n)
	}
	out := make([][]ElementID, n)
	for i, row := range table {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrMalformedTable, i, len(row), n)
		}
		out[i] = make([]ElementID, n)
		for j, v := range row {
			if v < 0 || int(v) >= n {
				return nil, fmt.Errorf("%w: entry [%d][%d] = %d out of range", ErrMalformedTable, i, j, v)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// checkAxioms verifies closure, unique identity, and two-sided inverses,
// then precomputes identity and inverse lookups.
func (g *Group) checkAxioms() error {
	n := len(g.names)

	// Closure: every product must resolve to an element.
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if _, err := g.product(ElementID(a), ElementID(b)); err != nil {
				return fmt.Errorf("%w: %q·%q has no element image",
					ErrNotClosed, g.names[a], g.names[b])
			}
		}
	}

	// Identity: exactly one two-sided identity.
	for e := 0; e < n; e++ {
		if g.isIdentityElement(ElementID(e)) {
			if g.identity != NoElement {
				return fmt.Errorf("%w: both %q and %q act as identity",
					ErrNoIdentity, g.names[g.identity], g.names[e])
			}
			g.identity = ElementID(e)
		}
	}
	if g.identity == NoElement {
		return ErrNoIdentity
	}

	// Inverses: every element needs a two-sided partner.
	g.inverses = make([]ElementID, n)
	for a := 0; a < n; a++ {
		g.inverses[a] = NoElement
		for b := 0; b < n; b++ {
			ab, _ := g.product(ElementID(a), ElementID(b))
			ba, _ := g.product(ElementID(b), ElementID(a))
			if ab == g.identity && ba == g.identity {
				g.inverses[a] = ElementID(b)
				break
			}
		}
		if g.inverses[a] == NoElement {
			return fmt.Errorf("%w: %q", ErrNoInverse, g.names[a])
		}
	}

	return nil
}

// isIdentityElement reports whether e is a two-sided identity under the
// group's product source.
func (g *Group) isIdentityElement(e ElementID) bool {
	for x := 0; x < len(g.names); x++ {
		ex, err1 := g.product(e, ElementID(x))
		xe, err2 := g.product(ElementID(x), e)
		if err1 != nil || err2 != nil || ex != ElementID(x) || xe != ElementID(x) {
			return false
		}
	}

	return true
}

// product is the unchecked-core product: table first, permutation
// composition as fallback. Assumes a and b are in range.
func (g *Group) product(a, b ElementID) (ElementID, error) {
	if g.table != nil {
		return g.table[a][b], nil
	}
	id, ok := g.byPerm[g.perms[a].Compose(g.perms[b]).Key()]
	if !ok {
		return NoElement, fmt.Errorf("%w: %q·%q", ErrNotClosed, g.names[a], g.names[b])
	}

	return id, nil
}

// Order returns |G|, the number of elements.
func (g *Group) Order() int { return len(g.names) }

// Degree returns the degree of the bound permutations.
func (g *Group) Degree() int { return g.perms[0].Degree() }

// Identity returns the id of the unique identity element.
func (g *Group) Identity() ElementID { return g.identity }

// HasTable reports whether a raw Cayley table was supplied.
func (g *Group) HasTable() bool { return g.table != nil }

// Table returns a deep copy of the supplied Cayley table, or nil when the
// group is permutation-only.
func (g *Group) Table() [][]ElementID {
	if g.table == nil {
		return nil
	}
	out := make([][]ElementID, len(g.table))
	for i, row := range g.table {
		out[i] = make([]ElementID, len(row))
		copy(out[i], row)
	}

	return out
}

// Valid reports whether id names an element of g.
func (g *Group) Valid(id ElementID) bool { return id >= 0 && int(id) < len(g.names) }

// Name returns the name bound to id.
func (g *Group) Name(id ElementID) (string, error) {
	if !g.Valid(id) {
		return "", fmt.Errorf("%w: %d", ErrUnknownElement, id)
	}

	return g.names[id], nil
}

// Lookup resolves a name to its ElementID; ok is false when absent.
func (g *Group) Lookup(name string) (ElementID, bool) {
	id, ok := g.byName[name]
	if !ok {
		return NoElement, false
	}

	return id, true
}

// Perm returns the permutation bound to id.
func (g *Group) Perm(id ElementID) (perm.Perm, error) {
	if !g.Valid(id) {
		return perm.Perm{}, fmt.Errorf("%w: %d", ErrUnknownElement, id)
	}

	return g.perms[id], nil
}

// Product returns a·b, resolved through the operation table when one was
// supplied, else through permutation composition.
func (g *Group) Product(a, b ElementID) (ElementID, error) {
	if !g.Valid(a) {
		return NoElement, fmt.Errorf("%w: %d", ErrUnknownElement, a)
	}
	if !g.Valid(b) {
		return NoElement, fmt.Errorf("%w: %d", ErrUnknownElement, b)
	}

	return g.product(a, b)
}

// InverseOf returns the unique two-sided inverse of id.
func (g *Group) InverseOf(id ElementID) (ElementID, error) {
	if !g.Valid(id) {
		return NoElement, fmt.Errorf("%w: %d", ErrUnknownElement, id)
	}

	return g.inverses[id], nil
}

// Conjugate returns a·b·a⁻¹.
func (g *Group) Conjugate(a, b ElementID) (ElementID, error) {
	ab, err := g.Product(a, b)
	if err != nil {
		return NoElement, err
	}
	inv, err := g.InverseOf(a)
	if err != nil {
		return NoElement, err
	}

	return g.product(ab, inv)
}

// Elements returns the elements in canonical order as a fresh slice.
func (g *Group) Elements() []Element {
	out := make([]Element, len(g.names))
	for i := range g.names {
		out[i] = Element{ID: ElementID(i), Name: g.names[i], Perm: g.perms[i]}
	}

	return out
}

// IDs returns all ElementIDs in canonical order.
func (g *Group) IDs() []ElementID {
	out := make([]ElementID, len(g.names))
	for i := range out {
		out[i] = ElementID(i)
	}

	return out
}
