package group

import "fmt"

// Discrepancy records one cell where the supplied operation table and
// permutation composition disagree: the permutation bound to
// table[A][B] is not Perm(A)∘Perm(B).
type Discrepancy struct {
	A, B  ElementID // operands, canonical order
	Table ElementID // what the table claims A·B is
}

// String renders the discrepancy with element names for audit output.
func (d Discrepancy) String(g *Group) string {
	return fmt.Sprintf("table says %s·%s = %s, but permutation composition disagrees",
		g.names[d.A], g.names[d.B], g.names[d.Table])
}

// CheckConsistency cross-checks the supplied Cayley table against
// permutation composition, cell by cell, and returns every disagreement.
// A nil result means the two product sources agree everywhere.
// Groups without a table trivially pass (there is nothing to compare);
// New already guaranteed composition closure for them.
//
// This is the engine-side half of authored-content auditing: a non-empty
// result means the level's visual (permutation) layer and its abstract
// (table) layer describe different groups.
func (g *Group) CheckConsistency() []Discrepancy {
	if g.table == nil {
		return nil
	}
	var out []Discrepancy
	n := len(g.names)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			composed := g.perms[a].Compose(g.perms[b])
			if !g.perms[g.table[a][b]].Equal(composed) {
				out = append(out, Discrepancy{
					A:     ElementID(a),
					B:     ElementID(b),
					Table: g.table[a][b],
				})
			}
		}
	}

	return out
}
