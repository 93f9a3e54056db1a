package quotient

import (
	"fmt"
	"sort"
)

// Identify derives the isomorphism-type label of a verified quotient table
// from structural invariants alone: group order, abelianness, and the
// multiset of element orders. Labels match catalog.DefaultTypePool.
//
// Every group of order ≤ 12 and every cyclic group is identified
// precisely; anything larger and non-cyclic falls back to "order-N group".
// Call only after Verify reports Valid — the invariants are meaningless on
// a non-group table.
func (t *Table) Identify() string {
	n := len(t.reps)
	if n == 0 {
		return "order-0 group"
	}

	idIdx := t.identityIndex()
	orders := make([]int, n)
	maxOrder := 1
	for i := range t.reps {
		orders[i] = t.elementOrder(i, idIdx)
		if orders[i] > maxOrder {
			maxOrder = orders[i]
		}
	}
	sort.Ints(orders)
	involutions := 0
	for _, o := range orders {
		if o == 2 {
			involutions++
		}
	}
	abelian := t.isAbelian()

	if maxOrder == n {
		return fmt.Sprintf("Z%d", n)
	}

	switch n {
	case 4:
		return "Z2×Z2" // non-cyclic order 4
	case 6:
		return "S3" // non-cyclic order 6
	case 8:
		switch {
		case abelian && maxOrder == 4:
			return "Z4×Z2"
		case abelian:
			return "Z2×Z2×Z2"
		case involutions == 1:
			return "Q8"
		default:
			return "D4"
		}
	case 9:
		return "Z3×Z3"
	case 10:
		return "D5" // non-cyclic order 10
	case 12:
		switch {
		case abelian:
			return "Z6×Z2"
		case involutions == 7:
			return "D6"
		case involutions == 1:
			return "Dic3"
		default:
			return "A4"
		}
	default:
		return fmt.Sprintf("order-%d group", n)
	}
}

// identityIndex locates the row acting as identity. Assumes a verified
// table, which has exactly one.
func (t *Table) identityIndex() int {
	for i := range t.reps {
		if t.entries[i][i] == t.reps[i] {
			isID := true
			for j := range t.reps {
				if t.entries[i][j] != t.reps[j] {
					isID = false
					break
				}
			}
			if isID {
				return i
			}
		}
	}

	return 0
}

// elementOrder returns the least k ≥ 1 with reps[i]^k = identity, walking
// the table.
func (t *Table) elementOrder(i, idIdx int) int {
	x := i
	for k := 1; k <= len(t.reps); k++ {
		if x == idIdx {
			return k
		}
		x = t.byRep[t.entries[x][i]]
	}
	// unreachable on a verified table
	return len(t.reps)
}

// isAbelian reports entry-wise symmetry of the table.
func (t *Table) isAbelian() bool {
	for i := range t.reps {
		for j := i + 1; j < len(t.reps); j++ {
			if t.entries[i][j] != t.entries[j][i] {
				return false
			}
		}
	}

	return true
}
