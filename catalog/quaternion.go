package catalog

import (
	"github.com/katalvlaran/grouplab/group"
	"github.com/katalvlaran/grouplab/perm"
)

// quaternion axes, in element order 1, -1, i, -i, j, -j, k, -k.
const (
	axisUnit = iota
	axisI
	axisJ
	axisK
)

// Quaternion returns Q8 = {±1, ±i, ±j, ±k} with its Cayley table.
//
// The bound permutations are the classroom action on the four axis symbols
// {1, i, j, k}: each element and its negative act identically, so the
// representation has the center {±1} in its kernel and the table is the
// authoritative product source. This is the canonical fixture for the
// table-first resolution path.
func Quaternion() (*group.Group, error) {
	names := []string{"1", "-1", "i", "-i", "j", "-j", "k", "-k"}

	axisPerms := []perm.Perm{
		perm.Identity(4),         // ±1 fix every axis
		perm.MustNew(1, 0, 3, 2), // ±i: 1↔i, j↔k
		perm.MustNew(2, 3, 0, 1), // ±j: 1↔j, i↔k
		perm.MustNew(3, 2, 1, 0), // ±k: 1↔k, i↔j
	}
	perms := make([]perm.Perm, 8)
	for id := 0; id < 8; id++ {
		perms[id] = axisPerms[id/2]
	}

	table := make([][]group.ElementID, 8)
	for a := 0; a < 8; a++ {
		table[a] = make([]group.ElementID, 8)
		for b := 0; b < 8; b++ {
			table[a][b] = quatMul(a, b)
		}
	}

	return group.New(names, perms, group.WithTable(table))
}

// quatMul multiplies two Q8 elements given as indices into the canonical
// order (axis = index/2, negative when index is odd).
func quatMul(a, b int) group.ElementID {
	axisA, negA := a/2, a%2 == 1
	axisB, negB := b/2, b%2 == 1

	axis, neg := axisMul(axisA, axisB)
	if negA {
		neg = !neg
	}
	if negB {
		neg = !neg
	}

	id := axis * 2
	if neg {
		id++
	}

	return group.ElementID(id)
}

// axisMul multiplies two unsigned axis symbols by the quaternion relations
// i² = j² = k² = -1, ij = k, jk = i, ki = j (and anti-commutativity).
func axisMul(a, b int) (axis int, neg bool) {
	switch {
	case a == axisUnit:
		return b, false
	case b == axisUnit:
		return a, false
	case a == b:
		return axisUnit, true
	}
	// Distinct imaginary axes: result is the third axis; sign follows the
	// cyclic order i→j→k.
	axis = axisI + axisJ + axisK - a - b
	cyclic := (a == axisI && b == axisJ) || (a == axisJ && b == axisK) || (a == axisK && b == axisI)

	return axis, !cyclic
}
