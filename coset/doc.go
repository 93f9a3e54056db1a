// Package coset partitions a finite group into the left cosets of a
// subgroup and answers representative lookups over the result.
//
// What
//
//   - Decompose(g, N) walks the group's canonical element order; each
//     unassigned g becomes the representative of the fresh coset
//     gN = { g·h | h ∈ N }, until every element is assigned.
//   - Decomposition answers Representative(id) (sentinel group.NoElement
//     when unknown/unassigned), CosetIndexOf(id), CosetAt(i), Cosets(),
//     and Index() — the number of cosets |G|/|N|.
//
// Why
//
//   - Coset structure is the substrate of quotient groups and of the
//     staged-assembly puzzles: accepting or rejecting a placement is
//     exactly a Representative comparison.
//
// Contract
//
//	Decompose trusts N to be a genuine subgroup; callers validate first
//	(subgroup.Check) — the session layer does exactly that before memoizing.
//	Overlaps that happen to surface while assembling cosets of a non-subgroup
//	are still reported as ErrNotDisjoint rather than silently producing a
//	broken partition, but absence of that error is no subgroup proof.
//
// Determinism
//
//	Representatives are the first unassigned elements in canonical order;
//	members follow N's given order. Identical inputs yield identical
//	decompositions, coset by coset.
//
// Complexity (n = |G|, m = |N|)
//
//   - Decompose: O(n·m) products; each element is assigned exactly once.
//   - Representative / CosetIndexOf: O(1).
//
// Errors
//
//   - ErrNilGroup, ErrEmptySubgroup — engine misuse.
//   - ErrNotDisjoint — cosets collided; N cannot be a subgroup.
//   - ErrCosetIndex — CosetAt index out of range.
//   - group.ErrUnknownElement (wrapped) for out-of-range subgroup ids.
package coset
