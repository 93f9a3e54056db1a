// Package subgroup checks whether a candidate element set forms a subgroup,
// reporting failed axioms with concrete witnesses, and computes the closure
// generated by an element set.
//
// What
//
//   - Check(g, candidate) tests the three subgroup axioms in a fixed order:
//     identity membership, inverse membership, closure under composition.
//     Every failed axiom is tagged with a FailureReason, and the first
//     violation found per axiom becomes its witness.
//   - Generate(g, gens) returns ⟨gens⟩, the smallest subgroup containing
//     the generators, as ids in canonical group order.
//
// Why
//
//   - The witnesses drive UI hinting: "your set is missing the inverse of
//     s1" beats a bare "not a subgroup". Soundness matters too — Check is
//     property-tested against a brute-force reference over all subsets of
//     the fixture groups.
//
// Determinism
//
//	Candidate sets are processed in the caller's insertion order (after
//	dropping duplicates, keeping first occurrences); the closure scan walks
//	ordered pairs (a, b) in that same order. First-found witnesses are
//	therefore reproducible for identical inputs.
//
// Complexity (k = |candidate|)
//
//   - Check: O(k²) products
//   - Generate: O(|⟨gens⟩|²) products
//
// Errors
//
//   - ErrNilGroup       if the group pointer is nil.
//   - ErrEmptyCandidate if the candidate (or generator) set is empty.
//   - group.ErrUnknownElement (wrapped) for out-of-range ids.
//
// A candidate that merely fails the axioms is NOT an error: that is a
// structured negative Result, the expected pedagogical outcome.
package subgroup
