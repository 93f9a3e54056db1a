// Package group defines Group, the immutable finite group a puzzle session
// is built over: an ordered, duplicate-free list of named elements, each
// bound to a permutation, optionally accompanied by a raw Cayley
// (operation) table.
//
// What
//
//   - ElementID is a stable integer index into the group's canonical
//     element order; all higher layers speak ElementID, never raw names.
//   - New validates the whole structure once: distinct names, uniform
//     permutation degree, well-formed table, closure, exactly one identity,
//     and a two-sided inverse for every element. A Group that exists is a
//     group.
//   - Product(a, b) resolves the binary operation. When a Cayley table was
//     supplied it is the ground truth; permutation composition is the
//     fallback for table-less groups. This ordering makes non-faithful
//     representations (distinct elements acting identically on the chosen
//     point set, e.g. the center of Q8 under its classroom action) safe:
//     such groups simply must carry a table, which New enforces.
//   - Identity, InverseOf, Name, Lookup, Perm, Elements are read-only
//     queries over the canonical order.
//   - CheckConsistency cross-checks the supplied table against permutation
//     composition and reports every disagreement as a Discrepancy — the
//     regression hook for authored content (see level.Audit).
//
// Why
//
//   - Content errors in authored puzzles are overwhelmingly table/perm
//     disagreements and false closure; validating at the single
//     construction point turns them into loud, early failures instead of
//     subtle mid-puzzle misbehavior.
//
// Determinism
//
//	Elements keep their construction order forever; every iteration in this
//	package and above walks that order, so witnesses and coset layouts are
//	reproducible run to run.
//
// Complexity (n = |G|, d = permutation degree)
//
//   - New: O(n²·d) (closure scan dominates)
//   - Product / InverseOf / Identity: O(1) after construction (O(d) for
//     table-less Product)
//   - CheckConsistency: O(n²·d)
//
// Errors
//
//   - ErrEmptyGroup, ErrDuplicateElement, ErrDegreeMismatch — malformed input.
//   - ErrMalformedTable — table not n×n or entries out of range.
//   - ErrNotFaithful — duplicate permutations without a table to disambiguate.
//   - ErrNotClosed, ErrNoIdentity, ErrNoInverse — group axioms violated.
//   - ErrUnknownElement — an ElementID outside [0, n) passed to a query.
package group
