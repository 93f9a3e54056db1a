// Package quotient builds the multiplication table induced on the cosets
// of a subgroup and independently verifies that the result is a group.
//
// What
//
//   - BuildTable(g, dec) computes, for every ordered pair of coset
//     representatives (a, b), the product a·b in the ambient group and
//     records the representative of the coset containing it.
//   - Verify(g, dec, table) re-checks the three group axioms on the built
//     table — closure, two-sided identity, inverses — and reports each
//     sub-result individually in Checks, with a first-found witness per
//     failed axiom, so a broken quotient is diagnosable. Closure is checked
//     over whole cosets (well-definedness of the induced operation), not
//     just over representatives: representative products can agree by
//     coincidence even when the subgroup is not normal.
//
// Why
//
//   - The induced operation is well-defined exactly when the subgroup is
//     normal; for a non-normal subgroup the representative-based table
//     exists but fails verification. A passing Verify is therefore also an
//     indirect normality proof, cross-checkable against the direct
//     conjugation path in package normality — the two must always agree,
//     and tests hold them to that.
//
// Determinism
//
//	Representatives keep the decomposition's canonical order; the table is
//	filled row-major. Identical inputs yield identical tables and witnesses.
//
// Complexity (n = |G|, q = number of cosets)
//
//   - BuildTable: O(q²) ambient products + O(1) coset lookups.
//   - Verify: O(n²) for the well-definedness scan, O(q²) for the rest.
//
// Errors
//
//   - ErrNilGroup, ErrNilDecomposition, ErrNilTable — engine misuse.
//   - ErrProductEscapes — a product fell outside every coset (stale or
//     foreign Decomposition).
//
// A table failing verification is NOT an error: Checks is the structured,
// per-axiom negative result.
package quotient
