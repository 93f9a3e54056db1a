// Package catalog builds well-known finite groups deterministically —
// ready-made fixtures for tests, tutorials, and authored-content tooling —
// plus the default quotient-type pool for identification quizzes.
//
// What
//
//   - Cyclic(n)      — Zn as rotations of an n-gon: e, r1, …, r{n-1}.
//   - Dihedral(n)    — Dn of order 2n: rotations plus reflections s1…sn.
//   - Klein4()       — V4 as double transpositions: e, a, b, c.
//   - Symmetric(n)   — Sn (2 ≤ n ≤ 5), elements named by cycle notation.
//   - Alternating4() — A4, the even permutations of S4.
//   - Quaternion()   — Q8 with its Cayley table: the standard classroom
//     action of Q8 on {±1, ±i, ±j, ±k} collapses each element with its
//     negative, so the permutation representation alone is not faithful
//     and the table is authoritative (the group package enforces this).
//   - DefaultTypePool() — quotient-type labels keyed by group order, each
//     order listing structurally distinct isomorphism types so quiz
//     distractors are plausible rather than arbitrary.
//
// Why
//
//   - Every constructor returns the same group for the same argument, with
//     the same element order and names, so tests and witnesses built on
//     catalog groups are reproducible.
//
// Determinism
//
//	Element orders are fixed: identity first, then rotations by exponent,
//	then reflections by axis (dihedral); Sn/A4 enumerate mappings in
//	lexicographic order, which places the identity first.
//
// Errors
//
//   - ErrBadOrder for out-of-range constructor arguments (n < 1 for Cyclic,
//     n < 3 for Dihedral, n outside [2,5] for Symmetric).
package catalog
