// Package perm provides Perm, an immutable finite permutation value:
// a bijection over the index set [0, n), with composition, inversion,
// identity and equality tests, element order, and cycle notation.
//
// What
//
//   - Perm wraps an ordered sequence of n distinct integers in [0, n).
//   - New validates bijectivity once; every Perm ever observed is well-formed.
//   - Compose(a, b) applies b first, then a: result[i] = a[b[i]].
//   - Inverse returns p' with p'[p[i]] = i for all i.
//   - IsIdentity, Equal, Order, Degree, Image are cheap read-only queries.
//   - String renders disjoint cycle notation, e.g. "(0 1 2)(3 4)".
//
// Why
//
//   - Group elements in grouplab are bound to permutations; every higher
//     layer (subgroup checks, cosets, quotients, normality) reduces to
//     composing and comparing Perm values.
//   - Validating bijectivity at the single construction point lets all
//     algebraic operations stay total: no error paths, no partial values.
//
// Determinism
//
//	Perm values are immutable after construction (inputs are copied in,
//	outputs are copied out), so equal inputs always produce equal results
//	and witnesses built from Perm values are reproducible.
//
// Complexity (n = degree)
//
//   - New / Compose / Inverse / Equal / IsIdentity: O(n)
//   - Order: O(n) after cycle scan
//   - String: O(n)
//
// Errors
//
//   - ErrNotBijection  if New is given duplicates, gaps, or out-of-range images.
//   - ErrEmptyMapping  if New is given a zero-length mapping.
//   - Compose and Inverse have no error conditions for same-degree inputs;
//     composing permutations of different degrees is a programming error
//     and panics (degrees are unified at group construction).
package perm
