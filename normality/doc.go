// Package normality classifies subgroups as normal or non-normal through
// conjugation, in two deliberately separate modes.
//
// What
//
//   - Classifier wraps one (G, H) pair and accumulates classification state.
//   - Test(gID, hID) — the interactive probe: computes g·h·g⁻¹ and reports
//     whether it stayed inside H. A single escape is a complete existential
//     proof of non-normality and is recorded as the permanent witness; any
//     number of stay-ins proves nothing and never changes the status.
//   - VerifyNormal() — the exhaustive pass over every g ∈ G, h ∈ H. This is
//     the only path entitled to set StatusNormal, and the ground truth for
//     content audits.
//   - Status / Witness expose the current Record: {unclassified, normal,
//     non-normal} plus, when non-normal, the triple (g, h, g·h·g⁻¹).
//
// Why
//
//   - The probe powers the "try to crack it" puzzle interaction; the
//     exhaustive pass powers load-time validation of authored levels. The
//     asymmetry between them — counterexamples are proofs, confirmations
//     are mere evidence — is the pedagogical point, so the API refuses to
//     blur it.
//
// Determinism
//
//	VerifyNormal scans g in canonical group order and h in H's given order;
//	the first escaping pair is always the same for identical inputs.
//
// Complexity (n = |G|, m = |H|)
//
//   - Test: O(1) products.
//   - VerifyNormal: O(n·m) products, short-circuiting on the first escape.
//
// Errors
//
//   - ErrNilGroup, ErrEmptySubgroup — engine misuse at construction.
//   - ErrNotInSubgroup — Test called with an h outside H.
//   - group.ErrUnknownElement (wrapped) for out-of-range ids.
//
// A conjugate escaping H is NOT an error: it is the structured negative
// Probe result (and a successful classification).
package normality
