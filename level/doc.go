// Package level decodes external level definitions — a finite group as
// named elements bound to permutations, an optional raw operation table,
// and the subgroups of interest with author-supplied metadata — and audits
// that metadata against what the engine can independently re-derive.
//
// What
//
//   - Definition is the wire shape, decodable from JSON or YAML
//     (DecodeJSON / DecodeYAML); the authoring format itself is plain data
//     owned by the content pipeline, not by this engine.
//   - Build resolves names to ids and constructs the validated
//     group.Group plus the declared subgroups.
//   - Audit re-derives every author claim and reports each disagreement as
//     a Discrepancy: subgroup axioms, declared order, the normal/non-normal
//     claim (via the exhaustive classifier), the declared quotient type
//     (via the verified quotient table's invariants), the agreement of the
//     direct and quotient-side normality proofs, and table-vs-permutation
//     consistency.
//
// Why
//
//   - Authored content drifts: audits of the source material for this
//     engine found dozens of mislabeled subgroups and inconsistent tables.
//     Audit is the mandatory regression tool over content — session
//     construction runs it at load time and fails loudly, and
//     cmd/grouplab-audit runs it standalone over level files.
//
// Determinism
//
//	Discrepancies are reported in definition order: per subgroup, in claim
//	order (axioms, order, normality, quotient type), then table
//	consistency cells in row-major order.
//
// Errors
//
//   - ErrDecode — malformed JSON/YAML payloads (wrapped decoder error).
//   - ErrNoElements — a definition without elements.
//   - ErrUnknownName — a subgroup or table cell referencing an undefined
//     element name.
//   - Construction failures propagate group/perm sentinel errors.
//
// A Discrepancy is NOT an error: content audits are expected to find
// defects, and found defects are their structured, reportable output.
package level
