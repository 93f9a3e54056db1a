// Package session owns one engine instance per active puzzle: the group,
// the declared subgroups, and all mutable progress — classification
// records, coset assembly, pairing — behind a pure query surface, with
// flat snapshot save/restore.
//
// What
//
//   - New(def) builds the group from a level definition and runs the full
//     content audit first: every author claim is re-derived exhaustively,
//     and any discrepancy aborts construction with a ContentError. A
//     session that exists is built on provably consistent content.
//   - Per declared subgroup, the session owns a normality classifier, a
//     memoized coset decomposition, a memoized verified quotient table,
//     and — for normal subgroups — a staged-construction tracker whose
//     quiz label is derived from the quotient table itself, not from the
//     author metadata.
//   - Memoized results are computed fully before being cached; a re-entrant
//     caller can never observe a partial decomposition or half-built table.
//   - Snapshot captures all mutable progress as a flat, JSON-serializable
//     structure; Restore(def, snap) rebuilds an equivalent session from a
//     fresh definition (round-trip law, tested). Restored pairing records
//     are replayed through the validator, and restored assembly state is
//     re-validated against the decomposition — a snapshot cannot smuggle
//     in algebraically false progress.
//
// Why
//
//   - The presentation layer should hold no algebra. Every interaction —
//     a subgroup guess, a conjugation probe, a coset placement, a quiz
//     answer — is one session query returning a plain structured result,
//     and the session is an explicit instance, not a process-wide
//     singleton: hosts run one per puzzle and drop it on reset.
//
// Errors
//
//   - ErrNilDefinition, ErrSubgroupIndex, ErrNotNormal — engine misuse.
//   - ContentError (unwraps to ErrContentMismatch) — authored content
//     failed its load-time audit; carries the full discrepancy list.
//   - ErrBadSnapshot (from tracker) and wrapped sentinels on Restore of
//     inconsistent snapshots.
//
// Concurrency: a Session is single-threaded by design, like every other
// engine component; hosts needing parallel sessions create one each.
package session
