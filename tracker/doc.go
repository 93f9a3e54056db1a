// Package tracker drives the staged construction puzzle for one subgroup:
// incremental coset assembly followed by a quotient-type identification
// quiz.
//
// What
//
//   - Tracker is a per-subgroup state machine:
//     Pending → Building → CosetsDone → TypeIdentified (terminal).
//   - During Building, elements are placed one at a time into the active
//     slot. A placement is accepted when the element is unassigned and
//     lies in the same left coset (per the decomposition) as the first
//     element already in that slot; an empty slot accepts any unassigned
//     element. Rejections distinguish RejectDuplicate (already placed
//     somewhere) from RejectWrongCoset. A full slot advances the active
//     slot; filling the last one transitions to CosetsDone.
//   - The quiz offers the correct quotient-type label plus 2–3 distractors
//     drawn from a TypePool keyed by quotient order — same order,
//     different isomorphism type, so wrong answers are structurally
//     plausible — shuffled deterministically from the tracker's seed.
//     An exact-match answer reaches TypeIdentified.
//
// Why
//
//   - The tracker is the engine half of the "build the quotient yourself"
//     interaction; every acceptance rule reduces to a Representative
//     comparison, so the pedagogy stays anchored to the actual algebra.
//
// Determinism
//
//	Same decomposition, pool, and seed ⇒ same quiz choices in the same
//	order; same placement sequence ⇒ same state. Snapshots restore both.
//
// Errors
//
//   - ErrNilDecomposition, ErrMissingLabel — construction misuse.
//   - ErrOptionViolation — invalid option (bad distractor count).
//   - ErrWrongPhase — an operation issued outside its phase.
//   - ErrBadSnapshot — Restore given state inconsistent with the
//     decomposition.
//   - group.ErrUnknownElement (wrapped) for out-of-range ids.
//
// Wrong placements and wrong quiz answers are NOT errors: they are the
// structured negative Placement / QuizResult values.
package tracker
