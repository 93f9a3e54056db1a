// Package pairing validates proposed element/inverse pairs and keeps the
// session's pairing ledger.
//
// What
//
//   - Ledger tracks, per element, its confirmed inverse and whether the
//     element is self-inverse.
//   - TryPair(key, candidate) succeeds iff key·candidate is the group
//     identity. On success the pair is recorded, and — because inverses
//     are symmetric in any group — the reverse pair is recorded
//     automatically when key ≠ candidate. key == candidate flags the
//     element self-inverse.
//   - The identity element is its own inverse by definition and is
//     pre-resolved at ledger construction, before any player action.
//   - Paired, SelfInverse, Complete, Pairs answer progress queries.
//
// Why
//
//   - "Find each element's partner" is the opening puzzle interaction;
//     the ledger also feeds snapshots, so restoring a session reproduces
//     pairing progress exactly.
//
// Determinism
//
//	Pairs reports records in canonical element order regardless of the
//	order in which they were confirmed.
//
// Errors
//
//   - ErrNilGroup — engine misuse at construction.
//   - group.ErrUnknownElement (wrapped) for out-of-range ids.
//
// A failed pairing attempt (product ≠ identity) is NOT an error: it is the
// structured negative PairResult.
package pairing
