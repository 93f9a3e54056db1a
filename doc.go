// Package grouplab is your in-memory playground for finite group theory —
// permutations, subgroups, cosets, quotients and normality, built for
// interactive teaching tools and content validation.
//
// 🚀 What is grouplab?
//
//	A deterministic, dependency-light engine that brings together:
//		• Permutations: composition, inversion, orders, cycle notation
//		• Groups: named elements bound to permutations, optional Cayley tables
//		• Subgroup checking: axiom-by-axiom diagnostics with concrete witnesses
//		• Coset decomposition: left cosets in canonical order
//		• Quotient groups: induced multiplication tables, independently verified
//		• Normality: single conjugation probes and exhaustive classification
//		• Inverse pairing: symmetric element/inverse matching
//		• Staged construction: step-by-step coset assembly and type quizzes
//		• Content auditing: re-derive and cross-check authored level data
//
// ✨ Why choose grouplab?
//
//   - Pedagogy-first – wrong answers are structured results, never faults
//   - Rock-solid guarantees – every table and quotient is verified, not assumed
//   - Deterministic – canonical element order makes every witness reproducible
//   - Pure Go – no cgo, no hidden deps in the engine itself
//
// Under the hood, everything is organized leaf-first:
//
//	perm/      — Perm, the bijection value type
//	group/     — Group, ElementID, Cayley tables, product resolution
//	subgroup/  — axiom checking & generated closures
//	coset/     — left-coset decomposition
//	quotient/  — quotient table construction & verification
//	normality/ — conjugation probes & exhaustive classification
//	pairing/   — element/inverse pairing ledger
//	tracker/   — staged coset assembly & quotient-type quizzes
//	catalog/   — ready-made groups (Zn, Dn, Sn, V4, Q8, A4) & quiz pools
//	level/     — level-definition decoding & content audits
//	session/   — one engine instance per puzzle, with snapshots
//
// Quick taste:
//
//	g, _ := catalog.Dihedral(3)           // e, r1, r2, s1, s2, s3
//	res, _ := subgroup.Check(g, ids(g, "e", "r1", "r2"))
//	fmt.Println(res.IsSubgroup)           // true
//
// Dive into each package's doc.go for tutorials, invariants, and complexity
// notes, and into cmd/grouplab-audit for the content-validation CLI.
//
//	go get github.com/katalvlaran/grouplab
package grouplab
