// Package subgroup implements the axiom checker and generated closure.
package subgroup

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/grouplab/group"
)

// Check tests whether candidate forms a subgroup of g.
//
// The three axioms are evaluated in order — identity, inverses, closure —
// and all of them are evaluated even after an earlier one fails, so the
// Result carries the complete reason set. Duplicate ids in candidate are
// dropped (first occurrence kept); iteration follows that insertion order,
// making every witness reproducible.
//
// A failing candidate is a structured Result, not an error; errors are
// reserved for nil groups, empty candidates, and unknown ids.
func Check(g *group.Group, candidate []group.ElementID) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGroup
	}
	members, err := dedupe(g, candidate)
	if err != nil {
		return Result{}, err
	}
	if len(members) == 0 {
		return Result{}, ErrEmptyCandidate
	}

	inSet := make(map[group.ElementID]bool, len(members))
	for _, id := range members {
		inSet[id] = true
	}

	res := Result{InverseWitness: group.NoElement}

	// Axiom 1: identity membership.
	if !inSet[g.Identity()] {
		res.Reasons = append(res.Reasons, MissingIdentity)
	}

	// Axiom 2: every member's inverse is a member. First miss is the witness.
	for _, id := range members {
		inv, invErr := g.InverseOf(id)
		if invErr != nil {
			return Result{}, invErr
		}
		if !inSet[inv] {
			res.Reasons = append(res.Reasons, MissingInverse)
			res.InverseWitness = id
			break
		}
	}

	// Axiom 3: closure over all ordered pairs. First escape is the witness.
pairs:
	for _, a := range members {
		for _, b := range members {
			p, prodErr := g.Product(a, b)
			if prodErr != nil {
				return Result{}, prodErr
			}
			if !inSet[p] {
				res.Reasons = append(res.Reasons, NotClosed)
				res.Closure = &ClosureWitness{A: a, B: b, Product: p}
				break pairs
			}
		}
	}

	res.IsSubgroup = len(res.Reasons) == 0

	return res, nil
}

// Generate returns ⟨gens⟩, the smallest subgroup of g containing every
// generator, as ids sorted into canonical group order. The identity is
// always included. Closing under products alone suffices: in a finite
// group each element's inverse is one of its own powers.
func Generate(g *group.Group, gens []group.ElementID) ([]group.ElementID, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	seed, err := dedupe(g, gens)
	if err != nil {
		return nil, err
	}
	if len(seed) == 0 {
		return nil, ErrEmptyCandidate
	}

	in := make(map[group.ElementID]bool, len(seed)+1)
	in[g.Identity()] = true
	for _, id := range seed {
		in[id] = true
	}

	work := make([]group.ElementID, 0, g.Order())
	for changed := true; changed; {
		changed = false
		work = work[:0]
		for id := range in {
			work = append(work, id)
		}
		sort.Slice(work, func(i, j int) bool { return work[i] < work[j] })
		for _, a := range work {
			for _, b := range work {
				p, prodErr := g.Product(a, b)
				if prodErr != nil {
					return nil, prodErr
				}
				if !in[p] {
					in[p] = true
					changed = true
				}
			}
		}
	}

	out := make([]group.ElementID, 0, len(in))
	for id := range in {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// dedupe validates ids and drops duplicates, preserving first-occurrence
// order.
func dedupe(g *group.Group, ids []group.ElementID) ([]group.ElementID, error) {
	seen := make(map[group.ElementID]bool, len(ids))
	out := make([]group.ElementID, 0, len(ids))
	for _, id := range ids {
		if !g.Valid(id) {
			return nil, fmt.Errorf("subgroup: %w: %d", group.ErrUnknownElement, id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}

	return out, nil
}
