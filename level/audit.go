package level

import (
	"fmt"

	"github.com/katalvlaran/grouplab/coset"
	"github.com/katalvlaran/grouplab/group"
	"github.com/katalvlaran/grouplab/normality"
	"github.com/katalvlaran/grouplab/quotient"
	"github.com/katalvlaran/grouplab/subgroup"
)

// DiscrepancyKind tags one class of authored-content defect.
type DiscrepancyKind int

const (
	// KindNotSubgroup: a declared subgroup violates the subgroup axioms.
	KindNotSubgroup DiscrepancyKind = iota

	// KindOrderMismatch: the declared order differs from the element count.
	KindOrderMismatch

	// KindNormality: the normal/non-normal claim contradicts the
	// exhaustive classifier.
	KindNormality

	// KindQuotientType: the declared quotient type differs from the one
	// derived from the verified quotient table.
	KindQuotientType

	// KindProofDivergence: the direct (conjugation) and indirect (quotient
	// verification) normality proofs disagree — an engine invariant
	// violation that must never survive silently.
	KindProofDivergence

	// KindTableInconsistent: the raw operation table disagrees with
	// permutation composition.
	KindTableInconsistent
)

// String names the kind for reports.
func (k DiscrepancyKind) String() string {
	switch k {
	case KindNotSubgroup:
		return "not_a_subgroup"
	case KindOrderMismatch:
		return "order_mismatch"
	case KindNormality:
		return "normality_claim"
	case KindQuotientType:
		return "quotient_type_claim"
	case KindProofDivergence:
		return "proof_divergence"
	case KindTableInconsistent:
		return "table_inconsistent"
	default:
		return "unknown"
	}
}

// Discrepancy is one author-claim-versus-engine disagreement. Subgroup is
// the index into Definition.Subgroups, or -1 for group-level findings.
type Discrepancy struct {
	Kind     DiscrepancyKind
	Subgroup int
	Detail   string
}

// Audit builds the definition and re-derives every author claim,
// returning all disagreements. An empty slice and nil error mean the
// content is internally consistent; a non-nil error means the definition
// is too broken to audit (unbuildable group, unknown names).
func Audit(def *Definition) ([]Discrepancy, error) {
	g, declared, err := def.Build()
	if err != nil {
		return nil, err
	}

	var out []Discrepancy

	for i, dec := range declared {
		out = append(out, auditSubgroup(g, i, dec)...)
	}

	// Table vs permutation composition, row-major.
	for _, d := range g.CheckConsistency() {
		out = append(out, Discrepancy{
			Kind:     KindTableInconsistent,
			Subgroup: -1,
			Detail:   d.String(g),
		})
	}

	return out, nil
}

// auditSubgroup re-derives the claims of one declared subgroup.
func auditSubgroup(g *group.Group, idx int, dec Declared) []Discrepancy {
	var out []Discrepancy

	res, err := subgroup.Check(g, dec.IDs)
	if err != nil || !res.IsSubgroup {
		detail := "declared subgroup fails axiom check"
		if err != nil {
			detail = fmt.Sprintf("declared subgroup unusable: %v", err)
		} else if len(res.Reasons) > 0 {
			detail = fmt.Sprintf("declared subgroup fails: %v", res.Reasons)
		}
		out = append(out, Discrepancy{Kind: KindNotSubgroup, Subgroup: idx, Detail: detail})

		// Remaining claims presuppose a genuine subgroup.
		return out
	}

	if dec.Def.Order != 0 && dec.Def.Order != len(dedupeCount(dec.IDs)) {
		out = append(out, Discrepancy{
			Kind:     KindOrderMismatch,
			Subgroup: idx,
			Detail:   fmt.Sprintf("declared order %d, actual %d", dec.Def.Order, len(dedupeCount(dec.IDs))),
		})
	}

	cls, err := normality.NewClassifier(g, dec.IDs)
	if err != nil {
		out = append(out, Discrepancy{Kind: KindNotSubgroup, Subgroup: idx, Detail: err.Error()})
		return out
	}
	isNormal, err := cls.VerifyNormal()
	if err != nil {
		out = append(out, Discrepancy{Kind: KindNormality, Subgroup: idx, Detail: err.Error()})
		return out
	}

	if dec.Def.Normal != nil && *dec.Def.Normal != isNormal {
		detail := fmt.Sprintf("declared normal=%t, exhaustive verification says %t", *dec.Def.Normal, isNormal)
		if w := cls.Witness(); w != nil {
			gName, _ := g.Name(w.G)
			hName, _ := g.Name(w.H)
			cName, _ := g.Name(w.Conjugate)
			detail += fmt.Sprintf(" (witness: %s·%s·%s⁻¹ = %s)", gName, hName, gName, cName)
		}
		out = append(out, Discrepancy{Kind: KindNormality, Subgroup: idx, Detail: detail})
	}

	// Indirect path: a valid quotient must exist iff the subgroup is
	// normal. Divergence is an engine defect surfaced loudly, never
	// swallowed.
	decomp, err := coset.Decompose(g, dec.IDs)
	if err != nil {
		out = append(out, Discrepancy{Kind: KindProofDivergence, Subgroup: idx, Detail: err.Error()})
		return out
	}
	table, err := quotient.BuildTable(g, decomp)
	if err != nil {
		out = append(out, Discrepancy{Kind: KindProofDivergence, Subgroup: idx, Detail: err.Error()})
		return out
	}
	checks, err := quotient.Verify(g, decomp, table)
	if err != nil {
		out = append(out, Discrepancy{Kind: KindProofDivergence, Subgroup: idx, Detail: err.Error()})
		return out
	}
	if checks.Valid() != isNormal {
		out = append(out, Discrepancy{
			Kind:     KindProofDivergence,
			Subgroup: idx,
			Detail: fmt.Sprintf("quotient verification valid=%t but exhaustive normality=%t",
				checks.Valid(), isNormal),
		})
	}

	if dec.Def.QuotientType != "" && isNormal && checks.Valid() {
		derived := table.Identify()
		if derived != dec.Def.QuotientType {
			out = append(out, Discrepancy{
				Kind:     KindQuotientType,
				Subgroup: idx,
				Detail:   fmt.Sprintf("declared quotient type %q, derived %q", dec.Def.QuotientType, derived),
			})
		}
	}

	return out
}

// dedupeCount returns ids with duplicates removed, for order comparison.
func dedupeCount(ids []group.ElementID) []group.ElementID {
	seen := make(map[group.ElementID]bool, len(ids))
	out := make([]group.ElementID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	return out
}
