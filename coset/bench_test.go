package coset_test

import (
	"testing"

	"github.com/katalvlaran/grouplab/catalog"
	"github.com/katalvlaran/grouplab/coset"
	"github.com/katalvlaran/grouplab/group"
	"github.com/katalvlaran/grouplab/subgroup"
)

// BenchmarkDecompose partitions S5 (order 120) by the subgroup generated
// by a 5-cycle, yielding 24 cosets of 5 elements each.
func BenchmarkDecompose(b *testing.B) {
	g, err := catalog.Symmetric(5)
	if err != nil {
		b.Fatal(err)
	}
	gen, ok := g.Lookup("(0 1 2 3 4)")
	if !ok {
		b.Fatal("missing 5-cycle")
	}
	n, err := subgroup.Generate(g, []group.ElementID{gen})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coset.Decompose(g, n); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRepresentative measures the post-decomposition lookup path.
func BenchmarkRepresentative(b *testing.B) {
	g, err := catalog.Dihedral(6)
	if err != nil {
		b.Fatal(err)
	}
	n, err := subgroup.Generate(g, []group.ElementID{1})
	if err != nil {
		b.Fatal(err)
	}
	d, err := coset.Decompose(g, n)
	if err != nil {
		b.Fatal(err)
	}
	ids := g.IDs()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Representative(ids[i%len(ids)])
	}
}
