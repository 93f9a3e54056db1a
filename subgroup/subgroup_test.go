package subgroup_test

import (
	"testing"

	"github.com/katalvlaran/grouplab/catalog"
	"github.com/katalvlaran/grouplab/group"
	"github.com/katalvlaran/grouplab/subgroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustID resolves a name or fails the test.
func mustID(t *testing.T, g *group.Group, name string) group.ElementID {
	t.Helper()
	id, ok := g.Lookup(name)
	require.True(t, ok, "element %q must exist", name)

	return id
}

// ids resolves several names at once.
func ids(t *testing.T, g *group.Group, names ...string) []group.ElementID {
	t.Helper()
	out := make([]group.ElementID, len(names))
	for i, n := range names {
		out[i] = mustID(t, g, n)
	}

	return out
}

// TestCheck_Z4Scenarios covers the canonical cyclic-group cases:
// {e, r2} is the order-2 subgroup; {r1, r2} lacks the identity.
func TestCheck_Z4Scenarios(t *testing.T) {
	g, err := catalog.Cyclic(4)
	require.NoError(t, err)

	res, err := subgroup.Check(g, ids(t, g, "e", "r2"))
	require.NoError(t, err)
	assert.True(t, res.IsSubgroup)
	assert.Empty(t, res.Reasons)

	res, err = subgroup.Check(g, ids(t, g, "r1", "r2"))
	require.NoError(t, err)
	assert.False(t, res.IsSubgroup)
	assert.True(t, res.Has(subgroup.MissingIdentity), "reasons must include missing_identity")
}

// TestCheck_WitnessesAreStable pins the first-found witnesses for a fixed
// insertion order in S3 ≅ D3.
func TestCheck_WitnessesAreStable(t *testing.T) {
	g, err := catalog.Dihedral(3)
	require.NoError(t, err)

	// Candidate {e, s1, r1}: r1's inverse r2 is missing, and the first
	// escaping ordered pair is (s1, r1) → s3.
	res, err := subgroup.Check(g, ids(t, g, "e", "s1", "r1"))
	require.NoError(t, err)
	assert.False(t, res.IsSubgroup)
	assert.True(t, res.Has(subgroup.MissingInverse))
	assert.True(t, res.Has(subgroup.NotClosed))
	assert.Equal(t, mustID(t, g, "r1"), res.InverseWitness)

	require.NotNil(t, res.Closure)
	assert.Equal(t, mustID(t, g, "s1"), res.Closure.A)
	assert.Equal(t, mustID(t, g, "r1"), res.Closure.B)
	assert.Equal(t, mustID(t, g, "s3"), res.Closure.Product)

	// Same set, same order, same witnesses.
	again, err := subgroup.Check(g, ids(t, g, "e", "s1", "r1"))
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

// TestCheck_AgainstBruteForce exhausts every subset of D3 and Z4 and
// compares Check's verdict with an independent brute-force reference.
func TestCheck_AgainstBruteForce(t *testing.T) {
	groups := map[string]func() (*group.Group, error){
		"D3": func() (*group.Group, error) { return catalog.Dihedral(3) },
		"Z4": func() (*group.Group, error) { return catalog.Cyclic(4) },
		"V4": catalog.Klein4,
	}

	for name, build := range groups {
		g, err := build()
		require.NoError(t, err, name)
		n := g.Order()

		for mask := 1; mask < 1<<n; mask++ {
			var candidate []group.ElementID
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					candidate = append(candidate, group.ElementID(i))
				}
			}

			res, checkErr := subgroup.Check(g, candidate)
			require.NoError(t, checkErr, "%s mask %b", name, mask)
			assert.Equal(t, refIsSubgroup(t, g, candidate), res.IsSubgroup,
				"%s: verdict mismatch for subset %v", name, candidate)
		}
	}
}

// TestCheck_DuplicatesIgnored verifies duplicate candidate ids do not
// affect the verdict.
func TestCheck_DuplicatesIgnored(t *testing.T) {
	g, err := catalog.Cyclic(4)
	require.NoError(t, err)

	res, err := subgroup.Check(g, ids(t, g, "e", "r2", "r2", "e"))
	require.NoError(t, err)
	assert.True(t, res.IsSubgroup)
}

// TestCheck_Errors covers engine-fatal misuse.
func TestCheck_Errors(t *testing.T) {
	g, err := catalog.Cyclic(4)
	require.NoError(t, err)

	_, err = subgroup.Check(nil, []group.ElementID{0})
	assert.ErrorIs(t, err, subgroup.ErrNilGroup)

	_, err = subgroup.Check(g, nil)
	assert.ErrorIs(t, err, subgroup.ErrEmptyCandidate)

	_, err = subgroup.Check(g, []group.ElementID{42})
	assert.ErrorIs(t, err, group.ErrUnknownElement)
}

// TestGenerate covers cyclic closures and full-group generation in D3.
func TestGenerate(t *testing.T) {
	g, err := catalog.Dihedral(3)
	require.NoError(t, err)

	got, err := subgroup.Generate(g, ids(t, g, "r1"))
	require.NoError(t, err)
	assert.Equal(t, ids(t, g, "e", "r1", "r2"), got, "⟨r1⟩ is the rotation subgroup")

	got, err = subgroup.Generate(g, ids(t, g, "s1"))
	require.NoError(t, err)
	assert.Equal(t, ids(t, g, "e", "s1"), got, "⟨s1⟩ is an order-2 subgroup")

	got, err = subgroup.Generate(g, ids(t, g, "r1", "s1"))
	require.NoError(t, err)
	assert.Len(t, got, g.Order(), "a rotation and a reflection generate all of D3")

	// Every generated set is itself a subgroup.
	res, err := subgroup.Check(g, got)
	require.NoError(t, err)
	assert.True(t, res.IsSubgroup)
}

// refIsSubgroup is the brute-force reference: identity ∈ S, closed under
// inverse and product.
func refIsSubgroup(t *testing.T, g *group.Group, set []group.ElementID) bool {
	t.Helper()
	in := make(map[group.ElementID]bool, len(set))
	for _, id := range set {
		in[id] = true
	}
	if !in[g.Identity()] {
		return false
	}
	for a := range in {
		inv, err := g.InverseOf(a)
		require.NoError(t, err)
		if !in[inv] {
			return false
		}
		for b := range in {
			p, err := g.Product(a, b)
			require.NoError(t, err)
			if !in[p] {
				return false
			}
		}
	}

	return true
}
