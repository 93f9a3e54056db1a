package level_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/grouplab/level"
	"github.com/katalvlaran/grouplab/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// d3Definition is the triangle-symmetry level used across these tests:
// three rotations and three reflections, with two declared subgroups.
func d3Definition() *level.Definition {
	return &level.Definition{
		Name: "triangle",
		Elements: []level.ElementDef{
			{Name: "e", Perm: []int{0, 1, 2}},
			{Name: "r1", Perm: []int{1, 2, 0}},
			{Name: "r2", Perm: []int{2, 0, 1}},
			{Name: "s1", Perm: []int{0, 2, 1}},
			{Name: "s2", Perm: []int{1, 0, 2}},
			{Name: "s3", Perm: []int{2, 1, 0}},
		},
		Subgroups: []level.SubgroupDef{
			{Elements: []string{"e", "r1", "r2"}, Order: 3, Normal: boolPtr(true), QuotientType: "Z2"},
			{Elements: []string{"e", "s1"}, Order: 2, Normal: boolPtr(false)},
		},
	}
}

func boolPtr(b bool) *bool { return &b }

// TestDecodeJSON: round-trips a definition and rejects malformed or
// unexpected payloads.
func TestDecodeJSON(t *testing.T) {
	payload := `{
		"name": "squares",
		"elements": [
			{"name": "e", "perm": [0, 1]},
			{"name": "x", "perm": [1, 0]}
		],
		"subgroups": [{"elements": ["e"], "order": 1}]
	}`
	def, err := level.DecodeJSON(strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, "squares", def.Name)
	require.Len(t, def.Elements, 2)
	assert.Equal(t, []int{1, 0}, def.Elements[1].Perm)
	require.Len(t, def.Subgroups, 1)
	assert.Equal(t, 1, def.Subgroups[0].Order)

	_, err = level.DecodeJSON(strings.NewReader(`{"name": 42}`))
	assert.ErrorIs(t, err, level.ErrDecode)
	_, err = level.DecodeJSON(strings.NewReader(`{"surprise": true}`))
	assert.ErrorIs(t, err, level.ErrDecode, "unknown fields are authoring mistakes")
	_, err = level.DecodeJSON(strings.NewReader(`not json`))
	assert.ErrorIs(t, err, level.ErrDecode)
}

// TestDecodeYAML mirrors the JSON coverage for the YAML front door.
func TestDecodeYAML(t *testing.T) {
	payload := `
name: squares
elements:
  - name: e
    perm: [0, 1]
  - name: x
    perm: [1, 0]
table:
  - [e, x]
  - [x, e]
`
	def, err := level.DecodeYAML(strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, "squares", def.Name)
	require.Len(t, def.Table, 2)
	assert.Equal(t, []string{"x", "e"}, def.Table[1])

	_, err = level.DecodeYAML(strings.NewReader("surprise: true"))
	assert.ErrorIs(t, err, level.ErrDecode)
}

// TestBuild: a well-formed definition yields a validated group with
// resolved subgroup ids.
func TestBuild(t *testing.T) {
	g, declared, err := d3Definition().Build()
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())
	require.Len(t, declared, 2)
	assert.Len(t, declared[0].IDs, 3)
	assert.Equal(t, "Z2", declared[0].Def.QuotientType)

	r1, ok := g.Lookup("r1")
	require.True(t, ok)
	assert.Equal(t, r1, declared[0].IDs[1])
}

// TestBuild_Errors: every malformed-definition class is rejected with its
// sentinel.
func TestBuild_Errors(t *testing.T) {
	empty := &level.Definition{Name: "empty"}
	_, _, err := empty.Build()
	assert.ErrorIs(t, err, level.ErrNoElements)

	badPerm := d3Definition()
	badPerm.Elements[1].Perm = []int{1, 1, 0}
	_, _, err = badPerm.Build()
	assert.ErrorIs(t, err, perm.ErrNotBijection)

	badSub := d3Definition()
	badSub.Subgroups[0].Elements = []string{"e", "ghost"}
	_, _, err = badSub.Build()
	assert.ErrorIs(t, err, level.ErrUnknownName)

	badTable := d3Definition()
	badTable.Table = [][]string{{"ghost"}}
	_, _, err = badTable.Build()
	assert.ErrorIs(t, err, level.ErrUnknownName)
}

// TestAudit_Clean: accurate author claims produce no findings.
func TestAudit_Clean(t *testing.T) {
	findings, err := level.Audit(d3Definition())
	require.NoError(t, err)
	assert.Empty(t, findings)
}

// TestAudit_Findings: each inflated or wrong claim is caught and tagged
// with its kind and subgroup index.
func TestAudit_Findings(t *testing.T) {
	kinds := func(findings []level.Discrepancy) []level.DiscrepancyKind {
		out := make([]level.DiscrepancyKind, len(findings))
		for i, f := range findings {
			out[i] = f.Kind
		}

		return out
	}

	t.Run("normality claim", func(t *testing.T) {
		def := d3Definition()
		def.Subgroups[1].Normal = boolPtr(true) // reflections are not normal
		findings, err := level.Audit(def)
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, level.KindNormality, findings[0].Kind)
		assert.Equal(t, 1, findings[0].Subgroup)
		assert.Contains(t, findings[0].Detail, "witness", "counterexample is reported")
	})

	t.Run("quotient type claim", func(t *testing.T) {
		def := d3Definition()
		def.Subgroups[0].QuotientType = "Z3"
		findings, err := level.Audit(def)
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, level.KindQuotientType, findings[0].Kind)
		assert.Contains(t, findings[0].Detail, `"Z2"`)
	})

	t.Run("order claim", func(t *testing.T) {
		def := d3Definition()
		def.Subgroups[0].Order = 4
		findings, err := level.Audit(def)
		require.NoError(t, err)
		assert.Contains(t, kinds(findings), level.KindOrderMismatch)
	})

	t.Run("not a subgroup", func(t *testing.T) {
		def := d3Definition()
		def.Subgroups[0].Elements = []string{"e", "r1"} // r1·r1 = r2 missing
		findings, err := level.Audit(def)
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, level.KindNotSubgroup, findings[0].Kind)
		assert.Equal(t, 0, findings[0].Subgroup)
	})
}

// TestAudit_TableInconsistent: an explicit table that forms a perfectly
// good group on ids but contradicts the element permutations is flagged
// at group level.
func TestAudit_TableInconsistent(t *testing.T) {
	def := &level.Definition{
		Name: "forged",
		Elements: []level.ElementDef{
			{Name: "e", Perm: []int{0, 1, 2, 3}},
			{Name: "a", Perm: []int{1, 0, 3, 2}},
			{Name: "b", Perm: []int{2, 3, 0, 1}},
			{Name: "c", Perm: []int{3, 2, 1, 0}},
		},
		// A cyclic table over Klein-four permutations: a·a is claimed to
		// be b, but the permutations compose to e.
		Table: [][]string{
			{"e", "a", "b", "c"},
			{"a", "b", "c", "e"},
			{"b", "c", "e", "a"},
			{"c", "e", "a", "b"},
		},
	}
	findings, err := level.Audit(def)
	require.NoError(t, err)
	require.NotEmpty(t, findings)
	for _, f := range findings {
		assert.Equal(t, level.KindTableInconsistent, f.Kind)
		assert.Equal(t, -1, f.Subgroup)
	}
}

// TestAudit_BuildFailure: an unbuildable definition is an error, not a
// finding.
func TestAudit_BuildFailure(t *testing.T) {
	def := d3Definition()
	def.Elements = def.Elements[:2] // {e, r1} is not closed
	_, err := level.Audit(def)
	assert.Error(t, err)
}
