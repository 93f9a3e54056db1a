package session_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/grouplab/group"
	"github.com/katalvlaran/grouplab/level"
	"github.com/katalvlaran/grouplab/normality"
	"github.com/katalvlaran/grouplab/session"
	"github.com/katalvlaran/grouplab/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// d3Definition is the triangle-symmetry level: element ids follow the
// listing order (e=0, r1=1, r2=2, s1=3, s2=4, s3=5). Subgroup 0 is the
// normal rotation subgroup, subgroup 1 the non-normal {e, s1}.
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

// newSession builds a clean session or fails the test.
func newSession(t *testing.T, opts ...session.Option) *session.Session {
	t.Helper()
	s, err := session.New(d3Definition(), opts...)
	require.NoError(t, err)

	return s
}

// TestNew: a consistent definition loads; the audit ground truth is
// queryable while the player record starts blank.
func TestNew(t *testing.T) {
	s := newSession(t)
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, 6, s.Group().Order())
	assert.Equal(t, 2, s.SubgroupCount())

	ids, err := s.Subgroup(0)
	require.NoError(t, err)
	assert.Equal(t, []group.ElementID{0, 1, 2}, ids)

	normal, err := s.IsNormal(0)
	require.NoError(t, err)
	assert.True(t, normal)
	normal, err = s.IsNormal(1)
	require.NoError(t, err)
	assert.False(t, normal)

	// Engine knowledge never leaks into the player-facing record.
	status, witness, err := s.Classification(1)
	require.NoError(t, err)
	assert.Equal(t, normality.StatusUnclassified, status)
	assert.Nil(t, witness)

	// Two sessions never share an id.
	assert.NotEqual(t, s.ID(), newSession(t).ID())

	_, err = s.Subgroup(2)
	assert.ErrorIs(t, err, session.ErrSubgroupIndex)
	_, err = s.IsNormal(-1)
	assert.ErrorIs(t, err, session.ErrSubgroupIndex)
	_, err = session.New(nil)
	assert.ErrorIs(t, err, session.ErrNilDefinition)
}

// TestNew_ContentError: a definition with a false claim is refused at
// load time with the full discrepancy list attached.
func TestNew_ContentError(t *testing.T) {
	def := d3Definition()
	def.Subgroups[1].Normal = boolPtr(true)

	_, err := session.New(def)
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrContentMismatch)

	var ce *session.ContentError
	require.ErrorAs(t, err, &ce)
	require.Len(t, ce.Discrepancies, 1)
	assert.Equal(t, level.KindNormality, ce.Discrepancies[0].Kind)
	assert.Equal(t, 1, ce.Discrepancies[0].Subgroup)
}

// TestSubgroupQueries: free-form candidate checking and generation pass
// through to the algebra.
func TestSubgroupQueries(t *testing.T) {
	s := newSession(t)

	res, err := s.CheckSubgroup([]group.ElementID{0, 1, 2})
	require.NoError(t, err)
	assert.True(t, res.IsSubgroup)
	res, err = s.CheckSubgroup([]group.ElementID{0, 1})
	require.NoError(t, err)
	assert.False(t, res.IsSubgroup)

	gen, err := s.Generate([]group.ElementID{1})
	require.NoError(t, err)
	assert.Equal(t, []group.ElementID{0, 1, 2}, gen)
}

// TestCosetsAndQuotient: derivation queries are deterministic and the
// quotient doubles as the indirect normality proof.
func TestCosetsAndQuotient(t *testing.T) {
	s := newSession(t)

	cosets, err := s.Cosets(0)
	require.NoError(t, err)
	require.Len(t, cosets, 2)
	assert.Equal(t, group.ElementID(0), cosets[0].Rep)
	assert.Equal(t, group.ElementID(3), cosets[1].Rep, "s1 is the first element outside the rotations")

	rep, err := s.Representative(0, group.ElementID(5))
	require.NoError(t, err)
	assert.Equal(t, group.ElementID(3), rep)

	table, checks, err := s.Quotient(0)
	require.NoError(t, err)
	assert.True(t, checks.Valid())
	assert.Equal(t, "Z2", table.Identify())

	// Memoized: the same table is handed back, not rebuilt.
	again, _, err := s.Quotient(0)
	require.NoError(t, err)
	assert.Same(t, table, again)

	// The non-normal subgroup still decomposes, but its quotient fails
	// verification.
	_, checks, err = s.Quotient(1)
	require.NoError(t, err)
	assert.False(t, checks.Valid())
}

// TestConjugationFlow: probes update the player record exactly as the
// classifier defines.
func TestConjugationFlow(t *testing.T) {
	s := newSession(t)

	// r1·s1·r1⁻¹ = s3 escapes {e, s1}.
	probe, err := s.TestConjugation(1, 1, 3)
	require.NoError(t, err)
	assert.False(t, probe.StayedIn)
	assert.Equal(t, group.ElementID(5), probe.Result)

	status, witness, err := s.Classification(1)
	require.NoError(t, err)
	assert.Equal(t, normality.StatusNonNormal, status)
	require.NotNil(t, witness)
	assert.Equal(t, normality.Witness{G: 1, H: 3, Conjugate: 5}, *witness)

	ok, err := s.VerifyNormal(0)
	require.NoError(t, err)
	assert.True(t, ok)
	status, _, err = s.Classification(0)
	require.NoError(t, err)
	assert.Equal(t, normality.StatusNormal, status)
}

// TestPairingFlow: the ledger completes once every element has a
// confirmed inverse.
func TestPairingFlow(t *testing.T) {
	s := newSession(t)
	assert.False(t, s.PairingComplete())

	res, err := s.TryPair(1, 1)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, group.ElementID(2), res.Result, "r1·r1 = r2 shown on failure")

	res, err = s.TryPair(1, 2)
	require.NoError(t, err)
	assert.True(t, res.Success)
	inv, ok := s.Paired(2)
	assert.True(t, ok)
	assert.Equal(t, group.ElementID(1), inv)

	for _, id := range []group.ElementID{3, 4, 5} {
		res, err = s.TryPair(id, id)
		require.NoError(t, err)
		require.True(t, res.Success)
		assert.True(t, res.SelfInverse)
	}
	assert.True(t, s.PairingComplete())
}

// TestAssemblyFlow: staged construction exists only for normal
// subgroups and runs the tracker lifecycle end to end.
func TestAssemblyFlow(t *testing.T) {
	s := newSession(t)

	err := s.BeginAssembly(1)
	assert.ErrorIs(t, err, session.ErrNotNormal)
	_, err = s.QuizChoices(1)
	assert.ErrorIs(t, err, session.ErrNotNormal)

	require.NoError(t, s.BeginAssembly(0))
	phase, err := s.AssemblyPhase(0)
	require.NoError(t, err)
	assert.Equal(t, tracker.PhaseBuilding, phase)

	// Rotations into slot 0, reflections into slot 1.
	for _, id := range []group.ElementID{0, 1, 2, 3, 4, 5} {
		pl, placeErr := s.Place(0, id)
		require.NoError(t, placeErr)
		assert.True(t, pl.Accepted)
	}
	phase, err = s.AssemblyPhase(0)
	require.NoError(t, err)
	assert.Equal(t, tracker.PhaseCosetsDone, phase)

	choices, err := s.QuizChoices(0)
	require.NoError(t, err)
	assert.Contains(t, choices, "Z2")

	quiz, err := s.AnswerQuiz(0, "S3")
	require.NoError(t, err)
	assert.False(t, quiz.Correct)
	quiz, err = s.AnswerQuiz(0, "Z2")
	require.NoError(t, err)
	assert.True(t, quiz.Correct)
	phase, err = s.AssemblyPhase(0)
	require.NoError(t, err)
	assert.Equal(t, tracker.PhaseTypeIdentified, phase)
}

// TestSnapshotRoundTrip: progress survives serialize/restore bit-exact,
// including the quiz ordering, and play continues where it stopped.
func TestSnapshotRoundTrip(t *testing.T) {
	s := newSession(t, session.WithQuizSeed(7))

	// Make progress of every kind.
	res, err := s.TryPair(1, 2)
	require.NoError(t, err)
	require.True(t, res.Success)
	_, err = s.TestConjugation(1, 1, 3)
	require.NoError(t, err)
	_, err = s.VerifyNormal(0)
	require.NoError(t, err)
	require.NoError(t, s.BeginAssembly(0))
	for _, id := range []group.ElementID{0, 1} {
		pl, placeErr := s.Place(0, id)
		require.NoError(t, placeErr)
		require.True(t, pl.Accepted)
	}

	snap := s.Snapshot()
	assert.Equal(t, s.ID(), snap.SessionID)
	assert.Equal(t, "triangle", snap.Level)
	assert.Equal(t, int64(7), snap.QuizSeed)

	// The wire form round-trips.
	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	var decoded session.Snapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))

	restored, err := session.Restore(d3Definition(), &decoded)
	require.NoError(t, err)
	assert.Equal(t, s.ID(), restored.ID())
	assert.Empty(t, cmp.Diff(snap, restored.Snapshot()))

	// The classification record came back with its witness.
	status, witness, err := restored.Classification(1)
	require.NoError(t, err)
	assert.Equal(t, normality.StatusNonNormal, status)
	require.NotNil(t, witness)
	assert.Equal(t, group.ElementID(5), witness.Conjugate)

	// The quiz shuffle is reproducible from the captured seed.
	origChoices, origErr := quizChoicesAfterFill(s)
	require.NoError(t, origErr)
	restChoices, restErr := quizChoicesAfterFill(restored)
	require.NoError(t, restErr)
	assert.Equal(t, origChoices, restChoices)
}

// quizChoicesAfterFill finishes assembly of subgroup 0 and returns the
// quiz choices.
func quizChoicesAfterFill(s *session.Session) ([]string, error) {
	for _, id := range []group.ElementID{2, 3, 4, 5} {
		if _, err := s.Place(0, id); err != nil {
			return nil, err
		}
	}

	return s.QuizChoices(0)
}

// TestRestore_Rejects: a snapshot can never smuggle in false progress.
func TestRestore_Rejects(t *testing.T) {
	base := func() *session.Snapshot { return newSession(t).Snapshot() }

	t.Run("nil snapshot", func(t *testing.T) {
		_, err := session.Restore(d3Definition(), nil)
		assert.ErrorIs(t, err, session.ErrBadSnapshot)
	})

	t.Run("subgroup count", func(t *testing.T) {
		snap := base()
		snap.Subgroups = snap.Subgroups[:1]
		_, err := session.Restore(d3Definition(), snap)
		assert.ErrorIs(t, err, session.ErrBadSnapshot)
	})

	t.Run("false normal claim", func(t *testing.T) {
		snap := base()
		snap.Subgroups[1].Status = "normal" // {e, s1} is not
		_, err := session.Restore(d3Definition(), snap)
		assert.ErrorIs(t, err, session.ErrBadSnapshot)
	})

	t.Run("forged witness", func(t *testing.T) {
		snap := base()
		snap.Subgroups[1].Status = "non_normal"
		snap.Subgroups[1].Witness = []int{0, 3, 3} // e·s1·e⁻¹ stays in
		_, err := session.Restore(d3Definition(), snap)
		assert.ErrorIs(t, err, session.ErrBadSnapshot)
	})

	t.Run("missing witness", func(t *testing.T) {
		snap := base()
		snap.Subgroups[1].Status = "non_normal"
		_, err := session.Restore(d3Definition(), snap)
		assert.ErrorIs(t, err, session.ErrBadSnapshot)
	})

	t.Run("forged pair", func(t *testing.T) {
		snap := base()
		snap.Pairs = append(snap.Pairs, session.PairState{Key: 1, Inverse: 1})
		_, err := session.Restore(d3Definition(), snap)
		assert.ErrorIs(t, err, session.ErrBadSnapshot)
	})

	t.Run("unknown status", func(t *testing.T) {
		snap := base()
		snap.Subgroups[0].Status = "half-normal"
		_, err := session.Restore(d3Definition(), snap)
		assert.ErrorIs(t, err, session.ErrBadSnapshot)
	})

	t.Run("incoherent slots", func(t *testing.T) {
		snap := base()
		snap.Subgroups[0].Phase = "building"
		snap.Subgroups[0].Slots = [][]int{{0, 3}, {}} // e and s1 share no coset
		_, err := session.Restore(d3Definition(), snap)
		assert.ErrorIs(t, err, tracker.ErrBadSnapshot)
	})
}
