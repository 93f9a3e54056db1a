// Package session implements the per-puzzle engine instance.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/grouplab/catalog"
	"github.com/katalvlaran/grouplab/coset"
	"github.com/katalvlaran/grouplab/group"
	"github.com/katalvlaran/grouplab/level"
	"github.com/katalvlaran/grouplab/normality"
	"github.com/katalvlaran/grouplab/pairing"
	"github.com/katalvlaran/grouplab/quotient"
	"github.com/katalvlaran/grouplab/subgroup"
	"github.com/katalvlaran/grouplab/tracker"
)

// Session is one engine instance for one active puzzle. All state is owned
// exclusively by this instance; nothing is shared across sessions.
type Session struct {
	id        string
	levelName string
	g         *group.Group
	declared  []level.Declared
	opts      options

	// ground truth per subgroup, established by the load-time audit
	isNormal []bool

	// player-facing progress
	classifiers []*normality.Classifier
	ledger      *pairing.Ledger

	// memoized derivations; each entry is written only once, fully built
	decs     []*coset.Decomposition
	tables   []*quotient.Table
	checks   []*quotient.Checks
	trackers []*tracker.Tracker
}

// New audits the definition exhaustively, then builds a session over it.
// Any author-claim discrepancy aborts with a *ContentError: inconsistent
// content must fail at load time, not mid-puzzle.
func New(def *level.Definition, opts ...Option) (*Session, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}

	disc, err := level.Audit(def)
	if err != nil {
		return nil, err
	}
	if len(disc) > 0 {
		return nil, &ContentError{Discrepancies: disc}
	}

	g, declared, err := def.Build()
	if err != nil {
		return nil, err
	}

	o := options{pool: catalog.DefaultTypePool(), seed: 1}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		id:          uuid.NewString(),
		levelName:   def.Name,
		g:           g,
		declared:    declared,
		opts:        o,
		isNormal:    make([]bool, len(declared)),
		classifiers: make([]*normality.Classifier, len(declared)),
		decs:        make([]*coset.Decomposition, len(declared)),
		tables:      make([]*quotient.Table, len(declared)),
		checks:      make([]*quotient.Checks, len(declared)),
		trackers:    make([]*tracker.Tracker, len(declared)),
	}

	for i, dec := range declared {
		// Player-facing classifier: starts unclassified regardless of the
		// ground truth the audit just established.
		cls, clsErr := normality.NewClassifier(g, dec.IDs)
		if clsErr != nil {
			return nil, clsErr
		}
		s.classifiers[i] = cls

		truth, truthErr := normality.NewClassifier(g, dec.IDs)
		if truthErr != nil {
			return nil, truthErr
		}
		s.isNormal[i], err = truth.VerifyNormal()
		if err != nil {
			return nil, err
		}
	}

	s.ledger, err = pairing.NewLedger(g)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the session's correlation id (a UUID; hosts log it).
func (s *Session) ID() string { return s.id }

// Group returns the immutable puzzle group.
func (s *Session) Group() *group.Group { return s.g }

// SubgroupCount returns the number of declared subgroups of interest.
func (s *Session) SubgroupCount() int { return len(s.declared) }

// Subgroup returns the element ids of declared subgroup i.
func (s *Session) Subgroup(i int) ([]group.ElementID, error) {
	if err := s.checkIndex(i); err != nil {
		return nil, err
	}
	out := make([]group.ElementID, len(s.declared[i].IDs))
	copy(out, s.declared[i].IDs)

	return out, nil
}

// IsNormal reports the audited ground truth for declared subgroup i.
// This is engine knowledge; Classification reports the player's progress.
func (s *Session) IsNormal(i int) (bool, error) {
	if err := s.checkIndex(i); err != nil {
		return false, err
	}

	return s.isNormal[i], nil
}

// CheckSubgroup validates an arbitrary candidate set against the subgroup
// axioms — the free-form guessing interaction.
func (s *Session) CheckSubgroup(candidate []group.ElementID) (subgroup.Result, error) {
	return subgroup.Check(s.g, candidate)
}

// Generate returns the subgroup generated by the given elements.
func (s *Session) Generate(gens []group.ElementID) ([]group.ElementID, error) {
	return subgroup.Generate(s.g, gens)
}

// Cosets returns the memoized left-coset decomposition of subgroup i.
func (s *Session) Cosets(i int) ([]coset.Coset, error) {
	d, err := s.decomposition(i)
	if err != nil {
		return nil, err
	}

	return d.Cosets(), nil
}

// Representative returns the coset representative of id under subgroup
// i's decomposition, group.NoElement when unassigned.
func (s *Session) Representative(i int, id group.ElementID) (group.ElementID, error) {
	d, err := s.decomposition(i)
	if err != nil {
		return group.NoElement, err
	}

	return d.Representative(id), nil
}

// Quotient returns the memoized quotient table of subgroup i together
// with its verification checks. Valid checks double as an indirect
// normality proof.
func (s *Session) Quotient(i int) (*quotient.Table, quotient.Checks, error) {
	if err := s.checkIndex(i); err != nil {
		return nil, quotient.Checks{}, err
	}
	if s.tables[i] != nil {
		return s.tables[i], *s.checks[i], nil
	}

	d, err := s.decomposition(i)
	if err != nil {
		return nil, quotient.Checks{}, err
	}
	table, err := quotient.BuildTable(s.g, d)
	if err != nil {
		return nil, quotient.Checks{}, err
	}
	checks, err := quotient.Verify(s.g, d, table)
	if err != nil {
		return nil, quotient.Checks{}, err
	}

	// Publish only the fully built pair.
	s.tables[i] = table
	s.checks[i] = &checks

	return table, checks, nil
}

// TestConjugation runs one interactive probe g·h·g⁻¹ against subgroup i.
// An escape permanently classifies the subgroup non-normal.
func (s *Session) TestConjugation(i int, gID, hID group.ElementID) (normality.Probe, error) {
	if err := s.checkIndex(i); err != nil {
		return normality.Probe{}, err
	}

	return s.classifiers[i].Test(gID, hID)
}

// VerifyNormal runs the exhaustive classification for subgroup i,
// updating the player-facing record.
func (s *Session) VerifyNormal(i int) (bool, error) {
	if err := s.checkIndex(i); err != nil {
		return false, err
	}

	return s.classifiers[i].VerifyNormal()
}

// Classification returns the player-facing record for subgroup i: the
// status tag and, when non-normal, the permanent witness.
func (s *Session) Classification(i int) (normality.Status, *normality.Witness, error) {
	if err := s.checkIndex(i); err != nil {
		return normality.StatusUnclassified, nil, err
	}

	return s.classifiers[i].Status(), s.classifiers[i].Witness(), nil
}

// TryPair proposes candidate as the inverse of key.
func (s *Session) TryPair(key, candidate group.ElementID) (pairing.PairResult, error) {
	return s.ledger.TryPair(key, candidate)
}

// Paired returns the confirmed inverse of id, if any.
func (s *Session) Paired(id group.ElementID) (group.ElementID, bool) {
	return s.ledger.Paired(id)
}

// PairingComplete reports whether every element has a confirmed inverse.
func (s *Session) PairingComplete() bool { return s.ledger.Complete() }

// BeginAssembly starts staged coset construction for normal subgroup i.
func (s *Session) BeginAssembly(i int) error {
	t, err := s.tracker(i)
	if err != nil {
		return err
	}

	return t.Begin()
}

// Place offers an element for the active coset slot of subgroup i.
func (s *Session) Place(i int, id group.ElementID) (tracker.Placement, error) {
	t, err := s.tracker(i)
	if err != nil {
		return tracker.Placement{}, err
	}

	return t.Place(id)
}

// AssemblyPhase returns the staged-construction phase for subgroup i.
// Non-normal subgroups have no assembly and report an error.
func (s *Session) AssemblyPhase(i int) (tracker.Phase, error) {
	t, err := s.tracker(i)
	if err != nil {
		return tracker.PhasePending, err
	}

	return t.Phase(), nil
}

// QuizChoices returns the shuffled quotient-type choices for subgroup i.
func (s *Session) QuizChoices(i int) ([]string, error) {
	t, err := s.tracker(i)
	if err != nil {
		return nil, err
	}

	return t.QuizChoices()
}

// AnswerQuiz submits a quotient-type label for subgroup i.
func (s *Session) AnswerQuiz(i int, label string) (tracker.QuizResult, error) {
	t, err := s.tracker(i)
	if err != nil {
		return tracker.QuizResult{}, err
	}

	return t.AnswerQuiz(label)
}

// checkIndex validates a declared-subgroup index.
func (s *Session) checkIndex(i int) error {
	if i < 0 || i >= len(s.declared) {
		return fmt.Errorf("%w: %d of %d", ErrSubgroupIndex, i, len(s.declared))
	}

	return nil
}

// decomposition returns the memoized decomposition of subgroup i,
// computing it fully before caching.
func (s *Session) decomposition(i int) (*coset.Decomposition, error) {
	if err := s.checkIndex(i); err != nil {
		return nil, err
	}
	if s.decs[i] != nil {
		return s.decs[i], nil
	}
	d, err := coset.Decompose(s.g, s.declared[i].IDs)
	if err != nil {
		return nil, err
	}
	s.decs[i] = d

	return d, nil
}

// tracker returns the memoized staged-construction tracker of normal
// subgroup i, building it (and the quotient it quizzes about) on first
// use. The quiz's correct label is derived from the verified quotient
// table, never from author metadata.
func (s *Session) tracker(i int) (*tracker.Tracker, error) {
	if err := s.checkIndex(i); err != nil {
		return nil, err
	}
	if s.trackers[i] != nil {
		return s.trackers[i], nil
	}
	if !s.isNormal[i] {
		return nil, fmt.Errorf("%w: subgroup %d", ErrNotNormal, i)
	}

	d, err := s.decomposition(i)
	if err != nil {
		return nil, err
	}
	table, _, err := s.Quotient(i)
	if err != nil {
		return nil, err
	}

	t, err := tracker.New(d, table.Identify(),
		tracker.WithTypePool(s.opts.pool),
		tracker.WithQuizSeed(s.opts.seed+int64(i)))
	if err != nil {
		return nil, err
	}
	s.trackers[i] = t

	return t, nil
}
