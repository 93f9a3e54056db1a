package session

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grouplab/group"
	"github.com/katalvlaran/grouplab/level"
	"github.com/katalvlaran/grouplab/normality"
	"github.com/katalvlaran/grouplab/tracker"
)

// ErrBadSnapshot is returned when Restore receives progress state
// inconsistent with the definition — a snapshot can never smuggle in
// algebraically false progress.
var ErrBadSnapshot = errors.New("session: snapshot inconsistent with definition")

// Snapshot captures all mutable progress as a flat serializable value.
// Derived data (cosets, quotient tables) is not stored; it is recomputed
// deterministically on demand after Restore.
func (s *Session) Snapshot() *Snapshot {
	snap := &Snapshot{
		SessionID: s.id,
		Level:     s.levelName,
		QuizSeed:  s.opts.seed,
		Subgroups: make([]SubgroupState, len(s.declared)),
	}

	for i := range s.declared {
		st := SubgroupState{
			Status: s.classifiers[i].Status().String(),
			Phase:  tracker.PhasePending.String(),
		}
		if w := s.classifiers[i].Witness(); w != nil {
			st.Witness = []int{int(w.G), int(w.H), int(w.Conjugate)}
		}
		if t := s.trackers[i]; t != nil {
			st.Phase = t.Phase().String()
			for _, slot := range t.Slots() {
				ints := make([]int, len(slot))
				for j, id := range slot {
					ints[j] = int(id)
				}
				st.Slots = append(st.Slots, ints)
			}
		}
		snap.Subgroups[i] = st
	}

	for _, p := range s.ledger.Pairs() {
		snap.Pairs = append(snap.Pairs, PairState{
			Key:         int(p.Key),
			Inverse:     int(p.Inverse),
			SelfInverse: p.SelfInverse,
		})
	}

	return snap
}

// Restore builds a fresh session over def and replays the snapshot's
// progress onto it. Every restored record passes back through the same
// validation the live interactions use: pairings are re-proved against
// the identity, non-normality witnesses are re-conjugated, assembly slots
// are re-checked against the decomposition.
func Restore(def *level.Definition, snap *Snapshot, opts ...Option) (*Session, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrBadSnapshot)
	}

	s, err := New(def, append([]Option{WithQuizSeed(snap.QuizSeed)}, opts...)...)
	if err != nil {
		return nil, err
	}
	if snap.SessionID != "" {
		s.id = snap.SessionID
	}

	if len(snap.Subgroups) != len(s.declared) {
		return nil, fmt.Errorf("%w: %d subgroup states, want %d",
			ErrBadSnapshot, len(snap.Subgroups), len(s.declared))
	}

	for i, st := range snap.Subgroups {
		if err = s.restoreSubgroup(i, st); err != nil {
			return nil, err
		}
	}

	for _, p := range snap.Pairs {
		res, pairErr := s.ledger.TryPair(group.ElementID(p.Key), group.ElementID(p.Inverse))
		if pairErr != nil {
			return nil, fmt.Errorf("%w: pair (%d,%d): %v", ErrBadSnapshot, p.Key, p.Inverse, pairErr)
		}
		if !res.Success {
			return nil, fmt.Errorf("%w: pair (%d,%d) is not an inverse pair", ErrBadSnapshot, p.Key, p.Inverse)
		}
	}

	return s, nil
}

// restoreSubgroup replays one subgroup's classification and assembly state.
func (s *Session) restoreSubgroup(i int, st SubgroupState) error {
	status, err := parseStatus(st.Status)
	if err != nil {
		return err
	}

	switch status {
	case normality.StatusNonNormal:
		if len(st.Witness) != 3 {
			return fmt.Errorf("%w: subgroup %d: non-normal status needs a witness triple", ErrBadSnapshot, i)
		}
		probe, probeErr := s.classifiers[i].Test(group.ElementID(st.Witness[0]), group.ElementID(st.Witness[1]))
		if probeErr != nil {
			return fmt.Errorf("%w: subgroup %d witness: %v", ErrBadSnapshot, i, probeErr)
		}
		if probe.StayedIn || probe.Result != group.ElementID(st.Witness[2]) {
			return fmt.Errorf("%w: subgroup %d witness does not prove non-normality", ErrBadSnapshot, i)
		}
	case normality.StatusNormal:
		ok, verifyErr := s.classifiers[i].VerifyNormal()
		if verifyErr != nil {
			return verifyErr
		}
		if !ok {
			return fmt.Errorf("%w: subgroup %d claimed normal but is not", ErrBadSnapshot, i)
		}
	case normality.StatusUnclassified:
		// nothing to replay
	}

	phase, err := parsePhase(st.Phase)
	if err != nil {
		return err
	}
	if phase == tracker.PhasePending && len(st.Slots) == 0 {
		return nil
	}

	t, err := s.tracker(i)
	if err != nil {
		return fmt.Errorf("%w: subgroup %d: %v", ErrBadSnapshot, i, err)
	}
	slots := make([][]group.ElementID, len(st.Slots))
	for j, ints := range st.Slots {
		slots[j] = make([]group.ElementID, len(ints))
		for k, v := range ints {
			slots[j][k] = group.ElementID(v)
		}
	}

	return t.Restore(phase, slots)
}

// parseStatus decodes the snapshot status tag.
func parseStatus(s string) (normality.Status, error) {
	switch s {
	case normality.StatusUnclassified.String(), "":
		return normality.StatusUnclassified, nil
	case normality.StatusNormal.String():
		return normality.StatusNormal, nil
	case normality.StatusNonNormal.String():
		return normality.StatusNonNormal, nil
	default:
		return normality.StatusUnclassified, fmt.Errorf("%w: unknown status %q", ErrBadSnapshot, s)
	}
}

// parsePhase decodes the snapshot phase tag.
func parsePhase(s string) (tracker.Phase, error) {
	switch s {
	case tracker.PhasePending.String(), "":
		return tracker.PhasePending, nil
	case tracker.PhaseBuilding.String():
		return tracker.PhaseBuilding, nil
	case tracker.PhaseCosetsDone.String():
		return tracker.PhaseCosetsDone, nil
	case tracker.PhaseTypeIdentified.String():
		return tracker.PhaseTypeIdentified, nil
	default:
		return tracker.PhasePending, fmt.Errorf("%w: unknown phase %q", ErrBadSnapshot, s)
	}
}
