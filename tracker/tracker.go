// Package tracker implements the staged coset-assembly state machine.
package tracker

import (
	"fmt"

	"github.com/katalvlaran/grouplab/coset"
	"github.com/katalvlaran/grouplab/group"
)

// Tracker is the per-subgroup staged-construction state machine. Not safe
// for concurrent use; a session owns one per subgroup of interest.
type Tracker struct {
	dec     *coset.Decomposition
	phase   Phase
	slots   [][]group.ElementID
	slotOf  map[group.ElementID]int
	active  int
	quiz    quiz
	correct string
}

// New builds a Pending tracker over a decomposition. correctLabel is the
// quotient's true isomorphism-type label, compared by exact match at quiz
// time. Options inject the distractor pool, shuffle seed, and distractor
// count.
func New(dec *coset.Decomposition, correctLabel string, opts ...Option) (*Tracker, error) {
	if dec == nil {
		return nil, ErrNilDecomposition
	}
	if correctLabel == "" {
		return nil, ErrMissingLabel
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	t := &Tracker{
		dec:     dec,
		phase:   PhasePending,
		slots:   make([][]group.ElementID, dec.Index()),
		slotOf:  make(map[group.ElementID]int),
		correct: correctLabel,
		quiz:    buildQuiz(correctLabel, dec.Index(), o),
	}
	for i := range t.slots {
		t.slots[i] = make([]group.ElementID, 0, dec.SubgroupOrder())
	}

	return t, nil
}

// Begin starts assembly: Pending → Building.
func (t *Tracker) Begin() error {
	if t.phase != PhasePending {
		return fmt.Errorf("%w: Begin in %s", ErrWrongPhase, t.phase)
	}
	t.phase = PhaseBuilding

	return nil
}

// Place offers an element for the active slot.
//
// Acceptance rule: the element must not already be placed anywhere
// (RejectDuplicate), and must share a coset with the first element of the
// active slot (RejectWrongCoset); an empty slot accepts any unassigned
// element. A completed slot advances the active slot; completing the last
// slot transitions to PhaseCosetsDone.
func (t *Tracker) Place(id group.ElementID) (Placement, error) {
	if t.phase != PhaseBuilding {
		return Placement{}, fmt.Errorf("%w: Place in %s", ErrWrongPhase, t.phase)
	}
	rep := t.dec.Representative(id)
	if rep == group.NoElement {
		return Placement{}, fmt.Errorf("tracker: %w: %d", group.ErrUnknownElement, id)
	}

	pl := Placement{Slot: t.active}
	if _, dup := t.slotOf[id]; dup {
		pl.Reason = RejectDuplicate
		return pl, nil
	}
	slot := t.slots[t.active]
	if len(slot) > 0 && t.dec.Representative(slot[0]) != rep {
		pl.Reason = RejectWrongCoset
		return pl, nil
	}

	t.slots[t.active] = append(slot, id)
	t.slotOf[id] = t.active
	pl.Accepted = true

	if len(t.slots[t.active]) == t.dec.SubgroupOrder() {
		pl.SlotFilled = true
		t.active++
		if t.active == t.dec.Index() {
			pl.AllFilled = true
			t.phase = PhaseCosetsDone
		}
	}

	return pl, nil
}

// QuizChoices returns the shuffled answer labels. Valid once assembly is
// done; the choice list is stable for the tracker's lifetime.
func (t *Tracker) QuizChoices() ([]string, error) {
	if t.phase != PhaseCosetsDone && t.phase != PhaseTypeIdentified {
		return nil, fmt.Errorf("%w: QuizChoices in %s", ErrWrongPhase, t.phase)
	}

	out := make([]string, len(t.quiz.choices))
	copy(out, t.quiz.choices)

	return out, nil
}

// AnswerQuiz submits a label. An exact match transitions to the terminal
// PhaseTypeIdentified; a miss is a structured negative result and the quiz
// stays open.
func (t *Tracker) AnswerQuiz(label string) (QuizResult, error) {
	switch t.phase {
	case PhaseCosetsDone:
		// open for answers
	case PhaseTypeIdentified:
		return QuizResult{}, fmt.Errorf("%w: quiz already answered", ErrWrongPhase)
	default:
		return QuizResult{}, fmt.Errorf("%w: AnswerQuiz in %s", ErrWrongPhase, t.phase)
	}

	if label != t.correct {
		return QuizResult{Correct: false}, nil
	}
	t.phase = PhaseTypeIdentified

	return QuizResult{Correct: true}, nil
}

// Phase returns the current lifecycle stage.
func (t *Tracker) Phase() Phase { return t.phase }

// ActiveSlot returns the slot currently accepting placements; equal to the
// slot count once assembly is done.
func (t *Tracker) ActiveSlot() int { return t.active }

// Slots returns a deep copy of the per-slot placements, in slot order.
func (t *Tracker) Slots() [][]group.ElementID {
	out := make([][]group.ElementID, len(t.slots))
	for i, s := range t.slots {
		out[i] = make([]group.ElementID, len(s))
		copy(out[i], s)
	}

	return out
}

// Restore forces previously saved assembly state onto a fresh tracker.
// The slot contents are re-validated against the decomposition: full
// prefix of slots, coherent cosets, no duplicates. Quiz choices are
// rebuilt from the tracker's own seed, so a snapshot stays portable.
func (t *Tracker) Restore(phase Phase, slots [][]group.ElementID) error {
	if len(slots) != len(t.slots) {
		return fmt.Errorf("%w: %d slots, want %d", ErrBadSnapshot, len(slots), len(t.slots))
	}

	fresh := make([][]group.ElementID, len(slots))
	slotOf := make(map[group.ElementID]int)
	active := len(slots)
	for i, s := range slots {
		if len(s) > t.dec.SubgroupOrder() {
			return fmt.Errorf("%w: slot %d overfull", ErrBadSnapshot, i)
		}
		if len(s) < t.dec.SubgroupOrder() && active == len(slots) {
			active = i
		}
		if len(s) > 0 && active < i {
			return fmt.Errorf("%w: non-empty slot %d after partial slot %d", ErrBadSnapshot, i, active)
		}
		fresh[i] = make([]group.ElementID, 0, t.dec.SubgroupOrder())
		for _, id := range s {
			rep := t.dec.Representative(id)
			if rep == group.NoElement {
				return fmt.Errorf("%w: unknown element %d", ErrBadSnapshot, id)
			}
			if _, dup := slotOf[id]; dup {
				return fmt.Errorf("%w: element %d placed twice", ErrBadSnapshot, id)
			}
			if len(fresh[i]) > 0 && t.dec.Representative(fresh[i][0]) != rep {
				return fmt.Errorf("%w: slot %d mixes cosets", ErrBadSnapshot, i)
			}
			slotOf[id] = i
			fresh[i] = append(fresh[i], id)
		}
	}

	switch phase {
	case PhaseCosetsDone, PhaseTypeIdentified:
		if active != len(slots) {
			return fmt.Errorf("%w: phase %s with unfilled slots", ErrBadSnapshot, phase)
		}
	case PhaseBuilding, PhasePending:
		// partial assembly is fine
	default:
		return fmt.Errorf("%w: unknown phase %d", ErrBadSnapshot, phase)
	}

	t.phase = phase
	t.slots = fresh
	t.slotOf = slotOf
	t.active = active

	return nil
}
