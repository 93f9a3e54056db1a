// Package session defines errors, options, and snapshot shapes.
package session

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grouplab/level"
	"github.com/katalvlaran/grouplab/tracker"
)

// Sentinel errors for session construction and queries.
var (
	// ErrNilDefinition is returned if a nil level definition is passed.
	ErrNilDefinition = errors.New("session: level definition is nil")

	// ErrContentMismatch is the unwrap target of ContentError.
	ErrContentMismatch = errors.New("session: authored content failed audit")

	// ErrSubgroupIndex is returned for an out-of-range subgroup index.
	ErrSubgroupIndex = errors.New("session: subgroup index out of range")

	// ErrNotNormal is returned when a staged-construction operation is
	// issued for a non-normal subgroup, which has no quotient to build.
	ErrNotNormal = errors.New("session: subgroup is not normal")
)

// ContentError carries the full discrepancy list of a failed load-time
// audit. It unwraps to ErrContentMismatch.
type ContentError struct {
	Discrepancies []level.Discrepancy
}

// Error summarizes the failure; the slice carries the details.
func (e *ContentError) Error() string {
	if len(e.Discrepancies) == 1 {
		return fmt.Sprintf("session: authored content failed audit: %s: %s",
			e.Discrepancies[0].Kind, e.Discrepancies[0].Detail)
	}

	return fmt.Sprintf("session: authored content failed audit: %d discrepancies (first: %s: %s)",
		len(e.Discrepancies), e.Discrepancies[0].Kind, e.Discrepancies[0].Detail)
}

// Unwrap lets errors.Is(err, ErrContentMismatch) match.
func (e *ContentError) Unwrap() error { return ErrContentMismatch }

// Option configures session construction.
type Option func(*options)

type options struct {
	pool tracker.TypePool
	seed int64
}

// WithTypePool overrides the quiz distractor pool (defaults to
// catalog.DefaultTypePool()).
func WithTypePool(pool tracker.TypePool) Option {
	return func(o *options) {
		if pool != nil {
			o.pool = pool
		}
	}
}

// WithQuizSeed fixes the quiz shuffle seed; sessions restored from a
// snapshot reuse the seed captured in it.
func WithQuizSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// Snapshot is the flat serializable progress state of one session:
// everything mutable, nothing derivable from the definition alone.
type Snapshot struct {
	SessionID string          `json:"session_id"`
	Level     string          `json:"level,omitempty"`
	QuizSeed  int64           `json:"quiz_seed"`
	Subgroups []SubgroupState `json:"subgroups"`
	Pairs     []PairState     `json:"pairs"`
}

// SubgroupState is per-subgroup progress: the classification record plus
// staged-assembly state.
type SubgroupState struct {
	// Status is the normality.Status string form.
	Status string `json:"status"`

	// Witness is the non-normality triple [g, h, g·h·g⁻¹]; empty unless
	// Status is "non_normal".
	Witness []int `json:"witness,omitempty"`

	// Phase is the tracker.Phase string form.
	Phase string `json:"phase"`

	// Slots holds the per-slot placed element ids, slot order preserved.
	Slots [][]int `json:"slots,omitempty"`
}

// PairState is one confirmed pairing record.
type PairState struct {
	Key         int  `json:"key"`
	Inverse     int  `json:"inverse"`
	SelfInverse bool `json:"self_inverse"`
}
