package catalog

import "github.com/katalvlaran/grouplab/tracker"

// DefaultTypePool returns the stock quotient-type pool for identification
// quizzes: isomorphism-type labels keyed by group order. Orders with a
// single entry (prime orders) cannot produce same-order distractors, so
// quiz building falls back to adjacent orders for them; composite orders
// list every type realizable as a quotient in this domain.
//
// The pool is content-tuning data, not algorithm: sessions may inject
// their own via tracker options.
func DefaultTypePool() tracker.TypePool {
	return tracker.TypePool{
		1:  {"Z1"},
		2:  {"Z2"},
		3:  {"Z3"},
		4:  {"Z4", "Z2×Z2"},
		5:  {"Z5"},
		6:  {"Z6", "S3"},
		7:  {"Z7"},
		8:  {"Z8", "Z4×Z2", "Z2×Z2×Z2", "D4", "Q8"},
		9:  {"Z9", "Z3×Z3"},
		10: {"Z10", "D5"},
		11: {"Z11"},
		12: {"Z12", "Z6×Z2", "A4", "D6", "Dic3"},
	}
}
