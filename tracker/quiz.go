package tracker

import (
	"math/rand"
	"sort"
)

// quiz holds the fixed, shuffled choice list for one tracker.
type quiz struct {
	choices []string
}

// buildQuiz assembles the correct label plus distractors and shuffles them
// deterministically from the option seed.
//
// Distractors prefer the same quotient order as the correct label (same
// order, different isomorphism type — structurally plausible wrong
// answers). Prime orders have a single type, so the pool is topped up from
// other orders in ascending order until the requested count (or the pool)
// is exhausted.
func buildQuiz(correct string, order int, o options) quiz {
	distractors := make([]string, 0, o.distractors)

	for _, label := range o.pool[order] {
		if len(distractors) == o.distractors {
			break
		}
		if label != correct {
			distractors = append(distractors, label)
		}
	}

	if len(distractors) < o.distractors {
		orders := make([]int, 0, len(o.pool))
		for k := range o.pool {
			if k != order {
				orders = append(orders, k)
			}
		}
		sort.Ints(orders)
	fill:
		for _, k := range orders {
			for _, label := range o.pool[k] {
				if len(distractors) == o.distractors {
					break fill
				}
				if label != correct {
					distractors = append(distractors, label)
				}
			}
		}
	}

	choices := append([]string{correct}, distractors...)
	rng := rand.New(rand.NewSource(o.seed))
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return quiz{choices: choices}
}
