// Package perm implements the Perm bijection value type.
//
// See doc.go for the full contract; the short version: validate once in New,
// then every operation is total and allocation-predictable.
package perm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for Perm construction.
var (
	// ErrEmptyMapping is returned when New receives a zero-length mapping.
	ErrEmptyMapping = errors.New("perm: mapping is empty")

	// ErrNotBijection is returned when the mapping has duplicates, gaps,
	// or images outside [0, n).
	ErrNotBijection = errors.New("perm: mapping is not a bijection")
)

// Perm is an immutable bijection over [0, n). The zero value is unusable;
// construct via New, MustNew, or Identity.
type Perm struct {
	mapping []int
}

// New validates mapping as a bijection over [0, len(mapping)) and returns
// the corresponding Perm. The input slice is copied; callers may reuse it.
func New(mapping []int) (Perm, error) {
	n := len(mapping)
	if n == 0 {
		return Perm{}, ErrEmptyMapping
	}
	seen := make([]bool, n)
	for i, v := range mapping {
		if v < 0 || v >= n {
			return Perm{}, fmt.Errorf("%w: image %d at position %d outside [0,%d)", ErrNotBijection, v, i, n)
		}
		if seen[v] {
			return Perm{}, fmt.Errorf("%w: image %d repeated at position %d", ErrNotBijection, v, i)
		}
		seen[v] = true
	}
	m := make([]int, n)
	copy(m, mapping)

	return Perm{mapping: m}, nil
}

// MustNew is New for trusted literals (tests, fixtures); it panics on
// invalid input.
func MustNew(mapping ...int) Perm {
	p, err := New(mapping)
	if err != nil {
		panic(err)
	}

	return p
}

// Identity returns the identity permutation of degree n.
// It panics if n <= 0; degree is fixed by the caller's point set.
func Identity(n int) Perm {
	if n <= 0 {
		panic(fmt.Sprintf("perm: invalid identity degree %d", n))
	}
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}

	return Perm{mapping: m}
}

// Degree returns n, the size of the index set.
func (p Perm) Degree() int { return len(p.mapping) }

// Image returns the image of position i under p.
func (p Perm) Image(i int) int { return p.mapping[i] }

// Mapping returns a copy of the underlying mapping sequence.
func (p Perm) Mapping() []int {
	m := make([]int, len(p.mapping))
	copy(m, p.mapping)

	return m
}

// Compose returns p∘q, the permutation that applies q first and then p:
// result[i] = p[q[i]]. Both permutations must have the same degree;
// a mismatch is a programming error and panics.
func (p Perm) Compose(q Perm) Perm {
	if len(p.mapping) != len(q.mapping) {
		panic(fmt.Sprintf("perm: compose degree mismatch %d vs %d", len(p.mapping), len(q.mapping)))
	}
	m := make([]int, len(p.mapping))
	for i, v := range q.mapping {
		m[i] = p.mapping[v]
	}

	return Perm{mapping: m}
}

// Inverse returns p⁻¹, satisfying inv[p[i]] = i for all i.
func (p Perm) Inverse() Perm {
	m := make([]int, len(p.mapping))
	for i, v := range p.mapping {
		m[v] = i
	}

	return Perm{mapping: m}
}

// IsIdentity reports whether p fixes every position.
func (p Perm) IsIdentity() bool {
	for i, v := range p.mapping {
		if i != v {
			return false
		}
	}

	return true
}

// Equal reports structural equality of the mapping sequences.
// Permutations of different degrees are never equal.
func (p Perm) Equal(q Perm) bool {
	if len(p.mapping) != len(q.mapping) {
		return false
	}
	for i, v := range p.mapping {
		if q.mapping[i] != v {
			return false
		}
	}

	return true
}

// Order returns the multiplicative order of p: the least k ≥ 1 with p^k = id.
// Computed as the LCM of cycle lengths.
func (p Perm) Order() int {
	order := 1
	for _, cl := range p.cycleLengths() {
		order = lcm(order, cl)
	}

	return order
}

// Key returns a compact string uniquely identifying the mapping, suitable
// as a map key for permutation lookup tables.
func (p Perm) Key() string {
	var b strings.Builder
	for i, v := range p.mapping {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// String renders p in disjoint cycle notation, omitting fixed points;
// the identity renders as "()". Cycles start at their smallest member,
// listed in increasing order of that member.
func (p Perm) String() string {
	var b strings.Builder
	visited := make([]bool, len(p.mapping))
	for start := range p.mapping {
		if visited[start] || p.mapping[start] == start {
			visited[start] = true
			continue
		}
		b.WriteByte('(')
		for i, first := start, true; !visited[i]; i = p.mapping[i] {
			visited[i] = true
			if !first {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(i))
			first = false
		}
		b.WriteByte(')')
	}
	if b.Len() == 0 {
		return "()"
	}

	return b.String()
}

// cycleLengths returns the lengths of all cycles of p, fixed points included.
func (p Perm) cycleLengths() []int {
	visited := make([]bool, len(p.mapping))
	lengths := make([]int, 0, len(p.mapping))
	for start := range p.mapping {
		if visited[start] {
			continue
		}
		l := 0
		for i := start; !visited[i]; i = p.mapping[i] {
			visited[i] = true
			l++
		}
		lengths = append(lengths, l)
	}

	return lengths
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }
