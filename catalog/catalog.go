// Package catalog implements the deterministic standard-group constructors.
package catalog

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/grouplab/group"
	"github.com/katalvlaran/grouplab/perm"
)

// ErrBadOrder is returned for constructor arguments outside the supported
// range.
var ErrBadOrder = errors.New("catalog: unsupported group order")

// Cyclic returns Zn as the rotations of an n-gon, n ≥ 1:
// elements e, r1, …, r{n-1} where rk rotates every position by k.
func Cyclic(n int) (*group.Group, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Cyclic(%d)", ErrBadOrder, n)
	}
	names := make([]string, n)
	perms := make([]perm.Perm, n)
	for k := 0; k < n; k++ {
		names[k] = rotationName(k)
		perms[k] = rotation(n, k)
	}

	return group.New(names, perms)
}

// Dihedral returns Dn of order 2n, n ≥ 3: rotations e, r1, …, r{n-1}
// followed by reflections s1, …, sn, where sk maps j ↦ (k-1-j) mod n.
func Dihedral(n int) (*group.Group, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: Dihedral(%d)", ErrBadOrder, n)
	}
	names := make([]string, 0, 2*n)
	perms := make([]perm.Perm, 0, 2*n)
	for k := 0; k < n; k++ {
		names = append(names, rotationName(k))
		perms = append(perms, rotation(n, k))
	}
	for c := 0; c < n; c++ {
		names = append(names, "s"+strconv.Itoa(c+1))
		m := make([]int, n)
		for j := range m {
			m[j] = ((c-j)%n + n) % n
		}
		perms = append(perms, perm.MustNew(m...))
	}

	return group.New(names, perms)
}

// Klein4 returns V4 = Z2×Z2 as the three double transpositions of degree 4
// plus the identity: e, a, b, c.
func Klein4() (*group.Group, error) {
	return group.New(
		[]string{"e", "a", "b", "c"},
		[]perm.Perm{
			perm.Identity(4),
			perm.MustNew(1, 0, 3, 2),
			perm.MustNew(2, 3, 0, 1),
			perm.MustNew(3, 2, 1, 0),
		},
	)
}

// Symmetric returns Sn for 2 ≤ n ≤ 5 (orders 2 through 120). Mappings are
// enumerated lexicographically, placing the identity first; elements are
// named "e" for the identity and by cycle notation otherwise.
func Symmetric(n int) (*group.Group, error) {
	if n < 2 || n > 5 {
		return nil, fmt.Errorf("%w: Symmetric(%d)", ErrBadOrder, n)
	}
	perms := lexPerms(n, func(perm.Perm) bool { return true })

	return group.New(cycleNames(perms), perms)
}

// Alternating4 returns A4, the 12 even permutations of degree 4.
func Alternating4() (*group.Group, error) {
	perms := lexPerms(4, func(p perm.Perm) bool { return isEven(p) })

	return group.New(cycleNames(perms), perms)
}

// rotation builds the degree-n rotation by k positions.
func rotation(n, k int) perm.Perm {
	m := make([]int, n)
	for i := range m {
		m[i] = (i + k) % n
	}

	return perm.MustNew(m...)
}

// rotationName names r^k: "e" for k = 0, else "rk".
func rotationName(k int) string {
	if k == 0 {
		return "e"
	}

	return "r" + strconv.Itoa(k)
}

// lexPerms enumerates all degree-n permutations in lexicographic mapping
// order, keeping those accepted by keep.
func lexPerms(n int, keep func(perm.Perm) bool) []perm.Perm {
	var out []perm.Perm
	m := make([]int, n)
	used := make([]bool, n)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			p := perm.MustNew(m...)
			if keep(p) {
				out = append(out, p)
			}
			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			m[pos] = v
			rec(pos + 1)
			used[v] = false
		}
	}
	rec(0)

	return out
}

// cycleNames names the identity "e" and every other permutation by its
// cycle notation, which is unique per mapping.
func cycleNames(perms []perm.Perm) []string {
	names := make([]string, len(perms))
	for i, p := range perms {
		if p.IsIdentity() {
			names[i] = "e"
		} else {
			names[i] = p.String()
		}
	}

	return names
}

// isEven reports whether p is an even permutation: n minus the number of
// cycles (fixed points included) is even.
func isEven(p perm.Perm) bool {
	n := p.Degree()
	visited := make([]bool, n)
	cycles := 0
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		cycles++
		for i := start; !visited[i]; i = p.Image(i) {
			visited[i] = true
		}
	}

	return (n-cycles)%2 == 0
}
