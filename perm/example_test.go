package perm_test

import (
	"fmt"

	"github.com/katalvlaran/grouplab/perm"
)

// ExamplePerm_Compose demonstrates the apply-right-first convention on
// two elements of S3: a rotation and a reflection.
func ExamplePerm_Compose() {
	r := perm.MustNew(1, 2, 0) // rotation (0 1 2)
	s := perm.MustNew(1, 0, 2) // reflection (0 1)

	fmt.Println("r∘s =", r.Compose(s))
	fmt.Println("s∘r =", s.Compose(r))

	// Output:
	// r∘s = (0 2)
	// s∘r = (1 2)
}

// ExamplePerm_Inverse shows that composing with the inverse yields the
// identity in either order.
func ExamplePerm_Inverse() {
	p := perm.MustNew(2, 0, 3, 1)
	inv := p.Inverse()

	fmt.Println("p      =", p)
	fmt.Println("p⁻¹    =", inv)
	fmt.Println("p∘p⁻¹ id:", p.Compose(inv).IsIdentity())

	// Output:
	// p      = (0 2 3 1)
	// p⁻¹    = (0 1 3 2)
	// p∘p⁻¹ id: true
}
