// Package group provides sentinel errors, the ElementID newtype, and
// construction options for finite groups.
package group

import (
	"errors"

	"github.com/katalvlaran/grouplab/perm"
)

// Sentinel errors for group construction and queries.
var (
	// ErrEmptyGroup indicates New was given no elements.
	ErrEmptyGroup = errors.New("group: no elements")

	// ErrDuplicateElement indicates two elements share a name.
	ErrDuplicateElement = errors.New("group: duplicate element name")

	// ErrDegreeMismatch indicates elements with permutations of differing degree.
	ErrDegreeMismatch = errors.New("group: permutation degree mismatch")

	// ErrMalformedTable indicates an operation table that is not n×n or has
	// entries outside the element range.
	ErrMalformedTable = errors.New("group: malformed operation table")

	// ErrNotFaithful indicates two distinct elements bound to the same
	// permutation while no operation table was supplied to disambiguate
	// products.
	ErrNotFaithful = errors.New("group: permutation representation not faithful; operation table required")

	// ErrNotClosed indicates a product that resolves to no element.
	ErrNotClosed = errors.New("group: element set not closed under composition")

	// ErrNoIdentity indicates no element (or more than one) acts as identity.
	ErrNoIdentity = errors.New("group: no unique identity element")

	// ErrNoInverse indicates an element without a two-sided inverse.
	ErrNoInverse = errors.New("group: element lacks a two-sided inverse")

	// ErrUnknownElement indicates an ElementID outside [0, Order()).
	ErrUnknownElement = errors.New("group: unknown element id")
)

// ElementID is a stable index into a Group's canonical element order.
// IDs are assigned in construction order, starting at 0.
type ElementID int

// NoElement is the sentinel "not found" ElementID.
const NoElement ElementID = -1

// Element pairs an id with its name and bound permutation, as returned by
// Group.Elements for read-only iteration in canonical order.
type Element struct {
	ID   ElementID
	Name string
	Perm perm.Perm
}

// Option configures Group construction.
type Option func(*config)

type config struct {
	table [][]ElementID
}

// WithTable supplies a raw Cayley table, table[a][b] = a·b, indexed by
// ElementID in construction order. When present, the table is the
// authoritative product source and permutation composition is only a
// consistency cross-check.
func WithTable(table [][]ElementID) Option {
	return func(c *config) { c.table = table }
}
