// Package level implements level-definition decoding and building.
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grouplab/group"
	"github.com/katalvlaran/grouplab/perm"
)

// Sentinel errors for decoding and building.
var (
	// ErrDecode wraps malformed JSON/YAML payloads.
	ErrDecode = errors.New("level: cannot decode definition")

	// ErrNoElements indicates a definition without elements.
	ErrNoElements = errors.New("level: definition has no elements")

	// ErrUnknownName indicates a reference to an undefined element name.
	ErrUnknownName = errors.New("level: unknown element name")
)

// ElementDef binds an element name to its permutation mapping.
type ElementDef struct {
	Name string `json:"name" yaml:"name"`
	Perm []int  `json:"perm" yaml:"perm"`
}

// SubgroupDef declares one subgroup of interest with author metadata.
// Order, Normal, and QuotientType are claims the engine re-derives and
// cross-checks; they are never trusted.
type SubgroupDef struct {
	Elements     []string `json:"elements" yaml:"elements"`
	Order        int      `json:"order,omitempty" yaml:"order,omitempty"`
	Normal       *bool    `json:"normal,omitempty" yaml:"normal,omitempty"`
	QuotientType string   `json:"quotient_type,omitempty" yaml:"quotient_type,omitempty"`
}

// Definition is the decoded level payload.
type Definition struct {
	Name      string        `json:"name" yaml:"name"`
	Elements  []ElementDef  `json:"elements" yaml:"elements"`
	Table     [][]string    `json:"table,omitempty" yaml:"table,omitempty"`
	Subgroups []SubgroupDef `json:"subgroups,omitempty" yaml:"subgroups,omitempty"`
}

// Declared is a built subgroup of interest: resolved ids plus the original
// author claims.
type Declared struct {
	IDs []group.ElementID
	Def SubgroupDef
}

// DecodeJSON reads a Definition from JSON.
func DecodeJSON(r io.Reader) (*Definition, error) {
	var def Definition
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &def, nil
}

// DecodeYAML reads a Definition from YAML.
func DecodeYAML(r io.Reader) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &def, nil
}

// Build constructs the validated group and resolves every declared
// subgroup. All group axioms are enforced by group.New; a Build that
// returns nil error yields a genuinely usable puzzle group.
func (d *Definition) Build() (*group.Group, []Declared, error) {
	if len(d.Elements) == 0 {
		return nil, nil, ErrNoElements
	}

	names := make([]string, len(d.Elements))
	perms := make([]perm.Perm, len(d.Elements))
	nameToIdx := make(map[string]group.ElementID, len(d.Elements))
	for i, el := range d.Elements {
		p, err := perm.New(el.Perm)
		if err != nil {
			return nil, nil, fmt.Errorf("level: element %q: %w", el.Name, err)
		}
		names[i] = el.Name
		perms[i] = p
		nameToIdx[el.Name] = group.ElementID(i)
	}

	var opts []group.Option
	if d.Table != nil {
		table := make([][]group.ElementID, len(d.Table))
		for i, row := range d.Table {
			table[i] = make([]group.ElementID, len(row))
			for j, cell := range row {
				id, ok := nameToIdx[cell]
				if !ok {
					return nil, nil, fmt.Errorf("%w: table cell [%d][%d] = %q", ErrUnknownName, i, j, cell)
				}
				table[i][j] = id
			}
		}
		opts = append(opts, group.WithTable(table))
	}

	g, err := group.New(names, perms, opts...)
	if err != nil {
		return nil, nil, err
	}

	declared := make([]Declared, len(d.Subgroups))
	for i, sub := range d.Subgroups {
		ids := make([]group.ElementID, len(sub.Elements))
		for j, name := range sub.Elements {
			id, ok := nameToIdx[name]
			if !ok {
				return nil, nil, fmt.Errorf("%w: subgroup %d references %q", ErrUnknownName, i, name)
			}
			ids[j] = id
		}
		declared[i] = Declared{IDs: ids, Def: sub}
	}

	return g, declared, nil
}
