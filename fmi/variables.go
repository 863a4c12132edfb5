package fmi

import "fmt"

// ValueRef is the stable integer handle identifying one variable slot.
type ValueRef uint32

// Kind is the declared primitive kind of a variable slot.
type Kind int

const (
	Real Kind = iota
	Integer
	Boolean
	String
)

func (k Kind) String() string {
	switch k {
	case Real:
		return "Real"
	case Integer:
		return "Integer"
	case Boolean:
		return "Boolean"
	case String:
		return "String"
	}
	return "Unknown"
}

// VariableSpec declares one slot of the store: its kind and fixed array
// length (>= 1). Both are immutable after the store is created.
type VariableSpec struct {
	Kind Kind
	Len  int
}

// Schema is the ordered list of slot declarations; the index of a spec is
// its value reference.
type Schema []VariableSpec

// Scalar is a shorthand for a single-element spec of the given kind.
func Scalar(k Kind) VariableSpec { return VariableSpec{Kind: k, Len: 1} }

// Array is a shorthand for a multi-element spec of the given kind.
func Array(k Kind, n int) VariableSpec { return VariableSpec{Kind: k, Len: n} }

// slot carries its declared kind and exactly one populated backing slice.
// The tagged layout makes an invalid cast impossible: access goes through
// the kind-checked accessors below.
type slot struct {
	kind  Kind
	reals []float64
	ints  []int32
	bools []bool
	strs  []string
}

// VariableStore holds all instance variables in typed fixed-shape slots.
// It performs no recomputation and triggers no side effects; callers are
// expected to have validated kind and bounds (see access.go).
type VariableStore struct {
	slots []slot
}

// NewVariableStore allocates a store for the given schema. A zero or
// negative declared length is a model configuration bug.
func NewVariableStore(schema Schema) (*VariableStore, error) {
	vs := &VariableStore{slots: make([]slot, len(schema))}
	for vr, spec := range schema {
		if spec.Len < 1 {
			return nil, fmt.Errorf("variable %d: declared length %d, must be >= 1", vr, spec.Len)
		}
		sl := slot{kind: spec.Kind}
		switch spec.Kind {
		case Real:
			sl.reals = make([]float64, spec.Len)
		case Integer:
			sl.ints = make([]int32, spec.Len)
		case Boolean:
			sl.bools = make([]bool, spec.Len)
		case String:
			sl.strs = make([]string, spec.Len)
		default:
			return nil, fmt.Errorf("variable %d: unknown kind %d", vr, spec.Kind)
		}
		vs.slots[vr] = sl
	}
	return vs, nil
}

// Len returns the number of declared variables.
func (vs *VariableStore) Len() int { return len(vs.slots) }

// Kind returns the declared kind of vr. vr must be in range.
func (vs *VariableStore) Kind(vr ValueRef) Kind { return vs.slots[vr].kind }

// ArrayLen returns the declared array length of vr. vr must be in range.
func (vs *VariableStore) ArrayLen(vr ValueRef) int {
	sl := &vs.slots[vr]
	switch sl.kind {
	case Real:
		return len(sl.reals)
	case Integer:
		return len(sl.ints)
	case Boolean:
		return len(sl.bools)
	default:
		return len(sl.strs)
	}
}

// inRange reports whether vr names a declared slot.
func (vs *VariableStore) inRange(vr ValueRef) bool { return int(vr) < len(vs.slots) }

// Reals returns the backing slice of a real slot. vr must be in range and
// of Real kind; writes through the slice are visible to the store.
func (vs *VariableStore) Reals(vr ValueRef) []float64 { return vs.slots[vr].reals }

// Ints returns the backing slice of an integer slot.
func (vs *VariableStore) Ints(vr ValueRef) []int32 { return vs.slots[vr].ints }

// Bools returns the backing slice of a boolean slot.
func (vs *VariableStore) Bools(vr ValueRef) []bool { return vs.slots[vr].bools }

// Strings returns the backing slice of a string slot.
func (vs *VariableStore) Strings(vr ValueRef) []string { return vs.slots[vr].strs }
